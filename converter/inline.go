package converter

import "strings"

func (s *state) closeLink(n Node) (string, error) {
	href, _ := n.Attr("href")
	href, err := s.rewriteURL(URLRewriteInput{Tag: "a", Attr: "href", URL: href})
	if err != nil {
		return "", err
	}
	return "](" + href + ") ", nil
}

// closeImage finishes "![" with the alt text and source, or with only the
// source when there is no alt attribute.
func (s *state) closeImage(n Node) (string, error) {
	src, _ := n.Attr("src")
	alt, hasAlt := n.Attr("alt")

	src, err := s.rewriteURL(URLRewriteInput{Tag: "img", Attr: "src", URL: src, Alt: alt})
	if err != nil {
		return "", err
	}

	if hasAlt {
		return alt + "](" + src + ") ", nil
	}
	return src + "] ", nil
}

// renderText trims the text and, inside an indented code block, indents
// continuation lines to match the block.
func (s *state) renderText(n Node) string {
	text := strings.TrimSpace(n.Text())
	if parentTag(n) == "code" && !s.config.FencedCodeBlocks {
		return strings.ReplaceAll(text, "\n", "\n"+codeIndent)
	}
	return text
}
