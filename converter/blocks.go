package converter

import "strings"

const codeIndent = "    "

// openParagraph separates paragraphs. Quoted paragraphs restart the quote
// marker, and the first non-blank paragraph of the document gets no blank line.
func (s *state) openParagraph(n Node) (string, error) {
	if hasAncestor(n, "blockquote") {
		return "\n\n> ", nil
	}

	switch parentTag(n) {
	case "", "body":
		if isFirstBlock(n) {
			return "", nil
		}
		return "\n\n", nil
	default:
		return crlf, nil
	}
}

// isFirstBlock reports whether every previous sibling of n is a text node or
// has blank content.
func isFirstBlock(n Node) bool {
	for prev := n.PreviousSibling(); prev != nil; prev = prev.PreviousSibling() {
		if prev.Kind() == TextNode {
			continue
		}
		if strings.TrimSpace(TextContent(prev)) != "" {
			return false
		}
	}
	return true
}

// openHeading handles h1..h4.
func openHeading(_ *state, n Node) (string, error) {
	level := int(n.Tag()[1] - '0')
	return strings.Repeat("#", level) + " ", nil
}

func (s *state) openCode(n Node) (string, error) {
	if parentTag(n) != "pre" {
		return " `", nil
	}
	if !s.config.FencedCodeBlocks {
		return "\n" + codeIndent, nil
	}
	return "\n~~~ " + codeLanguage(n) + "\n", nil
}

func (s *state) closeCode(n Node) (string, error) {
	if parentTag(n) != "pre" {
		return "` ", nil
	}
	if !s.config.FencedCodeBlocks {
		return crlf, nil
	}
	return "\n```", nil
}

// codeLanguage prefers the data-language of the enclosing <pre>.
func codeLanguage(n Node) string {
	if p := n.Parent(); p != nil {
		if lang, ok := p.Attr("data-language"); ok {
			return lang
		}
	}
	lang, _ := n.Attr("data-language")
	return lang
}
