package converter

import (
	"fmt"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"
)

type htmlNode struct {
	n *xhtml.Node
}

// FromHTML adapts a golang.org/x/net/html tree. Passing the DocumentNode
// returned by html.Parse yields its <html> element. Comments, doctypes and
// the parser-generated <head> are not visible through the adapter.
func FromHTML(n *xhtml.Node) Node {
	if n == nil {
		return nil
	}
	if n.Type == xhtml.DocumentNode {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == xhtml.ElementNode {
				return htmlNode{n: c}
			}
		}
		return nil
	}
	if !visibleHTMLNode(n) {
		return nil
	}
	return htmlNode{n: n}
}

// ParseHTML parses a full HTML document and returns its <html> element.
func ParseHTML(r io.Reader) (Node, error) {
	doc, err := xhtml.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	root := FromHTML(doc)
	if root == nil {
		return nil, fmt.Errorf("failed to parse HTML: document has no root element")
	}
	return root, nil
}

func visibleHTMLNode(n *xhtml.Node) bool {
	switch n.Type {
	case xhtml.TextNode:
		return true
	case xhtml.ElementNode:
		return n.Data != "head"
	default:
		return false
	}
}

func (h htmlNode) Kind() NodeKind {
	if h.n.Type == xhtml.TextNode {
		return TextNode
	}
	return ElementNode
}

func (h htmlNode) Tag() string {
	if h.n.Type != xhtml.ElementNode {
		return ""
	}
	return strings.ToLower(h.n.Data)
}

func (h htmlNode) Attr(name string) (string, bool) {
	for _, attr := range h.n.Attr {
		if attr.Namespace == "" && attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

func (h htmlNode) Children() []Node {
	var out []Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		if visibleHTMLNode(c) {
			out = append(out, htmlNode{n: c})
		}
	}
	return out
}

func (h htmlNode) Text() string {
	if h.n.Type != xhtml.TextNode {
		return ""
	}
	return h.n.Data
}

func (h htmlNode) Parent() Node {
	p := h.n.Parent
	if p == nil || p.Type != xhtml.ElementNode {
		return nil
	}
	return htmlNode{n: p}
}

func (h htmlNode) PreviousSibling() Node {
	for c := h.n.PrevSibling; c != nil; c = c.PrevSibling {
		if visibleHTMLNode(c) {
			return htmlNode{n: c}
		}
	}
	return nil
}
