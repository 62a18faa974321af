package converter

import "strings"

// RootTag is the tag name of a synthetic document-root element wrapping a fragment.
const RootTag = "root"

// NodeKind distinguishes element nodes from text nodes.
type NodeKind int

const (
	ElementNode NodeKind = iota
	TextNode
)

// Node is a read-only view of one node of a parsed HTML tree.
type Node interface {
	Kind() NodeKind
	// Tag returns the lowercase tag name; empty for text nodes.
	Tag() string
	Attr(name string) (string, bool)
	Children() []Node
	// Text returns the raw content of a text node.
	Text() string
	// Parent returns the owning element, or nil at the root.
	Parent() Node
	PreviousSibling() Node
}

// Ancestors returns the ancestor elements of n, nearest first.
func Ancestors(n Node) []Node {
	var out []Node
	for p := n.Parent(); p != nil; p = p.Parent() {
		out = append(out, p)
	}
	return out
}

// TextContent returns the concatenated text of n and all its descendants.
func TextContent(n Node) string {
	if n.Kind() == TextNode {
		return n.Text()
	}
	var sb strings.Builder
	for _, child := range n.Children() {
		sb.WriteString(TextContent(child))
	}
	return sb.String()
}

func parentTag(n Node) string {
	if p := n.Parent(); p != nil {
		return p.Tag()
	}
	return ""
}

func hasAncestor(n Node, tag string) bool {
	for _, a := range Ancestors(n) {
		if a.Tag() == tag {
			return true
		}
	}
	return false
}

// TreeNode is an in-memory Node. Build trees with NewElement and NewText.
type TreeNode struct {
	kind     NodeKind
	tag      string
	attrs    map[string]string
	text     string
	children []*TreeNode
	parent   *TreeNode
}

// NewElement creates an element node and adopts children as its own.
func NewElement(tag string, attrs map[string]string, children ...*TreeNode) *TreeNode {
	el := &TreeNode{
		kind:  ElementNode,
		tag:   strings.ToLower(tag),
		attrs: attrs,
	}
	for _, child := range children {
		el.Append(child)
	}
	return el
}

// NewText creates a text node.
func NewText(text string) *TreeNode {
	return &TreeNode{kind: TextNode, text: text}
}

// Append adds child as the last child of t and returns t.
func (t *TreeNode) Append(child *TreeNode) *TreeNode {
	child.parent = t
	t.children = append(t.children, child)
	return t
}

func (t *TreeNode) Kind() NodeKind { return t.kind }
func (t *TreeNode) Tag() string    { return t.tag }
func (t *TreeNode) Text() string   { return t.text }

func (t *TreeNode) Attr(name string) (string, bool) {
	v, ok := t.attrs[name]
	return v, ok
}

func (t *TreeNode) Children() []Node {
	out := make([]Node, len(t.children))
	for i, c := range t.children {
		out[i] = c
	}
	return out
}

func (t *TreeNode) Parent() Node {
	if t.parent == nil {
		return nil
	}
	return t.parent
}

func (t *TreeNode) PreviousSibling() Node {
	if t.parent == nil {
		return nil
	}
	var prev *TreeNode
	for _, c := range t.parent.children {
		if c == t {
			break
		}
		prev = c
	}
	if prev == nil {
		return nil
	}
	return prev
}
