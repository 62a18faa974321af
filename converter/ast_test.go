package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeNodeLinks(t *testing.T) {
	first := txt("a")
	second := el("B")
	third := el("p", txt("c"))
	parent := el("body", first, second, third)

	assert.Equal(t, "b", second.Tag())
	assert.Nil(t, parent.Parent())
	assert.Nil(t, first.PreviousSibling())
	assert.Equal(t, Node(first), second.PreviousSibling())
	assert.Equal(t, Node(second), third.PreviousSibling())
	assert.Equal(t, Node(parent), third.Parent())
	assert.Len(t, parent.Children(), 3)
	assert.Nil(t, parent.PreviousSibling())
}

func TestAncestorsNearestFirst(t *testing.T) {
	leaf := txt("x")
	el("html", el("body", el("blockquote", el("p", leaf))))

	ancestors := Ancestors(leaf)
	require.Len(t, ancestors, 4)

	var tags []string
	for _, a := range ancestors {
		tags = append(tags, a.Tag())
	}
	assert.Equal(t, []string{"p", "blockquote", "body", "html"}, tags)
	assert.True(t, hasAncestor(leaf, "blockquote"))
	assert.False(t, hasAncestor(leaf, "ul"))
}

func TestTextContent(t *testing.T) {
	node := el("p", txt("a "), el("em", txt("b")), txt(" c"))

	assert.Equal(t, "a b c", TextContent(node))
	assert.Equal(t, "", TextContent(el("hr")))
}
