// Package sanitize reduces arbitrary HTML to the elements the converter
// understands before conversion.
package sanitize

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var alignPattern = regexp.MustCompile(`(?i)^(left|center|right)$`)

var defaultPolicy = sync.OnceValue(Policy)

// Policy returns a new allow-list policy covering the converter's tag set.
// Other elements are dropped but their text is kept.
func Policy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	// Blocks
	p.AllowElements("p", "h1", "h2", "h3", "h4", "blockquote", "hr")
	p.AllowElements("pre", "code")
	p.AllowAttrs("data-language").OnElements("pre", "code")

	// Inline
	p.AllowElements("em", "strong")

	// Lists
	p.AllowElements("ul", "ol", "li")

	// Tables
	p.AllowElements("table", "thead", "tbody", "tr", "th", "td")
	p.AllowAttrs("align").Matching(alignPattern).OnElements("th", "td")

	// Links and images
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")

	return p
}

// HTML sanitizes raw with the shared default policy.
func HTML(raw string) string {
	return defaultPolicy().Sanitize(raw)
}
