package converter

const crlf = "\r\n"

// affixFunc produces the prefix or suffix emitted around an element's children.
type affixFunc func(s *state, n Node) (string, error)

func literal(text string) affixFunc {
	return func(*state, Node) (string, error) {
		return text, nil
	}
}

// openingHandlers maps a tag to its prefix. td and tbody are intentionally
// absent: they only matter through the parent checks of tr.
var openingHandlers = map[string]affixFunc{
	"html":       literal(""),
	"body":       literal(""),
	"li":         (*state).openListItem,
	"ol":         (*state).openOrderedList,
	"ul":         literal(crlf),
	RootTag:      literal(crlf),
	"table":      literal("\n\n"),
	"thead":      (*state).openTableHead,
	"tr":         (*state).openTableRow,
	"th":         (*state).openTableHeaderCell,
	"pre":        literal(crlf),
	"p":          (*state).openParagraph,
	"h1":         openHeading,
	"h2":         openHeading,
	"h3":         openHeading,
	"h4":         openHeading,
	"em":         literal("*"),
	"strong":     literal("**"),
	"blockquote": literal("> "),
	"code":       (*state).openCode,
	"a":          literal(" ["),
	"img":        literal("!["),
	"hr":         literal("----------\n\n"),
}

// endingHandlers maps a tag to its suffix. tbody is absent, td is not.
var endingHandlers = map[string]affixFunc{
	"html":       literal(""),
	"body":       literal(""),
	"pre":        literal(""),
	"hr":         literal(""),
	"th":         literal(" |"),
	"td":         literal(" |"),
	"tr":         literal("\n"),
	"table":      literal("\n"),
	"thead":      (*state).closeTableHead,
	"h1":         literal(crlf),
	"h2":         literal(crlf),
	"h3":         literal(crlf),
	"h4":         literal(crlf),
	"em":         literal("*"),
	"strong":     literal("**"),
	"p":          literal(crlf),
	"li":         literal(crlf),
	"blockquote": literal(crlf),
	RootTag:      literal(crlf),
	"ol":         (*state).closeOrderedList,
	"ul":         literal(crlf),
	"code":       (*state).closeCode,
	"a":          (*state).closeLink,
	"img":        (*state).closeImage,
}

func (s *state) opening(n Node) (string, error) {
	if handler, ok := openingHandlers[n.Tag()]; ok {
		return handler(s, n)
	}
	return "", s.report(WarningUnknownTag, n.Tag(), &UnknownTagError{Tag: n.Tag()})
}

func (s *state) ending(n Node) (string, error) {
	if handler, ok := endingHandlers[n.Tag()]; ok {
		return handler(s, n)
	}
	return "", s.report(WarningUnknownTag, n.Tag(), &UnknownTagError{Tag: n.Tag(), Ending: true})
}
