package converter

import (
	"strconv"
	"strings"
)

const listIndent = "    "

// listIndentation indents one unit per enclosing list beyond the innermost one.
func listIndentation(n Node) string {
	lists := 0
	for _, a := range Ancestors(n) {
		if tag := a.Tag(); tag == "ol" || tag == "ul" {
			lists++
		}
	}
	return strings.Repeat(listIndent, max(lists-1, 0))
}

// openListItem emits the item marker: the next number inside an <ol>, a dash otherwise.
func (s *state) openListItem(n Node) (string, error) {
	indent := listIndentation(n)
	if parentTag(n) == "ol" {
		return indent + strconv.Itoa(s.nextOrderedItem()) + ". ", nil
	}
	return indent + "- ", nil
}

func (s *state) openOrderedList(Node) (string, error) {
	s.orderedListCounters = append(s.orderedListCounters, 0)
	return crlf, nil
}

func (s *state) closeOrderedList(Node) (string, error) {
	if n := len(s.orderedListCounters); n > 0 {
		s.orderedListCounters = s.orderedListCounters[:n-1]
	}
	return crlf, nil
}

func (s *state) nextOrderedItem() int {
	if len(s.orderedListCounters) == 0 {
		// Conversion started below the <ol>.
		s.orderedListCounters = append(s.orderedListCounters, 0)
	}
	top := len(s.orderedListCounters) - 1
	s.orderedListCounters[top]++
	return s.orderedListCounters[top]
}
