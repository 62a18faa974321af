package converter

import (
	"errors"
	"fmt"
)

// ErrMaxDepthExceeded is returned when the tree is nested deeper than Config.MaxDepth.
// It is fatal under every ErrorPolicy.
var ErrMaxDepthExceeded = errors.New("maximum tree depth exceeded")

// UnknownTagError reports an element with no opening or ending branch.
type UnknownTagError struct {
	Tag    string
	Ending bool
}

func (e *UnknownTagError) Error() string {
	if e.Ending {
		return fmt.Sprintf("unknown end tag: %s", e.Tag)
	}
	return fmt.Sprintf("unknown start tag: %s", e.Tag)
}

// MalformedTableError reports a <thead> holding more than one <tr>.
type MalformedTableError struct {
	Rows int
}

func (e *MalformedTableError) Error() string {
	return "malformed table header"
}
