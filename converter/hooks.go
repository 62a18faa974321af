package converter

import (
	"context"
	"errors"
)

// ErrUnresolved indicates that a link or image target could not be resolved by a hook.
// It is reported through the ErrorPolicy; the original target is kept under ErrorPolicyLog.
var ErrUnresolved = errors.New("unresolved link or image reference")

// URLRewriteHook can rewrite the href of <a> and the src of <img> during conversion.
type URLRewriteHook func(ctx context.Context, in URLRewriteInput) (URLRewriteOutput, error)

// URLRewriteInput describes the target being rendered.
type URLRewriteInput struct {
	Tag  string // "a" or "img"
	Attr string // "href" or "src"
	URL  string
	Alt  string // img only
}

// URLRewriteOutput contains the hook-provided target.
type URLRewriteOutput struct {
	URL     string
	Handled bool
}
