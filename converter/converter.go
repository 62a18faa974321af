package converter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Converter converts an HTML node tree to Markdown.
// A Converter is safe for concurrent use; every call gets its own state.
type Converter struct {
	config Config
}

// state is owned by exactly one conversion call.
type state struct {
	ctx    context.Context
	config Config

	orderedListCounters []int
	tableHeaderRows     int
	tableAlignments     []Alignment

	warnings []Warning
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
	}, nil
}

// Convert renders the tree rooted at root as Markdown.
func (c *Converter) Convert(root Node) (Result, error) {
	return c.ConvertWithContext(context.Background(), root)
}

// ConvertWithContext renders the tree rooted at root as Markdown, stopping
// early when ctx is done.
func (c *Converter) ConvertWithContext(ctx context.Context, root Node) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if root == nil {
		return Result{}, errors.New("root node is nil")
	}

	s := &state{
		ctx:    ctx,
		config: c.config,
	}

	markdown, err := s.render(root, 1)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Markdown: markdown,
		Warnings: s.warnings,
	}, nil
}

// ConvertHTML parses an HTML document from r and converts it.
func (c *Converter) ConvertHTML(ctx context.Context, r io.Reader) (Result, error) {
	root, err := ParseHTML(r)
	if err != nil {
		return Result{}, err
	}
	return c.ConvertWithContext(ctx, root)
}

// ConvertString parses and converts an HTML document held in a string.
func (c *Converter) ConvertString(html string) (Result, error) {
	return c.ConvertHTML(context.Background(), strings.NewReader(html))
}

// render emits the opening prefix, the rendered children in document order
// and the ending suffix of n.
func (s *state) render(n Node, depth int) (string, error) {
	if n.Kind() == TextNode {
		return s.renderText(n), nil
	}

	if s.config.MaxDepth > 0 && depth > s.config.MaxDepth {
		return "", fmt.Errorf("%w: limit %d reached at <%s>", ErrMaxDepthExceeded, s.config.MaxDepth, n.Tag())
	}
	if err := s.checkContext(); err != nil {
		return "", err
	}

	var sb strings.Builder

	prefix, err := s.opening(n)
	if err != nil {
		return "", err
	}
	sb.WriteString(prefix)

	for _, child := range n.Children() {
		res, err := s.render(child, depth+1)
		if err != nil {
			return "", err
		}
		sb.WriteString(res)
	}

	suffix, err := s.ending(n)
	if err != nil {
		return "", err
	}
	sb.WriteString(suffix)

	return sb.String(), nil
}

func (s *state) checkContext() error {
	if err := s.ctx.Err(); err != nil {
		return fmt.Errorf("conversion canceled: %w", err)
	}
	return nil
}

// report applies the error policy. Under ErrorPolicyRaise it returns cause;
// otherwise it records a warning, forwards it to the sink and returns nil.
func (s *state) report(warnType WarningType, tag string, cause error) error {
	if s.config.ErrorPolicy == ErrorPolicyRaise {
		return cause
	}

	message := cause.Error()
	s.warnings = append(s.warnings, Warning{
		Type:    warnType,
		Tag:     tag,
		Message: message,
	})
	if s.config.Sink != nil {
		s.config.Sink.Log(s.config.DiagnosticLevel, message)
	}
	return nil
}
