package converter

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hookContextKey string

const traceContextKey hookContextKey = "trace"

func linkDocument(href string) *TreeNode {
	return el("body", el("p",
		txt("See "),
		elAttrs("a", map[string]string{"href": href}, txt("docs")),
	))
}

func TestURLHookRewritesLinkTarget(t *testing.T) {
	var called atomic.Bool
	conv := newTestConverter(t, Config{
		URLHook: func(ctx context.Context, in URLRewriteInput) (URLRewriteOutput, error) {
			called.Store(true)
			assert.Equal(t, "hook-test", ctx.Value(traceContextKey))
			assert.Equal(t, URLRewriteInput{Tag: "a", Attr: "href", URL: "https://wiki.example/pages/123"}, in)
			return URLRewriteOutput{URL: " ../pages/123.md ", Handled: true}, nil
		},
	})

	ctx := context.WithValue(context.Background(), traceContextKey, "hook-test")
	result, err := conv.ConvertWithContext(ctx, linkDocument("https://wiki.example/pages/123"))
	require.NoError(t, err)
	assert.True(t, called.Load())
	assert.Equal(t, "See [docs](../pages/123.md) \r\n", result.Markdown)
	assert.Empty(t, result.Warnings)
}

func TestURLHookRewritesImageSource(t *testing.T) {
	conv := newTestConverter(t, Config{
		URLHook: func(_ context.Context, in URLRewriteInput) (URLRewriteOutput, error) {
			assert.Equal(t, "img", in.Tag)
			assert.Equal(t, "src", in.Attr)
			assert.Equal(t, "logo", in.Alt)
			return URLRewriteOutput{URL: "assets/" + in.URL, Handled: true}, nil
		},
	})

	root := el("body", el("p",
		elAttrs("img", map[string]string{"src": "logo.png", "alt": "logo"}),
	))

	result, err := conv.Convert(root)
	require.NoError(t, err)
	assert.Equal(t, "![logo](assets/logo.png) \r\n", result.Markdown)
}

func TestURLHookUnhandledKeepsOriginal(t *testing.T) {
	conv := newTestConverter(t, Config{
		URLHook: func(context.Context, URLRewriteInput) (URLRewriteOutput, error) {
			return URLRewriteOutput{URL: "ignored"}, nil
		},
	})

	result, err := conv.Convert(linkDocument("http://x"))
	require.NoError(t, err)
	assert.Equal(t, "See [docs](http://x) \r\n", result.Markdown)
}

func TestURLHookUnresolved(t *testing.T) {
	hook := func(context.Context, URLRewriteInput) (URLRewriteOutput, error) {
		return URLRewriteOutput{}, ErrUnresolved
	}

	t.Run("log keeps the original target", func(t *testing.T) {
		var logged []string
		sink := SinkFunc(func(_ Severity, message string) {
			logged = append(logged, message)
		})

		result := convertTree(t, Config{URLHook: hook, Sink: sink}, linkDocument("wiki:Missing"))

		assert.Equal(t, "See [docs](wiki:Missing) \r\n", result.Markdown)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, WarningUnresolvedReference, result.Warnings[0].Type)
		assert.Equal(t, "a", result.Warnings[0].Tag)
		assert.Equal(t, []string{`unresolved a reference "wiki:Missing": unresolved link or image reference`}, logged)
	})

	t.Run("raise fails the conversion", func(t *testing.T) {
		conv := newTestConverter(t, Config{URLHook: hook, ErrorPolicy: ErrorPolicyRaise})

		result, err := conv.Convert(linkDocument("wiki:Missing"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnresolved)
		assert.Equal(t, Result{}, result)
	})
}

func TestURLHookErrorAbortsConversion(t *testing.T) {
	boom := errors.New("boom")
	conv := newTestConverter(t, Config{
		URLHook: func(context.Context, URLRewriteInput) (URLRewriteOutput, error) {
			return URLRewriteOutput{}, boom
		},
	})

	_, err := conv.Convert(linkDocument("http://x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "url hook failed")
}

func TestURLHookRejectsMultilineOutput(t *testing.T) {
	conv := newTestConverter(t, Config{
		URLHook: func(context.Context, URLRewriteInput) (URLRewriteOutput, error) {
			return URLRewriteOutput{URL: "a\nb", Handled: true}, nil
		},
	})

	_, err := conv.Convert(linkDocument("http://x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be single-line")
}

func TestURLHookCancellationStopsConversion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	conv := newTestConverter(t, Config{
		URLHook: func(_ context.Context, in URLRewriteInput) (URLRewriteOutput, error) {
			calls.Add(1)
			cancel()
			return URLRewriteOutput{URL: in.URL, Handled: true}, nil
		},
	})

	root := el("body",
		el("p", elAttrs("a", map[string]string{"href": "one"}, txt("1"))),
		el("p", elAttrs("a", map[string]string{"href": "two"}, txt("2"))),
	)

	_, err := conv.ConvertWithContext(ctx, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), calls.Load())
}
