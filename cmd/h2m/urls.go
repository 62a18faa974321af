package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rgonek/html-md-converter/converter"
)

// newBaseURLHook resolves relative link and image targets against base.
// Absolute targets and in-page fragments are left alone.
func newBaseURLHook(base string) (converter.URLRewriteHook, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", base, err)
	}
	if !baseURL.IsAbs() {
		return nil, fmt.Errorf("base url %q must be absolute", base)
	}

	return func(_ context.Context, in converter.URLRewriteInput) (converter.URLRewriteOutput, error) {
		target := strings.TrimSpace(in.URL)
		if target == "" || strings.HasPrefix(target, "#") {
			return converter.URLRewriteOutput{}, nil
		}

		ref, err := url.Parse(target)
		if err != nil {
			return converter.URLRewriteOutput{}, fmt.Errorf("%w: %v", converter.ErrUnresolved, err)
		}
		if ref.IsAbs() {
			return converter.URLRewriteOutput{}, nil
		}

		return converter.URLRewriteOutput{
			URL:     baseURL.ResolveReference(ref).String(),
			Handled: true,
		}, nil
	}, nil
}
