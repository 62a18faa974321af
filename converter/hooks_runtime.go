package converter

import (
	"errors"
	"fmt"
	"strings"
)

// rewriteURL runs the configured hook for a link or image target and returns
// the URL to emit.
func (s *state) rewriteURL(input URLRewriteInput) (string, error) {
	if s.config.URLHook == nil {
		return input.URL, nil
	}

	if err := s.checkContext(); err != nil {
		return "", err
	}

	output, err := s.config.URLHook(s.ctx, input)
	if err != nil {
		if errors.Is(err, ErrUnresolved) {
			cause := fmt.Errorf("unresolved %s reference %q: %w", input.Tag, input.URL, err)
			if err := s.report(WarningUnresolvedReference, input.Tag, cause); err != nil {
				return "", err
			}
			return input.URL, nil
		}
		return "", fmt.Errorf("url hook failed: %w", err)
	}

	if !output.Handled {
		return input.URL, nil
	}

	rewritten := strings.TrimSpace(output.URL)
	if strings.ContainsAny(rewritten, "\r\n") {
		return "", fmt.Errorf("invalid url hook output: url must be single-line")
	}
	return rewritten, nil
}
