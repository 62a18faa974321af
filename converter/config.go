package converter

import "fmt"

// ErrorPolicy controls how unknown tags and malformed tables are reported.
type ErrorPolicy string

const (
	// ErrorPolicyRaise aborts the conversion with a typed error.
	ErrorPolicyRaise ErrorPolicy = "raise"
	// ErrorPolicyLog forwards the diagnostic to the sink and keeps going.
	ErrorPolicyLog ErrorPolicy = "log"
)

// Config holds all converter configuration options.
type Config struct {
	FencedCodeBlocks bool           `json:"fencedCodeBlocks,omitempty"`
	ErrorPolicy      ErrorPolicy    `json:"errorPolicy,omitempty"`
	DiagnosticLevel  Severity       `json:"diagnosticLevel,omitempty"`
	MaxDepth         int            `json:"maxDepth,omitempty"` // 0 means unlimited
	Sink             DiagnosticSink `json:"-"`
	URLHook          URLRewriteHook `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.ErrorPolicy == "" {
		c.ErrorPolicy = ErrorPolicyLog
	}
	if c.DiagnosticLevel == "" {
		c.DiagnosticLevel = SeverityInfo
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.ErrorPolicy != ErrorPolicyRaise && c.ErrorPolicy != ErrorPolicyLog {
		return fmt.Errorf("invalid errorPolicy %q", c.ErrorPolicy)
	}
	if !c.DiagnosticLevel.valid() {
		return fmt.Errorf("invalid diagnosticLevel %q", c.DiagnosticLevel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("maxDepth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}
