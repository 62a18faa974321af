package converter

import (
	"context"
	"log/slog"
)

// Severity is the level a diagnostic is forwarded at.
type Severity string

const (
	SeverityDebug Severity = "debug"
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

func (s Severity) valid() bool {
	switch s {
	case SeverityDebug, SeverityInfo, SeverityWarn, SeverityError:
		return true
	default:
		return false
	}
}

// DiagnosticSink receives non-fatal conversion diagnostics.
type DiagnosticSink interface {
	Log(severity Severity, message string)
}

// SinkFunc adapts a plain function to DiagnosticSink.
type SinkFunc func(severity Severity, message string)

func (f SinkFunc) Log(severity Severity, message string) {
	f(severity, message)
}

type slogSink struct {
	logger *slog.Logger
}

// NewSlogSink forwards diagnostics to logger. A nil logger uses slog.Default().
func NewSlogSink(logger *slog.Logger) DiagnosticSink {
	if logger == nil {
		logger = slog.Default()
	}
	return slogSink{logger: logger.With(slog.String("component", "converter"))}
}

func (s slogSink) Log(severity Severity, message string) {
	s.logger.Log(context.Background(), slogLevel(severity), message)
}

func slogLevel(severity Severity) slog.Level {
	switch severity {
	case SeverityDebug:
		return slog.LevelDebug
	case SeverityWarn:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
