package main

import (
	"github.com/rgonek/html-md-converter/converter"
	"github.com/sirupsen/logrus"
)

type logrusSink struct {
	logger *logrus.Logger
}

func (s logrusSink) Log(severity converter.Severity, message string) {
	entry := s.logger.WithField("component", "converter")
	switch severity {
	case converter.SeverityDebug:
		entry.Debug(message)
	case converter.SeverityWarn:
		entry.Warn(message)
	case converter.SeverityError:
		entry.Error(message)
	default:
		entry.Info(message)
	}
}
