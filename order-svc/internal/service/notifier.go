package service

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// LogNotifier writes user-facing notifications to the service log.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, severity Severity, title, message string) {
	entry := log.WithFields(log.Fields{"severity": severity, "title": title})
	switch severity {
	case SeverityError:
		entry.Error(message)
	case SeverityWarning:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}
