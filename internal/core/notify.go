package core

import "strings"

// Severity is the level of a user-facing notification.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Notifier reports a message to the user at a given severity. It is an
// injected dependency so the validators and services stay pure and testable;
// adapters decide whether a notification becomes a log line, a toast, or a
// response field.
type Notifier interface {
	Notify(severity Severity, message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(severity Severity, message string)

func (f NotifierFunc) Notify(severity Severity, message string) { f(severity, message) }

// NopNotifier discards all notifications.
var NopNotifier Notifier = NotifierFunc(func(Severity, string) {})

// ReportValidation forwards a failed validation result to the notifier as a
// single error message, one line per rule violation. Valid results produce no
// notification.
func ReportValidation(n Notifier, result ValidationResult) {
	if result.Valid || n == nil {
		return
	}
	n.Notify(SeverityError, strings.Join(result.Errors, "\n"))
}
