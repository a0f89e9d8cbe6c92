package engine

import (
	"errors"
	"fmt"
)

// Reason tags an engine error so callers can react to the exact precondition
// that failed without parsing messages.
type Reason string

const (
	ReasonNotAuthenticated   Reason = "not_authenticated"
	ReasonNoActiveSession    Reason = "no_active_session"
	ReasonAlreadyCompleted   Reason = "already_completed"
	ReasonQuestionNotCurrent Reason = "question_not_current"
	ReasonOptionOutOfRange   Reason = "option_out_of_range"
	ReasonLanguageUnknown    Reason = "language_unknown"
	ReasonRemoteFailed       Reason = "remote_failed"
)

// Error is a tagged engine failure: a machine-readable reason plus a
// human-readable message, optionally wrapping a remote cause.
type Error struct {
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Reason, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(reason Reason, format string, args ...interface{}) *Error {
	return &Error{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func remoteError(message string, cause error) *Error {
	return &Error{Reason: ReasonRemoteFailed, Message: message, Err: cause}
}

// IsReason reports whether err is an engine error with the given reason.
func IsReason(err error, reason Reason) bool {
	var e *Error
	return errors.As(err, &e) && e.Reason == reason
}
