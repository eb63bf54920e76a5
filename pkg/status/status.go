package status

import "fmt"

// ErrorKind categorizes a failed Status.
type ErrorKind int

const (
	// KindNone marks a successful Status.
	KindNone ErrorKind = iota

	// KindInvalidOptions means the options were rejected before any
	// global-state change. Fix the input and retry Initialize.
	KindInvalidOptions

	// KindAlreadyInitialized means Initialize was called when the driver
	// was not in the Uninitialized state.
	KindAlreadyInitialized

	// KindNotInitialized means Shutdown was called before a successful
	// Initialize.
	KindNotInitialized

	// KindShutdownInProgress means another caller currently owns the
	// shutdown transition. Retry shortly.
	KindShutdownInProgress

	// KindExceededTimeLimit means teardown did not finish within the
	// configured grace period. This is the only kind for which retrying
	// the same operation is sanctioned.
	KindExceededTimeLimit

	// KindPermanentFailure means the driver is unusable and the operation
	// must not be retried.
	KindPermanentFailure
)

// String returns a human-readable representation of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "OK"
	case KindInvalidOptions:
		return "InvalidOptions"
	case KindAlreadyInitialized:
		return "AlreadyInitialized"
	case KindNotInitialized:
		return "NotInitialized"
	case KindShutdownInProgress:
		return "ShutdownInProgress"
	case KindExceededTimeLimit:
		return "ExceededTimeLimit"
	case KindPermanentFailure:
		return "PermanentFailure"
	default:
		return "Unknown"
	}
}

// Status is the result of a lifecycle operation: either OK, or a categorized
// failure with a message. A zero Status is OK.
type Status struct {
	kind   ErrorKind
	reason string
}

// OK returns a successful Status.
func OK() Status {
	return Status{}
}

// New returns a failed Status with the given kind and reason.
// New with KindNone is equivalent to OK().
func New(kind ErrorKind, reason string) Status {
	if kind == KindNone {
		return Status{}
	}
	return Status{kind: kind, reason: reason}
}

// Errf returns a failed Status with a formatted reason.
func Errf(kind ErrorKind, format string, args ...interface{}) Status {
	return New(kind, fmt.Sprintf(format, args...))
}

// IsOK reports whether the operation succeeded.
func (s Status) IsOK() bool {
	return s.kind == KindNone
}

// Kind returns the failure category, or KindNone for a successful Status.
func (s Status) Kind() ErrorKind {
	return s.kind
}

// Reason returns the failure message, or "" for a successful Status.
func (s Status) Reason() string {
	return s.reason
}

// Err returns nil for a successful Status, or an error describing the failure.
func (s Status) Err() error {
	if s.IsOK() {
		return nil
	}
	return fmt.Errorf("%s: %s", s.kind, s.reason)
}

// String returns a human-readable representation of the Status.
func (s Status) String() string {
	if s.IsOK() {
		return "OK"
	}
	return fmt.Sprintf("%s: %s", s.kind, s.reason)
}
