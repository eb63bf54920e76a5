package domain

import "errors"

// Domain errors represent error conditions in the corelink lifecycle domain.
// These errors are returned by the internal layers and can be checked with
// errors.Is; the public facade converts them to status values.
var (
	// ErrInvalidOptions is returned when option validation fails before
	// any global-state change.
	ErrInvalidOptions = errors.New("corelink: invalid options")

	// ErrAlreadyInitialized is returned when Initialize is called and the
	// driver is not Uninitialized.
	ErrAlreadyInitialized = errors.New("corelink: already initialized")

	// ErrNotInitialized is returned when Shutdown is called before a
	// successful Initialize.
	ErrNotInitialized = errors.New("corelink: not initialized")

	// ErrShutdownInProgress is returned when another caller owns the
	// shutdown transition.
	ErrShutdownInProgress = errors.New("corelink: shutdown in progress")

	// ErrExceededTimeLimit is returned when driver teardown does not
	// finish within the configured grace period. Retrying Shutdown is
	// sanctioned.
	ErrExceededTimeLimit = errors.New("corelink: shutdown exceeded time limit")

	// ErrPermanentFailure is returned when the driver failed in a way
	// that does not admit retrying.
	ErrPermanentFailure = errors.New("corelink: permanent failure")
)
