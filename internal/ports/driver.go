package ports

import "context"

// Driver abstracts the underlying client driver's one-time setup and
// teardown. Both operations are opaque to the lifecycle layer: they either
// succeed, fail, or (for teardown) outlive the configured grace period.
//
// Implementations must tolerate Teardown being invoked again after a
// timed-out call: the lifecycle layer cannot observe whether the first
// delegation eventually completed.
type Driver interface {
	// Setup performs the driver's one-time global initialization.
	// It may block for an unbounded duration.
	Setup(ctx context.Context) error

	// Teardown releases the driver's global resources. The lifecycle
	// layer bounds the wait with the configured grace period; the context
	// is canceled when the caller stops waiting.
	Teardown(ctx context.Context) error
}
