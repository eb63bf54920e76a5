package corelink

import (
	"context"
	"fmt"
	"time"

	logAdapter "github.com/bft-labs/corelink/internal/adapters/log"
	"github.com/bft-labs/corelink/internal/app"
	"github.com/bft-labs/corelink/internal/domain"
	"github.com/bft-labs/corelink/internal/ports"
	"github.com/bft-labs/corelink/pkg/log"
)

// Re-export types from internal packages for convenient access.
type (
	// Driver is the underlying client driver's setup/teardown contract.
	// Implement it and pass via [WithDriver].
	Driver = ports.Driver

	// ExitHook abstracts process-exit callback registration. A default
	// signal-driven implementation is used when none is injected.
	ExitHook = ports.ExitHook

	// Logger is the Logger interface from pkg/log.
	Logger = log.Logger
)

// Options controls lifecycle behavior. Immutable once passed to
// [Initialize]; the shutdown grace period recorded there bounds every later
// Shutdown call.
type Options struct {
	// ShutdownGracePeriod bounds how long Shutdown waits for driver
	// teardown before reporting ExceededTimeLimit. Zero means do not
	// wait; negative values are rejected.
	ShutdownGracePeriod time.Duration

	// CallShutdownAtExit arms an automatic Shutdown at process exit. When
	// set, the exit hook owns eventual teardown and a GlobalInstance will
	// not tear down on scope exit.
	CallShutdownAtExit bool
}

// DefaultOptions returns Options usable with no further input.
func DefaultOptions() Options {
	return Options{
		ShutdownGracePeriod: app.DefaultShutdownGracePeriod,
		CallShutdownAtExit:  false,
	}
}

// Validate checks the options for errors.
func (o Options) Validate() error {
	if o.ShutdownGracePeriod < 0 {
		return fmt.Errorf("%w: shutdown grace period must not be negative, got %v",
			domain.ErrInvalidOptions, o.ShutdownGracePeriod)
	}
	return nil
}

// Option configures optional collaborators for Initialize.
type Option func(*options)

// options holds the injected collaborators.
type options struct {
	driver   ports.Driver
	logger   ports.Logger
	handler  EventHandler
	exitHook ports.ExitHook
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		driver: noopDriver{},
		logger: logAdapter.NewNoopLogger(),
	}
}

func applyOptions(extras []Option) options {
	o := defaultOptions()
	for _, opt := range extras {
		opt(&o)
	}
	return o
}

// WithDriver sets the driver whose setup/teardown the lifecycle delegates
// to. If not provided, a no-op driver is used and corelink acts as a pure
// coordination layer.
func WithDriver(d Driver) Option {
	return func(o *options) {
		o.driver = d
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventHandler sets a handler for lifecycle state-change events.
// Events are called synchronously from the transitioning goroutine.
// If not provided, no events are emitted.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.handler = handler
	}
}

// WithExitHook replaces the default signal-driven exit hook. Mainly for
// tests and hosts that already own process-exit sequencing.
func WithExitHook(hook ExitHook) Option {
	return func(o *options) {
		o.exitHook = hook
	}
}

// noopDriver has nothing to set up or tear down.
type noopDriver struct{}

func (noopDriver) Setup(ctx context.Context) error    { return nil }
func (noopDriver) Teardown(ctx context.Context) error { return nil }
