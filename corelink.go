// Package corelink re-exports the driver lifecycle API from pkg/corelink so
// callers can depend on the module root.
//
// Example usage:
//
//	opts := corelink.DefaultOptions()
//	if st := corelink.Initialize(opts); !st.IsOK() {
//	    log.Fatal(st)
//	}
//	defer corelink.Shutdown()
package corelink

import (
	"github.com/bft-labs/corelink/pkg/corelink"
)

// Options controls process-wide lifecycle behavior.
// Use DefaultOptions() to get an Options with sensible defaults.
type Options = corelink.Options

// Status reports the outcome of a lifecycle operation.
type Status = corelink.Status

// ErrorKind classifies a failed Status.
type ErrorKind = corelink.ErrorKind

// GlobalInstance ties driver teardown to a scope.
type GlobalInstance = corelink.GlobalInstance

// Option customizes Initialize beyond the plain Options struct.
type Option = corelink.Option

// State identifies a stage of the process-wide lifecycle.
type State = corelink.State

// StateChangeEvent describes a single lifecycle transition.
type StateChangeEvent = corelink.StateChangeEvent

// DefaultOptions returns an Options with sensible defaults.
func DefaultOptions() Options {
	return corelink.DefaultOptions()
}

// Initialize sets up the process-wide driver state. See pkg/corelink.
func Initialize(opts Options, extras ...Option) Status {
	return corelink.Initialize(opts, extras...)
}

// Shutdown tears down the process-wide driver state. See pkg/corelink.
func Shutdown() Status {
	return corelink.Shutdown()
}

// CurrentState reports the lifecycle state of this process.
func CurrentState() State {
	return corelink.CurrentState()
}

// NewGlobalInstance initializes the process and returns a scope-owning handle.
func NewGlobalInstance(opts Options, extras ...Option) *GlobalInstance {
	return corelink.NewGlobalInstance(opts, extras...)
}

// Driver connects the lifecycle to an external resource.
type Driver = corelink.Driver

// ExitHook abstracts process-exit notification.
type ExitHook = corelink.ExitHook

// Logger is the structured logger accepted by WithLogger.
type Logger = corelink.Logger

// EventHandler receives lifecycle state-change events.
type EventHandler = corelink.EventHandler

// WithDriver injects the driver the lifecycle manages.
func WithDriver(d Driver) Option {
	return corelink.WithDriver(d)
}

// WithLogger injects the logger used by the lifecycle layer.
func WithLogger(l Logger) Option {
	return corelink.WithLogger(l)
}

// WithEventHandler registers a handler for state-change events.
func WithEventHandler(h EventHandler) Option {
	return corelink.WithEventHandler(h)
}

// WithExitHook overrides the process-exit hook used when
// Options.CallShutdownAtExit is set.
func WithExitHook(h ExitHook) Option {
	return corelink.WithExitHook(h)
}
