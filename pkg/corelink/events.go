package corelink

import (
	"sync"

	"github.com/bft-labs/corelink/internal/app"
)

// State represents the process-wide lifecycle state of the driver.
type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateInitialized
	StateShuttingDown
	StateShutDown
	StateFailed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateInitializing:
		return "Initializing"
	case StateInitialized:
		return "Initialized"
	case StateShuttingDown:
		return "ShuttingDown"
	case StateShutDown:
		return "ShutDown"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// StateChangeEvent describes a lifecycle state transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// EventHandler receives lifecycle events. Implementations should return
// quickly; events are delivered synchronously from the transitioning
// goroutine.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
}

// eventEmitterWrapper adapts EventHandler to the internal emitter interface.
// The handler is settable because it arrives with Initialize, after the
// process lifecycle has been constructed.
type eventEmitterWrapper struct {
	mu      sync.RWMutex
	handler EventHandler
}

func (e *eventEmitterWrapper) setHandler(handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handler = handler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	e.mu.RLock()
	handler := e.handler
	e.mu.RUnlock()

	if handler == nil {
		return
	}
	handler.OnStateChange(StateChangeEvent{
		Previous: convertState(previous),
		Current:  convertState(current),
		Reason:   reason,
	})
}

func convertState(s app.State) State {
	switch s {
	case app.StateUninitialized:
		return StateUninitialized
	case app.StateInitializing:
		return StateInitializing
	case app.StateInitialized:
		return StateInitialized
	case app.StateShuttingDown:
		return StateShuttingDown
	case app.StateShutDown:
		return StateShutDown
	case app.StateFailed:
		return StateFailed
	default:
		return StateUninitialized
	}
}
