package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bft-labs/corelink/internal/domain"
	"github.com/bft-labs/corelink/internal/ports"
)

// DefaultShutdownGracePeriod is the default maximum time to wait for driver
// teardown before reporting a timeout.
const DefaultShutdownGracePeriod = 30 * time.Second

// State represents the lifecycle state of the driver.
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

// EventEmitter is called when lifecycle state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// InitParams carries everything Initialize needs: the driver to delegate to,
// the lifecycle option values, and the injected collaborators.
type InitParams struct {
	Driver              ports.Driver
	Logger              ports.Logger
	ShutdownGracePeriod time.Duration
	CallShutdownAtExit  bool
	ExitHook            ports.ExitHook
}

// Lifecycle guards the driver's setup/teardown entry points with a
// process-wide state machine. The state transition sequence
// Uninitialized -> Initialized -> ShutDown/Failed is totally ordered; all
// state access is serialized by a mutex, and the delegated driver operations
// run outside the lock so a caller arriving mid-transition is answered
// immediately rather than blocked.
type Lifecycle struct {
	mu      sync.RWMutex
	state   State
	driver  ports.Driver
	grace   time.Duration
	logger  ports.Logger
	emitter EventEmitter
	exit    *ExitCoordinator
}

// NewLifecycle creates a lifecycle manager in the Uninitialized state.
func NewLifecycle(emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		state:   StateUninitialized,
		logger:  noopLogger{},
		emitter: emitter,
		exit:    NewExitCoordinator(),
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Exit returns the exit coordinator owned by this lifecycle.
func (l *Lifecycle) Exit() *ExitCoordinator {
	return l.exit
}

// Initialize validates params, delegates to the driver's setup, and on
// success transitions to Initialized. Setup may block for an unbounded
// duration. A validation failure leaves the state Uninitialized so a
// corrected Initialize may be attempted; a driver setup failure is permanent
// and moves the state to Failed.
func (l *Lifecycle) Initialize(params InitParams) error {
	if params.ShutdownGracePeriod < 0 {
		return fmt.Errorf("%w: shutdown grace period must not be negative, got %v",
			domain.ErrInvalidOptions, params.ShutdownGracePeriod)
	}
	if params.Driver == nil {
		return fmt.Errorf("%w: driver must not be nil", domain.ErrInvalidOptions)
	}

	l.mu.Lock()
	if l.state != StateUninitialized {
		l.mu.Unlock()
		return domain.ErrAlreadyInitialized
	}
	l.state = StateInitializing
	l.driver = params.Driver
	l.grace = params.ShutdownGracePeriod
	if params.Logger != nil {
		l.logger = params.Logger
	}
	l.mu.Unlock()
	l.emit(StateUninitialized, StateInitializing, "Initialize() called")

	if err := params.Driver.Setup(context.Background()); err != nil {
		l.mu.Lock()
		l.state = StateFailed
		l.mu.Unlock()
		l.emit(StateInitializing, StateFailed, "driver setup failed")
		return fmt.Errorf("%w: driver setup: %v", domain.ErrPermanentFailure, err)
	}

	l.mu.Lock()
	l.state = StateInitialized
	l.mu.Unlock()
	l.emit(StateInitializing, StateInitialized, "driver setup complete")

	if params.CallShutdownAtExit && params.ExitHook != nil {
		l.exit.RegisterAutoShutdown(params.ExitHook, func() {
			if err := l.Shutdown(); err != nil {
				l.log().Error("automatic shutdown at exit failed", ports.Err(err))
			}
		})
	}

	return nil
}

// Shutdown delegates to the driver's teardown, bounded by the grace period
// recorded at Initialize time. On success the state becomes ShutDown and any
// armed automatic exit hook is disarmed. A timeout leaves the state
// Initialized so the caller may retry; a retried Shutdown invokes the
// driver's teardown again after the first, timed-out delegation had its
// context cancelled and its late result discarded. Any other teardown
// failure is permanent.
//
// Shutdown after a successful Shutdown is an idempotent no-op.
func (l *Lifecycle) Shutdown() error {
	l.mu.Lock()
	switch l.state {
	case StateUninitialized, StateInitializing:
		l.mu.Unlock()
		return domain.ErrNotInitialized
	case StateShutDown:
		l.mu.Unlock()
		return nil
	case StateShuttingDown:
		l.mu.Unlock()
		return domain.ErrShutdownInProgress
	case StateFailed:
		l.mu.Unlock()
		return fmt.Errorf("%w: driver is in the Failed state", domain.ErrPermanentFailure)
	}
	driver := l.driver
	grace := l.grace
	l.state = StateShuttingDown
	l.mu.Unlock()
	l.emit(StateInitialized, StateShuttingDown, "Shutdown() called")

	err := l.teardownWithGrace(driver, grace)
	switch {
	case err == nil:
		l.mu.Lock()
		l.state = StateShutDown
		l.mu.Unlock()
		l.emit(StateShuttingDown, StateShutDown, "driver teardown complete")
		l.exit.MarkHandled()
		return nil
	case errors.Is(err, domain.ErrExceededTimeLimit):
		l.mu.Lock()
		l.state = StateInitialized
		l.mu.Unlock()
		l.emit(StateShuttingDown, StateInitialized, "driver teardown timed out")
		return err
	default:
		l.mu.Lock()
		l.state = StateFailed
		l.mu.Unlock()
		l.emit(StateShuttingDown, StateFailed, "driver teardown failed")
		return fmt.Errorf("%w: driver teardown: %v", domain.ErrPermanentFailure, err)
	}
}

// teardownWithGrace runs driver teardown and waits at most grace for it to
// finish. Returns ErrExceededTimeLimit if the grace period expires first; the
// abandoned attempt's context is cancelled on return.
func (l *Lifecycle) teardownWithGrace(driver ports.Driver, grace time.Duration) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- driver.Teardown(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(grace):
		l.log().Warn("driver teardown did not finish within grace period",
			ports.Duration("grace_period", grace),
		)
		return fmt.Errorf("%w: teardown still running after %v", domain.ErrExceededTimeLimit, grace)
	}
}

// emit notifies the event emitter and logs the transition. Called outside
// the state lock.
func (l *Lifecycle) emit(previous, current State, reason string) {
	if l.emitter != nil {
		l.emitter.OnStateChange(previous, current, reason)
	}
	l.log().Info("state transition",
		ports.String("from", previous.String()),
		ports.String("to", current.String()),
		ports.String("reason", reason),
	)
}

func (l *Lifecycle) log() ports.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

// noopLogger discards all log messages.
type noopLogger struct{}

func (noopLogger) Debug(msg string, fields ...ports.Field) {}
func (noopLogger) Info(msg string, fields ...ports.Field)  {}
func (noopLogger) Warn(msg string, fields ...ports.Field)  {}
func (noopLogger) Error(msg string, fields ...ports.Field) {}
