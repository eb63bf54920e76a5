package corelink

import (
	"errors"
	"sync"

	procAdapter "github.com/bft-labs/corelink/internal/adapters/proc"
	"github.com/bft-labs/corelink/internal/app"
	"github.com/bft-labs/corelink/internal/domain"
	"github.com/bft-labs/corelink/internal/ports"
	"github.com/bft-labs/corelink/pkg/status"
)

// Status is the result value returned by lifecycle operations.
type Status = status.Status

// ErrorKind categorizes a failed Status.
type ErrorKind = status.ErrorKind

// Failure kinds, re-exported from pkg/status.
const (
	KindNone               = status.KindNone
	KindInvalidOptions     = status.KindInvalidOptions
	KindAlreadyInitialized = status.KindAlreadyInitialized
	KindNotInitialized     = status.KindNotInitialized
	KindShutdownInProgress = status.KindShutdownInProgress
	KindExceededTimeLimit  = status.KindExceededTimeLimit
	KindPermanentFailure   = status.KindPermanentFailure
)

// processLifecycle is the lazily-constructed, process-wide lifecycle state
// machine. It is never exposed as a mutable value; all access goes through
// Initialize, Shutdown, and CurrentState.
type processLifecycle struct {
	once    sync.Once
	lc      *app.Lifecycle
	emitter *eventEmitterWrapper
}

var process processLifecycle

func lifecycle() (*app.Lifecycle, *eventEmitterWrapper) {
	process.once.Do(func() {
		process.emitter = &eventEmitterWrapper{}
		process.lc = app.NewLifecycle(process.emitter)
	})
	return process.lc, process.emitter
}

// Default signal-driven exit hook, one per process.
var (
	exitHookOnce sync.Once
	exitHook     *procAdapter.SignalHook
)

func processExitHook(logger ports.Logger) ports.ExitHook {
	exitHookOnce.Do(func() {
		exitHook = procAdapter.NewSignalHook(logger)
	})
	return exitHook
}

// Initialize initializes the client driver, possibly with custom options.
//
// Initialize must be called exactly once, after full process startup and
// before any other goroutine uses the driver. A second call after a success
// returns AlreadyInitialized and leaves the first initialization's effects
// intact. Invalid options are rejected before any global-state change, so a
// corrected call may be retried; a driver setup failure is permanent.
//
// With Options.CallShutdownAtExit set, a successful Initialize arms an
// automatic Shutdown at process exit.
func Initialize(opts Options, extras ...Option) Status {
	return initialize(opts, applyOptions(extras))
}

func initialize(opts Options, o options) Status {
	if err := validateModuleVersions(); err != nil {
		return status.New(status.KindPermanentFailure, err.Error())
	}

	lc, emitter := lifecycle()
	if o.handler != nil {
		emitter.setHandler(o.handler)
	}

	hook := o.exitHook
	if hook == nil && opts.CallShutdownAtExit {
		hook = processExitHook(o.logger)
	}

	return statusFromError(lc.Initialize(app.InitParams{
		Driver:              o.driver,
		Logger:              o.logger,
		ShutdownGracePeriod: opts.ShutdownGracePeriod,
		CallShutdownAtExit:  opts.CallShutdownAtExit,
		ExitHook:            hook,
	}))
}

// Shutdown terminates the client driver. If the driver does not terminate
// within the grace period recorded at Initialize time, an ExceededTimeLimit
// Status is returned and it is legal to retry Shutdown; a retry invokes the
// driver's teardown again after the timed-out attempt was cancelled and its
// late result discarded. Other non-OK values do not admit retrying. A failure
// to terminate should be logged, and it may be unsafe to rely on normal
// process teardown to release the driver's resources.
//
// Shutdown after a successful Shutdown returns OK. Once the driver has been
// shut down, it cannot be initialized again.
func Shutdown() Status {
	lc, _ := lifecycle()
	return statusFromError(lc.Shutdown())
}

// CurrentState returns the process-wide lifecycle state.
// Safe to call concurrently from any goroutine.
func CurrentState() State {
	lc, _ := lifecycle()
	return convertState(lc.State())
}

// autoShutdownArmed reports whether the automatic exit hook currently owns
// eventual teardown.
func autoShutdownArmed() bool {
	lc, _ := lifecycle()
	return lc.Exit().AutoShutdownArmed()
}

// statusFromError converts an internal lifecycle error to a Status value.
func statusFromError(err error) Status {
	switch {
	case err == nil:
		return status.OK()
	case errors.Is(err, domain.ErrInvalidOptions):
		return status.New(status.KindInvalidOptions, err.Error())
	case errors.Is(err, domain.ErrAlreadyInitialized):
		return status.New(status.KindAlreadyInitialized, err.Error())
	case errors.Is(err, domain.ErrNotInitialized):
		return status.New(status.KindNotInitialized, err.Error())
	case errors.Is(err, domain.ErrShutdownInProgress):
		return status.New(status.KindShutdownInProgress, err.Error())
	case errors.Is(err, domain.ErrExceededTimeLimit):
		return status.New(status.KindExceededTimeLimit, err.Error())
	default:
		return status.New(status.KindPermanentFailure, err.Error())
	}
}
