// Package proc provides the process-level exit hook adapter.
//
// Go has no atexit, so "run shutdown at process exit" is approximated two
// ways: callbacks fire when the process receives SIGINT or SIGTERM, and the
// host may call [SignalHook.Fire] on its normal-return path (typically via
// defer in main). A second signal while callbacks are running forces the
// process down.
package proc

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bft-labs/corelink/internal/ports"
)

// SignalHook implements ports.ExitHook using OS signals.
type SignalHook struct {
	mu       sync.Mutex
	fns      []func()
	watching bool
	fired    sync.Once
	logger   ports.Logger
}

// NewSignalHook creates a SignalHook. The signal watcher starts on the first
// OnExit registration, not at construction.
func NewSignalHook(logger ports.Logger) *SignalHook {
	return &SignalHook{logger: logger}
}

// OnExit registers fn to run once at process exit.
func (h *SignalHook) OnExit(fn func()) {
	h.mu.Lock()
	h.fns = append(h.fns, fn)
	if h.watching {
		h.mu.Unlock()
		return
	}
	h.watching = true
	h.mu.Unlock()

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		h.logger.Info("exit signal received, running exit hooks",
			ports.String("signal", sig.String()),
		)

		// A second signal while hooks run forces the process down.
		go func() {
			<-sigCh
			h.logger.Warn("second exit signal, forcing exit")
			os.Exit(1)
		}()

		h.Fire()

		// Restore default disposition and re-raise so the process reports
		// the signal it actually died from.
		signal.Stop(sigCh)
		_ = syscall.Kill(os.Getpid(), sig.(syscall.Signal))
	}()
}

// Fire runs the registered callbacks in registration order, at most once for
// the process lifetime. Safe to call from a defer in main for the
// normal-return path.
func (h *SignalHook) Fire() {
	h.fired.Do(func() {
		h.mu.Lock()
		fns := append([]func(){}, h.fns...)
		h.mu.Unlock()

		for _, fn := range fns {
			fn()
		}
	})
}
