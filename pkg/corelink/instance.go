package corelink

import (
	"fmt"
	"sync"

	"github.com/bft-labs/corelink/internal/ports"
	"github.com/bft-labs/corelink/pkg/status"
)

// GlobalInstance ties the driver's lifetime to a lexical scope: construction
// calls Initialize and Close performs the matching Shutdown if this instance
// still owns it. For more refined control over initialization and shutdown
// errors, use the explicit Initialize and Shutdown functions; the
// restrictions on when Initialize may be called are not obviated by this
// type.
//
// Construction has no failure channel. Check Initialized or Status after
// constructing; a GlobalInstance that failed to initialize never attempts
// shutdown.
type GlobalInstance struct {
	mu              sync.Mutex
	terminateNeeded bool
	status          status.Status
	logger          ports.Logger
}

// NewGlobalInstance invokes Initialize with the provided Options and
// captures the result. If initialization succeeded and the options do not
// arm an automatic shutdown at exit, the instance owns eventual teardown and
// Close will invoke Shutdown.
func NewGlobalInstance(opts Options, extras ...Option) *GlobalInstance {
	o := applyOptions(extras)
	st := initialize(opts, o)

	return &GlobalInstance{
		terminateNeeded: st.IsOK() && !autoShutdownArmed(),
		status:          st,
		logger:          o.logger,
	}
}

// Status returns the Status generated by the internal Initialize call.
func (g *GlobalInstance) Status() Status {
	return g.status
}

// Initialized reports whether initialization succeeded.
func (g *GlobalInstance) Initialized() bool {
	return g.status.IsOK()
}

// AssertInitialized panics if the instance failed to initialize the driver.
// Reserved for call sites that treat failed setup as a programming error;
// Status and Initialized never panic.
func (g *GlobalInstance) AssertInitialized() {
	if !g.status.IsOK() {
		panic(fmt.Sprintf("corelink: driver initialization failed: %v", g.status))
	}
}

// Shutdown immediately calls the global Shutdown and returns the resulting
// Status, if this instance still owns teardown; otherwise it returns OK with
// nothing to do. On OK the instance abandons the pending teardown in Close.
// On any non-OK result, including ExceededTimeLimit, the pending teardown is
// kept so Close, or a later explicit retry, attempts it again.
func (g *GlobalInstance) Shutdown() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.terminateNeeded {
		return status.OK()
	}

	st := Shutdown()
	if st.IsOK() {
		g.terminateNeeded = false
	}
	return st
}

// Close performs the pending teardown, if any. Intended for defer in
// main-equivalent scope. There is no return channel: a shutdown failure at
// scope exit is logged and otherwise discarded.
func (g *GlobalInstance) Close() {
	st := g.Shutdown()
	if !st.IsOK() {
		g.logger.Error("shutdown at scope exit failed",
			ports.String("status", st.String()),
		)
	}
}
