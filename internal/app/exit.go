package app

import (
	"sync"

	"github.com/bft-labs/corelink/internal/ports"
)

// ExitCoordinator tracks whether an automatic shutdown has been registered
// to run at process exit, and whether that call is still armed. It exists so
// the three teardown triggers (explicit Shutdown, a GlobalInstance going out
// of scope, the exit hook) agree on a single owner and teardown never runs
// twice.
//
// The coordinator is initialized on first registration and never explicitly
// torn down. Its armed flag is mutated under the same mutual-exclusion
// discipline as the lifecycle state.
type ExitCoordinator struct {
	mu         sync.Mutex
	registered bool
	armed      bool
}

// NewExitCoordinator creates a disarmed coordinator.
func NewExitCoordinator() *ExitCoordinator {
	return &ExitCoordinator{}
}

// RegisterAutoShutdown arms the automatic shutdown and, on first call,
// registers fn with the hook. Idempotent: no matter how many times it is
// called, at most one callback is ever registered.
func (c *ExitCoordinator) RegisterAutoShutdown(hook ports.ExitHook, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.armed = true
	if c.registered {
		return
	}
	c.registered = true

	hook.OnExit(func() {
		if !c.disarm() {
			return
		}
		fn()
	})
}

// MarkHandled disarms the automatic shutdown. Called by any successful
// shutdown so a later hook firing becomes a no-op.
func (c *ExitCoordinator) MarkHandled() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.armed = false
}

// AutoShutdownArmed reports whether the automatic exit hook currently owns
// the eventual shutdown.
func (c *ExitCoordinator) AutoShutdownArmed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.armed
}

// disarm atomically consumes the armed flag, reporting whether it was set.
func (c *ExitCoordinator) disarm() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	was := c.armed
	c.armed = false
	return was
}
