package app

import (
	"sync"
	"testing"
)

// countingHook records registrations and fires them on demand.
type countingHook struct {
	mu  sync.Mutex
	fns []func()
}

func (h *countingHook) OnExit(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fns = append(h.fns, fn)
}

func (h *countingHook) Fire() {
	h.mu.Lock()
	fns := append([]func(){}, h.fns...)
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (h *countingHook) Registrations() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.fns)
}

func TestExitCoordinator_InitiallyDisarmed(t *testing.T) {
	c := NewExitCoordinator()

	if c.AutoShutdownArmed() {
		t.Error("new coordinator is armed")
	}
}

func TestExitCoordinator_RegisterArms(t *testing.T) {
	c := NewExitCoordinator()
	hook := &countingHook{}

	c.RegisterAutoShutdown(hook, func() {})

	if !c.AutoShutdownArmed() {
		t.Error("coordinator not armed after registration")
	}
	if hook.Registrations() != 1 {
		t.Errorf("hook registrations = %d, want 1", hook.Registrations())
	}
}

func TestExitCoordinator_RegisterIsIdempotent(t *testing.T) {
	c := NewExitCoordinator()
	hook := &countingHook{}
	calls := 0

	c.RegisterAutoShutdown(hook, func() { calls++ })
	c.RegisterAutoShutdown(hook, func() { calls++ })
	c.RegisterAutoShutdown(hook, func() { calls++ })

	if hook.Registrations() != 1 {
		t.Fatalf("hook registrations = %d, want 1 (at most one hook is ever armed)", hook.Registrations())
	}

	hook.Fire()
	if calls != 1 {
		t.Errorf("callback calls = %d, want 1", calls)
	}
}

func TestExitCoordinator_MarkHandledDisarms(t *testing.T) {
	c := NewExitCoordinator()
	hook := &countingHook{}
	calls := 0

	c.RegisterAutoShutdown(hook, func() { calls++ })
	c.MarkHandled()

	if c.AutoShutdownArmed() {
		t.Error("coordinator still armed after MarkHandled")
	}

	hook.Fire()
	if calls != 0 {
		t.Errorf("callback calls = %d, want 0 (disarmed hook must be a no-op)", calls)
	}
}

func TestExitCoordinator_FireConsumesArmedFlag(t *testing.T) {
	c := NewExitCoordinator()
	hook := &countingHook{}
	calls := 0

	c.RegisterAutoShutdown(hook, func() { calls++ })

	hook.Fire()
	hook.Fire()

	if calls != 1 {
		t.Errorf("callback calls = %d, want 1 (second fire must be a no-op)", calls)
	}
	if c.AutoShutdownArmed() {
		t.Error("coordinator still armed after firing")
	}
}

func TestExitCoordinator_ReArmAfterMarkHandled(t *testing.T) {
	c := NewExitCoordinator()
	hook := &countingHook{}
	calls := 0

	c.RegisterAutoShutdown(hook, func() { calls++ })
	c.MarkHandled()
	c.RegisterAutoShutdown(hook, func() { calls += 100 })

	if !c.AutoShutdownArmed() {
		t.Fatal("coordinator not re-armed by second registration")
	}
	if hook.Registrations() != 1 {
		t.Errorf("hook registrations = %d, want 1", hook.Registrations())
	}

	hook.Fire()
	// The original callback stays registered; re-registration only re-arms.
	if calls != 1 {
		t.Errorf("callback calls = %d, want 1", calls)
	}
}
