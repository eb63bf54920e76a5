package corelink

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGlobalInstance_OwnsTeardownByDefault(t *testing.T) {
	resetGlobal()
	d := &countDriver{}

	inst := NewGlobalInstance(DefaultOptions(), WithDriver(d))
	if !inst.Initialized() {
		t.Fatalf("Initialized() = false, status %v", inst.Status())
	}
	if !inst.terminateNeeded {
		t.Fatal("terminateNeeded = false, want true (no exit hook armed)")
	}

	if st := inst.Shutdown(); !st.IsOK() {
		t.Fatalf("Shutdown() = %v, want OK", st)
	}
	if inst.terminateNeeded {
		t.Error("terminateNeeded = true after successful Shutdown")
	}

	inst.Close()
	if d.TeardownCalls() != 1 {
		t.Errorf("teardown calls = %d, want 1 (Close must not tear down again)", d.TeardownCalls())
	}
}

func TestGlobalInstance_ExitHookOwnsTeardown(t *testing.T) {
	resetGlobal()
	d := &countDriver{}
	hook := &fakeExitHook{}

	opts := DefaultOptions()
	opts.CallShutdownAtExit = true

	inst := NewGlobalInstance(opts, WithDriver(d), WithExitHook(hook))
	if !inst.Initialized() {
		t.Fatalf("Initialized() = false, status %v", inst.Status())
	}
	if inst.terminateNeeded {
		t.Fatal("terminateNeeded = true, want false (automatic hook owns teardown)")
	}

	inst.Close()
	if d.TeardownCalls() != 0 {
		t.Errorf("teardown calls = %d, want 0 (teardown belongs to the exit hook)", d.TeardownCalls())
	}

	hook.Fire()
	if d.TeardownCalls() != 1 {
		t.Errorf("teardown calls after hook = %d, want 1", d.TeardownCalls())
	}
}

func TestGlobalInstance_ExplicitShutdownDisarmsExitHook(t *testing.T) {
	resetGlobal()
	d := &countDriver{}
	hook := &fakeExitHook{}

	opts := DefaultOptions()
	opts.CallShutdownAtExit = true

	inst := NewGlobalInstance(opts, WithDriver(d), WithExitHook(hook))
	if !inst.Initialized() {
		t.Fatalf("Initialized() = false, status %v", inst.Status())
	}

	// The instance does not own teardown, but a direct global Shutdown
	// still disarms the hook.
	if st := Shutdown(); !st.IsOK() {
		t.Fatalf("Shutdown() = %v", st)
	}

	hook.Fire()
	if d.TeardownCalls() != 1 {
		t.Errorf("teardown calls = %d, want 1 (hook must observe already done)", d.TeardownCalls())
	}
}

func TestGlobalInstance_FailedInitialize(t *testing.T) {
	resetGlobal()
	d := &countDriver{setupErr: errors.New("handshake refused")}

	inst := NewGlobalInstance(DefaultOptions(), WithDriver(d))
	if inst.Initialized() {
		t.Fatal("Initialized() = true for failed setup")
	}
	if inst.terminateNeeded {
		t.Error("terminateNeeded = true for failed setup")
	}
	if st := inst.Shutdown(); !st.IsOK() {
		t.Errorf("Shutdown() = %v, want OK (nothing to do)", st)
	}

	inst.Close()
	if d.TeardownCalls() != 0 {
		t.Errorf("teardown calls = %d, want 0 (failed instance never tears down)", d.TeardownCalls())
	}
}

func TestGlobalInstance_AssertInitialized(t *testing.T) {
	resetGlobal()

	inst := NewGlobalInstance(DefaultOptions())
	inst.AssertInitialized() // must not panic

	resetGlobal()
	failed := NewGlobalInstance(DefaultOptions(), WithDriver(&countDriver{setupErr: errors.New("boom")}))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("AssertInitialized() did not panic for failed instance")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "initialization failed") {
			t.Errorf("panic value = %v", r)
		}
	}()
	failed.AssertInitialized()
}

func TestGlobalInstance_TimeoutKeepsTerminateNeeded(t *testing.T) {
	resetGlobal()
	d := &countDriver{teardownDelay: 200 * time.Millisecond}
	logger := &captureLogger{}

	opts := DefaultOptions()
	opts.ShutdownGracePeriod = 0

	inst := NewGlobalInstance(opts, WithDriver(d), WithLogger(logger))
	if !inst.Initialized() {
		t.Fatalf("Initialized() = false, status %v", inst.Status())
	}

	st := inst.Shutdown()
	if st.Kind() != KindExceededTimeLimit {
		t.Fatalf("Shutdown() kind = %v, want KindExceededTimeLimit", st.Kind())
	}
	if !inst.terminateNeeded {
		t.Fatal("terminateNeeded = false after timeout, want true (retry still owed)")
	}

	// Scope exit retries the teardown and can only log the failure.
	inst.Close()
	if d.TeardownCalls() != 2 {
		t.Errorf("teardown calls = %d, want 2 (Close attempts shutdown again)", d.TeardownCalls())
	}
	if len(logger.Errors()) == 0 {
		t.Error("Close() discarded the failure without logging it")
	}
}
