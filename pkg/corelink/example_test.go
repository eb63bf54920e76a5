package corelink_test

import (
	"context"
	"fmt"
	"time"

	"github.com/bft-labs/corelink/pkg/corelink"
)

// exampleDriver stands in for a real driver implementation.
type exampleDriver struct{}

func (exampleDriver) Setup(ctx context.Context) error    { return nil }
func (exampleDriver) Teardown(ctx context.Context) error { return nil }

// ExampleInitialize demonstrates explicit driver setup and teardown.
func ExampleInitialize() {
	opts := corelink.DefaultOptions()
	opts.ShutdownGracePeriod = 10 * time.Second

	st := corelink.Initialize(opts, corelink.WithDriver(exampleDriver{}))
	if !st.IsOK() {
		fmt.Printf("driver init: %v\n", st)
		return
	}

	// ... use the driver ...

	if st := corelink.Shutdown(); !st.IsOK() {
		fmt.Printf("driver shutdown: %v\n", st)
	}
}

// ExampleNewGlobalInstance ties driver lifetime to a lexical scope.
func ExampleNewGlobalInstance() {
	inst := corelink.NewGlobalInstance(corelink.DefaultOptions(),
		corelink.WithDriver(exampleDriver{}),
	)
	defer inst.Close()

	if !inst.Initialized() {
		fmt.Printf("driver init: %v\n", inst.Status())
		return
	}

	// ... use the driver; Close tears it down on scope exit ...
}

// Example_withEventHandler demonstrates observing lifecycle transitions.
func Example_withEventHandler() {
	handler := &stateLogger{}

	st := corelink.Initialize(corelink.DefaultOptions(),
		corelink.WithDriver(exampleDriver{}),
		corelink.WithEventHandler(handler),
	)
	_ = st
}

// stateLogger implements corelink.EventHandler.
type stateLogger struct{}

func (stateLogger) OnStateChange(e corelink.StateChangeEvent) {
	fmt.Printf("state changed: %s -> %s (reason: %s)\n", e.Previous, e.Current, e.Reason)
}
