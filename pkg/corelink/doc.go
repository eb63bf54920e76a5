// Package corelink manages the process-wide lifecycle of the corelink
// client driver: one-time setup before use, and clean, possibly-slow
// teardown before process exit.
//
// The hard part is not the setup or teardown work itself, which is delegated
// to a [Driver] implementation, but the coordination discipline around it:
// initialization happens exactly once per process; shutdown is idempotent
// and retryable on timeout; and the three triggers that may all attempt
// teardown (an explicit [Shutdown] call, a [GlobalInstance] going out of
// scope, and the automatic exit hook) agree on a single owner.
//
// # Basic Usage
//
// Call [Initialize] exactly once after entering main and before any other
// goroutine uses the driver. Do not call it from an init function, as it
// relies on full process startup having completed.
//
//	st := corelink.Initialize(corelink.DefaultOptions(),
//	    corelink.WithDriver(myDriver),
//	)
//	if !st.IsOK() {
//	    log.Fatalf("driver init: %v", st)
//	}
//	defer corelink.Shutdown()
//
// # Scoped Setup and Teardown
//
// [GlobalInstance] ties the driver's lifetime to a lexical scope:
//
//	inst := corelink.NewGlobalInstance(corelink.DefaultOptions(),
//	    corelink.WithDriver(myDriver),
//	)
//	defer inst.Close()
//	if !inst.Initialized() {
//	    log.Fatalf("driver init: %v", inst.Status())
//	}
//
// A failed instance never attempts shutdown, and an instance whose options
// armed an automatic shutdown at exit leaves teardown to the exit hook.
//
// # Statuses
//
// Every operation returns a [Status] rather than an error; see pkg/status
// for the failure taxonomy. Only ExceededTimeLimit sanctions retrying the
// same operation. A timed-out teardown attempt is cancelled and abandoned:
// a later successful retry cannot tell whether it re-ran teardown or found
// it already finished, and drivers must tolerate a repeated Teardown call.
//
// # Lifecycle States
//
// The process-wide state is one of [StateUninitialized],
// [StateInitializing], [StateInitialized], [StateShuttingDown],
// [StateShutDown], or [StateFailed]; use [CurrentState] to query it and
// [WithEventHandler] to observe transitions. ShutDown is terminal: the
// driver cannot be initialized again in the same process.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// Use [ModuleVersions] to get versions of all sub-modules and
// [CompatibilityMatrix] to check minimum compatible versions.
package corelink
