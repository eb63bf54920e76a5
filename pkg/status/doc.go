// Package status defines the result value returned by corelink lifecycle
// operations.
//
// A [Status] is either OK or a categorized failure carrying an [ErrorKind]
// and a message. Lifecycle operations never return a null result and never
// panic across the initialize/shutdown boundary; callers inspect the Status
// instead:
//
//	st := corelink.Initialize(corelink.DefaultOptions())
//	if !st.IsOK() {
//	    log.Fatalf("driver init: %v", st)
//	}
//
// Of the failure kinds, only [KindExceededTimeLimit] sanctions retrying the
// same operation. [KindPermanentFailure] means the driver must be treated as
// unusable for the remainder of the process lifetime.
package status
