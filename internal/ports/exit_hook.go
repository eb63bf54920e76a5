package ports

// ExitHook abstracts "run a callback when the process is about to exit".
// The default adapter fires registered callbacks on SIGINT/SIGTERM or when
// the host explicitly flushes hooks on its normal-return path; tests inject
// a fake that fires on demand.
type ExitHook interface {
	// OnExit registers fn to run once at process exit. Registration
	// order is preserved.
	OnExit(fn func())
}
