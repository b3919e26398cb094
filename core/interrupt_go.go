//go:build !tinygo

package core

// State stands in for the interrupt mask state on the host build.
type State uintptr

// disableInterrupts is a no-op on the host (tests and simulator are
// single-threaded through the scheduler).
func disableInterrupts() State {
	return 0
}

// restoreInterrupts is a no-op on the host.
func restoreInterrupts(State) {
}
