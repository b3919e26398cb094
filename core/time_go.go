//go:build !tinygo

package core

var systemTicksValue uint32

// getSystemTicks returns the current system ticks (host build).
func getSystemTicks() uint32 {
	return systemTicksValue
}

// setSystemTicks sets the system ticks (host build).
func setSystemTicks(ticks uint32) {
	systemTicksValue = ticks
}
