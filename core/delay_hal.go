package core

// DelayDriver provides the blocking millisecond delay used by the
// foreground. Only the foreground may block; timer and button handlers
// never call this.
type DelayDriver interface {
	SleepMS(ms uint32)
}

// Global singleton used by core code.
var delayDriver DelayDriver

// SetDelayDriver is called by target-specific code to register its driver.
func SetDelayDriver(d DelayDriver) {
	delayDriver = d
}

// MustDelay returns the configured driver or panics if missing.
func MustDelay() DelayDriver {
	if delayDriver == nil {
		panic("delay driver not configured")
	}
	return delayDriver
}
