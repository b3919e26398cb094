package core

// ClockDriver is the abstract interface for the PWM time base.
// Platform-specific implementations program the actual divisor hardware.
type ClockDriver interface {
	// ConfigurePWMClock selects the divided system clock as the PWM time
	// base. div is the divisor applied to the system clock and must be a
	// power of two supported by the hardware.
	ConfigurePWMClock(div uint32) error
}

// Global singleton used by core code.
var clockDriver ClockDriver

// SetClockDriver is called by target-specific code to register its driver.
func SetClockDriver(d ClockDriver) {
	clockDriver = d
}

// MustClock returns the configured driver or panics if missing.
func MustClock() ClockDriver {
	if clockDriver == nil {
		panic("clock driver not configured")
	}
	return clockDriver
}
