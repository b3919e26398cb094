package core

// PWMPin identifies a hardware pin capable of PWM output
type PWMPin uint32

// PWMDriver is the abstract PWM interface that core code uses.
// Platform-specific implementations handle actual hardware control.
// All values are in PWM clock ticks (see clock.go).
type PWMDriver interface {
	// ConfigurePWM configures a pin for PWM output with the given period
	// and initial duty, enables the pin and starts the counter.
	ConfigurePWM(pin PWMPin, periodTicks, dutyTicks uint32) error

	// SetDutyTicks reprograms the compare value for a configured pin.
	// The hardware latches the new value at the next period boundary,
	// so mid-cycle writes never glitch the output.
	SetDutyTicks(pin PWMPin, dutyTicks uint32) error

	// DisablePWM stops PWM on a pin and drives it low.
	DisablePWM(pin PWMPin) error
}

// RescaleDuty maps a duty in PWM-clock ticks onto a driver's counter range
// for hardware whose counter does not count PWM ticks directly. The counter
// is assumed to count 0..counterTop inclusive with the output high while
// the count is below the compare value, so full-scale duty returns
// counterTop+1, the always-high encoding; a compare of counterTop alone
// would leave the output low for one count per cycle.
func RescaleDuty(dutyTicks, periodTicks, counterTop uint32) uint32 {
	if dutyTicks >= periodTicks {
		return counterTop + 1
	}
	return uint32(uint64(dutyTicks) * uint64(counterTop) / uint64(periodTicks))
}

// Global singleton used by core code.
var pwmDriver PWMDriver

// SetPWMDriver is called by target-specific code to register its driver.
func SetPWMDriver(d PWMDriver) {
	pwmDriver = d
}

// MustPWM returns the configured driver or panics if missing.
func MustPWM() PWMDriver {
	if pwmDriver == nil {
		panic("PWM driver not configured")
	}
	return pwmDriver
}
