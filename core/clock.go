// PWM time base configuration.
//
// Both PWM generators count at the divided system clock. With the 50 MHz
// reference clock and a divide-by-16, one PWM tick is 320 ns and a 50 Hz
// carrier spans 62500 ticks.
package core

const (
	// SystemClockHz is the reference system clock.
	SystemClockHz = 50_000_000

	// PWMClockDiv divides the system clock down to the PWM time base.
	PWMClockDiv = 16

	// PWMClockHz is the PWM counter rate: 3.125 MHz.
	PWMClockHz = SystemClockHz / PWMClockDiv

	// PWMTickNanos is the duration of one PWM tick: 320 ns.
	PWMTickNanos = 1_000_000_000 / PWMClockHz

	// CarrierHz is the PWM repetition frequency on both outputs.
	CarrierHz = 50

	// CarrierPeriodTicks is the counter reload value for one 20 ms cycle.
	CarrierPeriodTicks = PWMClockHz / CarrierHz
)

var pwmClockReady bool

// InitPWMClock programs the PWM clock divisor. It is idempotent and must
// complete before any generator is created.
func InitPWMClock() error {
	if pwmClockReady {
		return nil
	}
	if err := MustClock().ConfigurePWMClock(PWMClockDiv); err != nil {
		return err
	}
	pwmClockReady = true
	return nil
}

// PWMClockReady reports whether the time base has been programmed.
func PWMClockReady() bool {
	return pwmClockReady
}

// PulseWidthMicros converts a duty value to the on-time of the output pulse
// in microseconds. Servos interpret this width as an angular command.
func PulseWidthMicros(dutyTicks uint32) uint32 {
	return uint32(uint64(dutyTicks) * PWMTickNanos / 1000)
}

// DutyTicksForPercent returns the duty value for a whole-percent duty cycle
// of the 50 Hz carrier.
func DutyTicksForPercent(pct uint32) uint32 {
	return CarrierPeriodTicks / 100 * pct
}
