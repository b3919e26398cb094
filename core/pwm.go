// PWM generator handles.
//
// A Generator is a linear resource: constructing one consumes the output pin
// and its counter block, and nothing else may reprogram that hardware for the
// lifetime of the firmware. The LED fader owns one generator, the button
// dispatcher owns the other, which makes the single-writer rule structural.
package core

import "errors"

var (
	ErrClockNotReady = errors.New("pwm: clock divisor not programmed")
	ErrZeroPeriod    = errors.New("pwm: period must be positive")
	ErrPinInUse      = errors.New("pwm: pin already owned by a generator")
)

// Generator is a configured PWM output. Its only operations after creation
// are SetDuty and Shutdown.
type Generator struct {
	pin    PWMPin
	period uint32
	duty   uint32
}

// Registry of consumed pins. Written only during bring-up and shutdown,
// both of which happen in the foreground before or after interrupt use.
var ownedPins = make(map[PWMPin]*Generator)

// NewGenerator configures pin for down-count PWM with the given period and
// initial duty, starts the counter, and returns the owning handle. The PWM
// clock must already be programmed. The initial duty is clamped to
// [0, periodTicks].
func NewGenerator(pin PWMPin, periodTicks, dutyTicks uint32) (*Generator, error) {
	if !pwmClockReady {
		return nil, ErrClockNotReady
	}
	if periodTicks == 0 {
		return nil, ErrZeroPeriod
	}
	if _, taken := ownedPins[pin]; taken {
		return nil, ErrPinInUse
	}
	dutyTicks = Clamp(dutyTicks, 0, periodTicks)
	if err := MustPWM().ConfigurePWM(pin, periodTicks, dutyTicks); err != nil {
		return nil, err
	}
	g := &Generator{pin: pin, period: periodTicks, duty: dutyTicks}
	ownedPins[pin] = g
	return g, nil
}

// SetDuty reprograms the compare value. Out-of-range values are clamped
// silently; the update takes effect at the next period boundary. Safe to
// call from interrupt context: it touches only the handle's own fields and
// a single driver register write.
func (g *Generator) SetDuty(dutyTicks uint32) {
	dutyTicks = Clamp(dutyTicks, 0, g.period)
	// The pin was configured at construction, so the driver write cannot
	// fail afterwards.
	_ = MustPWM().SetDutyTicks(g.pin, dutyTicks)
	g.duty = dutyTicks
}

// Duty returns the last duty written to the hardware.
func (g *Generator) Duty() uint32 {
	return g.duty
}

// Period returns the configured period in PWM ticks.
func (g *Generator) Period() uint32 {
	return g.period
}

// Shutdown drives the output low, disables the counter and releases the
// pin. The handle must not be used afterwards.
func (g *Generator) Shutdown() {
	_ = MustPWM().SetDutyTicks(g.pin, 0)
	_ = MustPWM().DisablePWM(g.pin)
	delete(ownedPins, g.pin)
}
