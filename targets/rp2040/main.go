//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"fadeservo/core"
)

// Pin assignment. The button lines sit on GP2..GP5 so the status bitmask
// (1 << pin) matches the 0x04..0x20 button codes directly.
const (
	ledPin   = core.PWMPin(15) // GP15, PWM slice 7 channel B
	servoPin = core.PWMPin(16) // GP16, PWM slice 0 channel A
)

var buttonPins = [4]machine.Pin{machine.GP2, machine.GP3, machine.GP4, machine.GP5}

// Initial operating points: LED at 5% duty, servo at 3% (600 us pulse).
const (
	ledInitialDuty   = 3125
	servoInitialDuty = 1875
)

func main() {
	// Register hardware drivers before any core bring-up.
	core.SetDelayDriver(sleepDelay{})
	core.SetClockDriver(rpClockDriver{})
	core.SetPWMDriver(newRPPWMDriver())
	core.SetButtonDriver(&rpButtonDriver{pins: buttonPins})

	// Bring-up order is strict: delay first (done above), then the PWM
	// time base, both generators, buttons, and last the fade timer.
	if err := core.InitPWMClock(); err != nil {
		failLoop()
	}

	led, err := core.NewGenerator(ledPin, core.CarrierPeriodTicks, ledInitialDuty)
	if err != nil {
		failLoop()
	}

	servo, err := core.NewGenerator(servoPin, core.CarrierPeriodTicks, servoInitialDuty)
	if err != nil {
		failLoop()
	}

	if _, err := core.InitButtons(core.ServoDispatcher(servo)); err != nil {
		failLoop()
	}

	fader := core.NewFader(led)
	fader.Start()

	// Foreground demonstration loop. It shares the LED generator with the
	// fade timer; last writer wins and the fade dominates.
	go core.RunDemo(led)

	for {
		updateSystemTime()
		core.ProcessTimers()

		// Yield so the demo goroutine and the timekeeping interrupts
		// get scheduled. Well under the 1 ms timer resolution.
		time.Sleep(200 * time.Microsecond)
	}
}

// failLoop flashes the onboard LED rapidly to signal a bring-up error.
// There is no operator channel to report to, so this never returns.
func failLoop() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(100 * time.Millisecond)
	}
}

// sleepDelay implements core.DelayDriver on the runtime timer.
type sleepDelay struct{}

func (sleepDelay) SleepMS(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
