//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"

	"fadeservo/core"
)

// pwmPeripheral abstracts over TinyGo's unexported *pwmGroup type so the
// driver can hold any of the eight PWM slices.
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

var errSlicePeriodConflict = errors.New("pwm: slice already runs a different period")

// rpPWMDriver implements core.PWMDriver on the RP2 PWM slices. Duty and
// period arrive in 320 ns PWM-clock ticks; the slice counts at whatever
// rate machine picked for the requested period, so compare values are
// rescaled against the slice Top.
type rpPWMDriver struct {
	peripherals map[uint8]pwmPeripheral // slice number -> peripheral
	periodNS    map[uint8]uint64        // slice number -> configured period
	channels    map[core.PWMPin]uint8   // pin -> slice channel
	periods     map[core.PWMPin]uint32  // pin -> period in PWM ticks
}

func newRPPWMDriver() *rpPWMDriver {
	return &rpPWMDriver{
		peripherals: make(map[uint8]pwmPeripheral),
		periodNS:    make(map[uint8]uint64),
		channels:    make(map[core.PWMPin]uint8),
		periods:     make(map[core.PWMPin]uint32),
	}
}

// sliceFor maps a GPIO number to its PWM slice: pin N is served by slice
// (N >> 1) & 7, channel N & 1.
func sliceFor(pin core.PWMPin) uint8 {
	return uint8((uint32(pin) >> 1) & 0x7)
}

func (d *rpPWMDriver) ConfigurePWM(pin core.PWMPin, periodTicks, dutyTicks uint32) error {
	sliceNum := sliceFor(pin)

	pwm, ok := d.peripherals[sliceNum]
	if !ok {
		pwm = slicePeripheral(sliceNum)
		d.peripherals[sliceNum] = pwm
	}

	period := uint64(periodTicks) * core.PWMTickNanos

	// The two channels of a slice share one counter. An already-running
	// slice keeps its period; asking for a different one is a wiring
	// mistake, not something to paper over at runtime.
	if existing, ok := d.periodNS[sliceNum]; ok {
		if existing != period {
			return errSlicePeriodConflict
		}
	} else {
		if err := pwm.Configure(machine.PWMConfig{Period: period}); err != nil {
			return err
		}
		d.periodNS[sliceNum] = period
	}

	channel, err := pwm.Channel(machine.Pin(pin))
	if err != nil {
		return err
	}

	d.channels[pin] = channel
	d.periods[pin] = periodTicks

	return d.SetDutyTicks(pin, dutyTicks)
}

func (d *rpPWMDriver) SetDutyTicks(pin core.PWMPin, dutyTicks uint32) error {
	channel, ok := d.channels[pin]
	if !ok {
		return nil
	}
	pwm := d.peripherals[sliceFor(pin)]
	period := d.periods[pin]

	// Scale PWM-clock ticks onto the slice counter range; full-scale duty
	// becomes Top+1, the slice's constant-high encoding. The slice
	// double-buffers the compare value, so the write lands at the next
	// counter wrap.
	pwm.Set(channel, core.RescaleDuty(dutyTicks, period, pwm.Top()))
	return nil
}

func (d *rpPWMDriver) DisablePWM(pin core.PWMPin) error {
	if channel, ok := d.channels[pin]; ok {
		d.peripherals[sliceFor(pin)].Set(channel, 0)
		delete(d.channels, pin)
		delete(d.periods, pin)
	}
	return nil
}

// slicePeripheral returns the machine PWM slice for a slice number.
func slicePeripheral(sliceNum uint8) pwmPeripheral {
	switch sliceNum {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}
