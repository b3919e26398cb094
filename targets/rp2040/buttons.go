//go:build rp2040 || rp2350

package main

import (
	"machine"

	"fadeservo/core"
)

// rpButtonDriver implements core.ButtonDriver on the RP2 GPIO interrupt
// unit. Each line is an input with pull-down, so the resting level is low
// and a press is a rising edge.
type rpButtonDriver struct {
	pins [4]machine.Pin
}

func (d *rpButtonDriver) ConfigureButtons(isr func(core.ButtonCode)) error {
	for _, pin := range d.pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	}

	// The runtime acknowledges the latched INTR bit before invoking the
	// callback, so a held button produces exactly one interrupt per
	// press. The status mask is rebuilt from the pin number: the button
	// lines sit on GP2..GP5, so 1<<pin yields the 0x04..0x20 codes.
	handler := func(p machine.Pin) {
		isr(core.ButtonCode(1) << uint(p))
	}

	for _, pin := range d.pins {
		if err := pin.SetInterrupt(machine.PinRising, handler); err != nil {
			return err
		}
	}
	return nil
}
