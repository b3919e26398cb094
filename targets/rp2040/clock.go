//go:build rp2040 || rp2350

package main

import (
	"errors"
	"runtime/volatile"
	"unsafe"

	"fadeservo/core"
)

// RP2 timer peripheral: free-running 64-bit microsecond counter.
const (
	timerBase     = 0x40054000
	timerTIMERAWL = timerBase + 0x0C // raw counter low word
)

var timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))

var errBadDivisor = errors.New("clock: divisor must be a power of two")

// rpClockDriver implements core.ClockDriver. The RP2 PWM slices carry
// per-slice fractional dividers programmed in ConfigurePWM, so the shared
// divisor only fixes the 320 ns tick scale used for period math; this
// driver just rejects divisors the hardware could not realize.
type rpClockDriver struct{}

func (rpClockDriver) ConfigurePWMClock(div uint32) error {
	if div == 0 || div&(div-1) != 0 {
		return errBadDivisor
	}
	return nil
}

// updateSystemTime feeds the hardware microsecond counter into the
// scheduler time base. Called from the main loop.
func updateSystemTime() {
	core.SetTime(timerRAWL.Get())
}
