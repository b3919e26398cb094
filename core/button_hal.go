package core

// ButtonCode is a bitmask over the four command buttons. The bit positions
// match the port status register of the original board layout.
type ButtonCode uint8

const (
	Btn0 ButtonCode = 0x04
	Btn1 ButtonCode = 0x08
	Btn2 ButtonCode = 0x10
	Btn3 ButtonCode = 0x20
)

// ButtonMask covers every recognized button bit.
const ButtonMask = Btn0 | Btn1 | Btn2 | Btn3

// ButtonDriver is the abstract interface for the four command buttons.
// Platform-specific implementations configure the lines as inputs with
// pull-downs and rising-edge interrupts, acknowledge the latched status
// before returning from the ISR, and report the status bitmask to isr.
type ButtonDriver interface {
	ConfigureButtons(isr func(ButtonCode)) error
}

// Global singleton used by core code.
var buttonDriver ButtonDriver

// SetButtonDriver is called by target-specific code to register its driver.
func SetButtonDriver(d ButtonDriver) {
	buttonDriver = d
}

// MustButtons returns the configured driver or panics if missing.
func MustButtons() ButtonDriver {
	if buttonDriver == nil {
		panic("button driver not configured")
	}
	return buttonDriver
}
