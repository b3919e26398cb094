// Button input and servo dispatch.
//
// Each rising edge on a button line produces one interrupt. The bank passes
// the status bitmask to the installed dispatcher, which performs at most one
// servo update per invocation. When several bits are set at once the
// lowest-numbered button wins.
package core

// servoPresets maps each button, in priority order, to the servo compare
// value it commands. Immutable after compile.
var servoPresets = [...]struct {
	code ButtonCode
	duty uint32
}{
	{Btn0, 1875}, // 600 us pulse, one extreme
	{Btn1, 3125}, // 1.0 ms
	{Btn2, 5000}, // 1.6 ms
	{Btn3, 7187}, // 2.3 ms pulse, other extreme
}

// PresetFor returns the servo duty for the highest-priority button set in
// code. Masks with no recognized bit return ok=false.
func PresetFor(code ButtonCode) (uint32, bool) {
	for _, p := range servoPresets {
		if code&p.code != 0 {
			return p.duty, true
		}
	}
	return 0, false
}

// Bank owns the button interrupt path. The dispatcher is installed once at
// bring-up, before the driver unmasks the edge interrupts, and never
// replaced.
type Bank struct {
	dispatch func(ButtonCode)

	// Optional software lockout. Zero keeps the stock behavior of
	// relying on mechanical debounce.
	lockoutMS uint32
	millis    func() uint32
	lastMS    [4]uint32
	seen      [4]bool
}

// InitButtons configures the four button lines for rising-edge interrupts
// and installs dispatch as the consumer of the status bitmask.
func InitButtons(dispatch func(ButtonCode)) (*Bank, error) {
	b := &Bank{dispatch: dispatch}
	if err := MustButtons().ConfigureButtons(b.HandleIRQ); err != nil {
		return nil, err
	}
	return b, nil
}

// SetLockout enables a per-button minimum spacing of ms milliseconds,
// measured against the given millisecond source (normally Fader.ElapsedMS).
// Edges inside the window are dropped. Intended for mechanically noisy
// buttons; call before the first press, from the foreground.
func (b *Bank) SetLockout(ms uint32, millis func() uint32) {
	b.lockoutMS = ms
	b.millis = millis
}

// HandleIRQ consumes one interrupt's status bitmask. Runs in interrupt
// context: the latched bits were already acknowledged by the driver. A
// spurious interrupt before init has installed a dispatcher is dropped.
func (b *Bank) HandleIRQ(status ButtonCode) {
	if b == nil || b.dispatch == nil {
		return
	}
	status &= ButtonMask
	if b.lockoutMS > 0 && b.millis != nil {
		status = b.filterLocked(status)
	}
	if status == 0 {
		return
	}
	b.dispatch(status)
}

// filterLocked drops bits whose line fired within the lockout window and
// stamps the bits that pass.
func (b *Bank) filterLocked(status ButtonCode) ButtonCode {
	now := b.millis()
	var out ButtonCode
	for i, p := range servoPresets {
		bit := p.code
		if status&bit == 0 {
			continue
		}
		if b.seen[i] && now-b.lastMS[i] < b.lockoutMS {
			continue
		}
		b.lastMS[i] = now
		b.seen[i] = true
		out |= bit
	}
	return out
}

// ServoDispatcher returns the standard dispatcher: look up the preset for
// the highest-priority button in the mask and write it to the servo
// generator. Unmapped masks are ignored, no write occurs.
func ServoDispatcher(servo *Generator) func(ButtonCode) {
	return func(code ButtonCode) {
		if duty, ok := PresetFor(code); ok {
			servo.SetDuty(duty)
		}
	}
}
