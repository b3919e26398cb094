// LED brightness ramp.
//
// A 1 ms timer advances a millisecond counter; every fifth tick the duty
// steps by 50 and is written to the LED generator. The full sweep from 0 to
// the 90% cap takes about 6.25 s, slow enough to read as a smooth fade.
package core

const (
	// FadeStepTicks is the duty increment per ramp step.
	FadeStepTicks = 50

	// FadeStepMS is the ramp step interval in milliseconds.
	FadeStepMS = 5

	// FadeDutyMax caps the ramp just below full-on so the wrap back to
	// zero is not perceived as flicker at full brightness.
	FadeDutyMax = 56250
)

// Ramp direction.
type fadeDirection uint8

const (
	fadeUp fadeDirection = iota
	fadeDown
)

// Fader owns the ramp state and the LED generator. All mutation happens in
// the timer handler; the foreground must not touch the fields.
type Fader struct {
	out   *Generator
	timer Timer

	elapsedMS uint32
	duty      uint32
	direction fadeDirection
}

// NewFader returns a fader driving out. The ramp starts at zero duty,
// counting up. The down branch is only reachable through future external
// control and is kept for that extension.
func NewFader(out *Generator) *Fader {
	return &Fader{out: out, direction: fadeUp}
}

// Start schedules the 1 ms ramp timer. Call once, after bring-up.
func (f *Fader) Start() {
	f.timer.WakeTime = GetTime() + TicksPerMS
	f.timer.Handler = f.tick
	ScheduleTimer(&f.timer)
}

// tick runs every millisecond in timer context. No loops, no blocking.
func (f *Fader) tick(t *Timer) uint8 {
	f.elapsedMS++

	if f.elapsedMS%FadeStepMS == 0 {
		f.step()
		f.out.SetDuty(f.duty)
	}

	t.WakeTime += TicksPerMS
	return SF_RESCHEDULE
}

// step advances the duty one increment. On the way up the duty is allowed
// to touch FadeDutyMax for one step before wrapping to zero.
func (f *Fader) step() {
	switch f.direction {
	case fadeUp:
		f.duty += FadeStepTicks
		if f.duty > FadeDutyMax {
			f.duty = 0
		}
	case fadeDown:
		if f.duty > 0 {
			f.duty -= FadeStepTicks
		} else {
			f.direction = fadeUp
		}
	}
}

// ElapsedMS returns a snapshot of the millisecond counter. The read is done
// with interrupts masked so the foreground never observes a torn update.
func (f *Fader) ElapsedMS() uint32 {
	state := disableInterrupts()
	ms := f.elapsedMS
	restoreInterrupts(state)
	return ms
}
