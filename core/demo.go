package core

// demoSequence is the foreground demonstration schedule for the LED
// channel: 5%, 30% and 95% duty, two seconds each.
var demoSequence = [...]uint32{3125, 18750, 59375}

// demoDwellMS is how long each demonstration duty is held.
const demoDwellMS = 2000

// DemoPass runs one pass of the demonstration sequence on the LED
// generator, blocking between steps.
//
// The fade timer also writes this generator. The race is accepted: the
// timer writes every 5 ms while the demo writes every 2 s, so the fade
// dominates and at most one carrier period carries the demo value.
func DemoPass(led *Generator) {
	for _, duty := range demoSequence {
		led.SetDuty(duty)
		MustDelay().SleepMS(demoDwellMS)
	}
}

// RunDemo loops the demonstration sequence forever. Foreground only.
func RunDemo(led *Generator) {
	for {
		DemoPass(led)
	}
}
