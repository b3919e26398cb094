// fadesim runs the firmware core against mock drivers over simulated time
// and prints the duty trace of both PWM channels. Useful for eyeballing the
// ramp and the button-to-servo mapping without flashing hardware.
//
// Example:
//
//	fadesim -ms 8000 -press 1000:B0,2500:B3 -sample 1000
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fadeservo/core"
)

var (
	runMS     = flag.Uint("ms", 7000, "Simulated duration in milliseconds")
	pressSpec = flag.String("press", "", "Button presses as ms:name pairs, e.g. 1000:B0,2500:B3")
	sampleMS  = flag.Uint("sample", 500, "LED duty sampling interval in milliseconds")
	demo      = flag.Bool("demo", false, "Emulate the foreground demonstration writes")
	lockoutMS = flag.Uint("lockout", 0, "Software button lockout in milliseconds (0 = off)")
)

var buttonNames = map[string]core.ButtonCode{
	"B0": core.Btn0,
	"B1": core.Btn1,
	"B2": core.Btn2,
	"B3": core.Btn3,
}

// demoWrites mirrors the foreground demonstration schedule so the accepted
// demo/fade race on the LED channel shows up in the trace.
var demoWrites = [...]uint32{3125, 18750, 59375}

func main() {
	flag.Parse()

	presses, err := parsePresses(*pressSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pwm := newSimPWM()
	buttons := &simButtons{}

	core.SetClockDriver(simClock{})
	core.SetPWMDriver(pwm)
	core.SetButtonDriver(buttons)
	core.SetDelayDriver(noDelay{})

	if err := core.InitPWMClock(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	led, err := core.NewGenerator(ledPin, core.CarrierPeriodTicks, 3125)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	servo, err := core.NewGenerator(servoPin, core.CarrierPeriodTicks, 1875)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bank, err := core.InitButtons(core.ServoDispatcher(servo))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fader := core.NewFader(led)
	if *lockoutMS > 0 {
		bank.SetLockout(uint32(*lockoutMS), fader.ElapsedMS)
	}

	core.SetTime(0)
	fader.Start()

	fmt.Printf("fadesim: %d ms, carrier %d Hz, tick %d ns\n", *runMS, core.CarrierHz, core.PWMTickNanos)

	lastServo := servo.Duty()
	for ms := uint32(1); ms <= uint32(*runMS); ms++ {
		core.SetTime(core.TimerFromMS(ms))

		for _, p := range presses {
			if p.ms == ms {
				fmt.Printf("%6d ms  press %s\n", ms, p.name)
				buttons.Press(p.code)
			}
		}

		if *demo && ms%2000 == 0 {
			duty := demoWrites[(ms/2000-1)%uint32(len(demoWrites))]
			fmt.Printf("%6d ms  demo writes led duty=%d\n", ms, duty)
			led.SetDuty(duty)
		}

		core.ProcessTimers()

		if servo.Duty() != lastServo {
			lastServo = servo.Duty()
			fmt.Printf("%6d ms  servo duty=%d pulse=%d us\n", ms, lastServo, core.PulseWidthMicros(lastServo))
		}
		if *sampleMS > 0 && ms%uint32(*sampleMS) == 0 {
			fmt.Printf("%6d ms  led duty=%d (%d%%)\n", ms, led.Duty(), led.Duty()*100/led.Period())
		}
	}

	fmt.Printf("done: led writes=%d servo writes=%d\n", pwm.writes[ledPin], pwm.writes[servoPin])
}

const (
	ledPin   = core.PWMPin(15)
	servoPin = core.PWMPin(16)
)

type press struct {
	ms   uint32
	name string
	code core.ButtonCode
}

func parsePresses(spec string) ([]press, error) {
	if spec == "" {
		return nil, nil
	}
	var out []press
	for _, part := range strings.Split(spec, ",") {
		at, name, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("bad press %q, want ms:name", part)
		}
		ms, err := strconv.ParseUint(at, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad press time %q: %v", at, err)
		}
		code, ok := buttonNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown button %q", name)
		}
		out = append(out, press{ms: uint32(ms), name: name, code: code})
	}
	return out, nil
}

// --- mock drivers ---

type simClock struct{}

func (simClock) ConfigurePWMClock(div uint32) error { return nil }

type simPWM struct {
	duty   map[core.PWMPin]uint32
	writes map[core.PWMPin]int
}

func newSimPWM() *simPWM {
	return &simPWM{
		duty:   make(map[core.PWMPin]uint32),
		writes: make(map[core.PWMPin]int),
	}
}

func (s *simPWM) ConfigurePWM(pin core.PWMPin, periodTicks, dutyTicks uint32) error {
	s.duty[pin] = dutyTicks
	return nil
}

func (s *simPWM) SetDutyTicks(pin core.PWMPin, dutyTicks uint32) error {
	s.duty[pin] = dutyTicks
	s.writes[pin]++
	return nil
}

func (s *simPWM) DisablePWM(pin core.PWMPin) error {
	delete(s.duty, pin)
	return nil
}

type simButtons struct {
	isr func(core.ButtonCode)
}

func (s *simButtons) ConfigureButtons(isr func(core.ButtonCode)) error {
	s.isr = isr
	return nil
}

// Press injects one rising-edge interrupt with the given status mask.
func (s *simButtons) Press(code core.ButtonCode) {
	if s.isr != nil {
		s.isr(code)
	}
}

type noDelay struct{}

func (noDelay) SleepMS(uint32) {}
