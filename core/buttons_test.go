package core

import "testing"

// mockButtonDriver is a test implementation of ButtonDriver that lets the
// test inject interrupts.
type mockButtonDriver struct {
	isr func(ButtonCode)
}

func (m *mockButtonDriver) ConfigureButtons(isr func(ButtonCode)) error {
	m.isr = isr
	return nil
}

func (m *mockButtonDriver) Press(code ButtonCode) {
	if m.isr != nil {
		m.isr(code)
	}
}

// startButtons brings up a servo generator and a button bank on mocks.
func startButtons(t *testing.T) (*Bank, *Generator, *mockButtonDriver, *mockPWMDriver) {
	t.Helper()
	pwm, _ := resetCore()
	if err := InitPWMClock(); err != nil {
		t.Fatalf("InitPWMClock failed: %v", err)
	}
	servo, err := NewGenerator(16, CarrierPeriodTicks, 1875)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	drv := &mockButtonDriver{}
	SetButtonDriver(drv)
	bank, err := InitButtons(ServoDispatcher(servo))
	if err != nil {
		t.Fatalf("InitButtons failed: %v", err)
	}
	return bank, servo, drv, pwm
}

func TestPresetFor(t *testing.T) {
	tests := []struct {
		code ButtonCode
		duty uint32
		ok   bool
	}{
		{Btn0, 1875, true},
		{Btn1, 3125, true},
		{Btn2, 5000, true},
		{Btn3, 7187, true},
		{Btn1 | Btn2, 3125, true}, // lowest-numbered button wins
		{Btn0 | Btn3, 1875, true},
		{ButtonMask, 1875, true},
		{0, 0, false},
		{0x01, 0, false},
		{0x40, 0, false},
	}
	for _, tt := range tests {
		duty, ok := PresetFor(tt.code)
		if ok != tt.ok || duty != tt.duty {
			t.Errorf("PresetFor(%#02x) = (%d, %v), want (%d, %v)", tt.code, duty, ok, tt.duty, tt.ok)
		}
	}
}

func TestButtonPressMovesServo(t *testing.T) {
	_, servo, drv, _ := startButtons(t)

	drv.Press(Btn3)
	if servo.Duty() != 7187 {
		t.Errorf("servo duty = %d, want 7187", servo.Duty())
	}

	// Same-as-initial press is observably unchanged.
	drv.Press(Btn0)
	if servo.Duty() != 1875 {
		t.Errorf("servo duty = %d, want 1875", servo.Duty())
	}
}

func TestSimultaneousPressLowestWins(t *testing.T) {
	_, servo, drv, _ := startButtons(t)

	drv.Press(Btn1 | Btn2)
	if servo.Duty() != 3125 {
		t.Errorf("servo duty = %d, want 3125", servo.Duty())
	}
}

func TestUnmappedMaskIgnored(t *testing.T) {
	_, servo, drv, pwm := startButtons(t)

	writes := len(pwm.history[16])
	for _, code := range []ButtonCode{0, 0x01, 0x02, 0x40, 0x80} {
		drv.Press(code)
	}

	if len(pwm.history[16]) != writes {
		t.Errorf("unmapped masks caused %d servo writes", len(pwm.history[16])-writes)
	}
	if servo.Duty() != 1875 {
		t.Errorf("servo duty = %d, want unchanged 1875", servo.Duty())
	}
}

func TestAtMostOneWritePerInterrupt(t *testing.T) {
	_, _, drv, pwm := startButtons(t)

	writes := len(pwm.history[16])
	drv.Press(ButtonMask)
	if got := len(pwm.history[16]) - writes; got != 1 {
		t.Errorf("one interrupt caused %d servo writes, want 1", got)
	}
}

func TestServoDutyAlwaysPreset(t *testing.T) {
	_, servo, drv, _ := startButtons(t)

	valid := map[uint32]bool{1875: true, 3125: true, 5000: true, 7187: true}
	for code := ButtonCode(0); code < 0x40; code++ {
		drv.Press(code)
		if !valid[servo.Duty()] {
			t.Fatalf("after mask %#02x servo duty = %d, not a preset", code, servo.Duty())
		}
	}
}

func TestDispatchGuard(t *testing.T) {
	// An interrupt arriving before init has installed a dispatcher must
	// be dropped, not crash.
	var nilBank *Bank
	nilBank.HandleIRQ(Btn0)

	empty := &Bank{}
	empty.HandleIRQ(Btn0)
}

func TestLockoutDropsRepeats(t *testing.T) {
	bank, servo, drv, _ := startButtons(t)

	var nowMS uint32
	bank.SetLockout(20, func() uint32 { return nowMS })

	nowMS = 100
	drv.Press(Btn1)
	if servo.Duty() != 3125 {
		t.Fatalf("first press dropped")
	}

	// Bounce inside the window.
	servo.SetDuty(1875)
	nowMS = 110
	drv.Press(Btn1)
	if servo.Duty() != 1875 {
		t.Errorf("bounce inside lockout window was dispatched")
	}

	// Past the window the press goes through again.
	nowMS = 125
	drv.Press(Btn1)
	if servo.Duty() != 3125 {
		t.Errorf("press after lockout window was dropped")
	}

	// The lockout is per button: another line is not gated.
	servo.SetDuty(1875)
	nowMS = 126
	drv.Press(Btn2)
	if servo.Duty() != 5000 {
		t.Errorf("other button was gated by lockout")
	}
}
