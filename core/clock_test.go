package core

import "testing"

func TestTimebaseConstants(t *testing.T) {
	if PWMClockHz != 3_125_000 {
		t.Errorf("PWMClockHz = %d, want 3125000", PWMClockHz)
	}
	if PWMTickNanos != 320 {
		t.Errorf("PWMTickNanos = %d, want 320", PWMTickNanos)
	}
	if CarrierPeriodTicks != 62500 {
		t.Errorf("CarrierPeriodTicks = %d, want 62500", CarrierPeriodTicks)
	}
	// One carrier period must span exactly 20 ms of PWM ticks.
	if CarrierPeriodTicks*PWMTickNanos != 20_000_000 {
		t.Errorf("carrier period = %d ns, want 20000000", CarrierPeriodTicks*PWMTickNanos)
	}
}

func TestPulseWidthMicros(t *testing.T) {
	tests := []struct {
		duty uint32
		us   uint32
	}{
		{1875, 600},
		{3125, 1000},
		{5000, 1600},
		{7187, 2299},
		{62500, 20000},
	}
	for _, tt := range tests {
		if got := PulseWidthMicros(tt.duty); got != tt.us {
			t.Errorf("PulseWidthMicros(%d) = %d, want %d", tt.duty, got, tt.us)
		}
	}
}

func TestDutyTicksForPercent(t *testing.T) {
	tests := []struct {
		pct  uint32
		want uint32
	}{
		{3, 1875},
		{5, 3125},
		{8, 5000},
		{30, 18750},
		{95, 59375},
		{100, 62500},
	}
	for _, tt := range tests {
		if got := DutyTicksForPercent(tt.pct); got != tt.want {
			t.Errorf("DutyTicksForPercent(%d) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}
