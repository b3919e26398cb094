package core

import "testing"

func TestTimerDispatchOrder(t *testing.T) {
	resetCore()

	var fired []int
	mk := func(id int, wake uint32) *Timer {
		tm := &Timer{WakeTime: wake}
		tm.Handler = func(*Timer) uint8 {
			fired = append(fired, id)
			return SF_DONE
		}
		return tm
	}

	// Schedule out of order.
	ScheduleTimer(mk(2, 200))
	ScheduleTimer(mk(1, 100))
	ScheduleTimer(mk(3, 300))

	SetTime(250)
	ProcessTimers()

	if len(fired) != 2 || fired[0] != 1 || fired[1] != 2 {
		t.Errorf("fired = %v, want [1 2]", fired)
	}

	SetTime(300)
	ProcessTimers()
	if len(fired) != 3 || fired[2] != 3 {
		t.Errorf("fired = %v, want [1 2 3]", fired)
	}
}

func TestTimerNotDueNotFired(t *testing.T) {
	resetCore()

	called := false
	tm := &Timer{WakeTime: 1000, Handler: func(*Timer) uint8 {
		called = true
		return SF_DONE
	}}
	ScheduleTimer(tm)

	SetTime(999)
	ProcessTimers()
	if called {
		t.Error("timer fired before its wake time")
	}

	SetTime(1000)
	ProcessTimers()
	if !called {
		t.Error("timer did not fire at its wake time")
	}
}

func TestTimerOrderAcrossTickWrap(t *testing.T) {
	resetCore()

	var fired []int
	mk := func(id int, wake uint32) *Timer {
		tm := &Timer{WakeTime: wake}
		tm.Handler = func(*Timer) uint8 {
			fired = append(fired, id)
			return SF_DONE
		}
		return tm
	}

	// One timer just below the counter wrap, one just past it. The
	// wrapped wake time is numerically smaller but sorts later.
	preWrap := ^uint32(0) - 100
	postWrap := uint32(50)
	SetTime(preWrap - 100)
	ScheduleTimer(mk(2, postWrap))
	ScheduleTimer(mk(1, preWrap))

	SetTime(preWrap)
	ProcessTimers()
	if len(fired) != 1 || fired[0] != 1 {
		t.Fatalf("fired = %v, want [1] before the wrap", fired)
	}

	SetTime(postWrap)
	ProcessTimers()
	if len(fired) != 2 || fired[1] != 2 {
		t.Errorf("fired = %v, want [1 2] after the wrap", fired)
	}
}

func TestTimerRescheduleAcrossTickWrap(t *testing.T) {
	resetCore()

	// A 1 ms periodic timer crossing the counter wrap must fire once per
	// millisecond, not run away because its wake time wrapped below the
	// current time.
	start := ^uint32(0) - 2*TicksPerMS
	SetTime(start)

	runs := 0
	tm := &Timer{WakeTime: start + TicksPerMS}
	tm.Handler = func(tt *Timer) uint8 {
		runs++
		tt.WakeTime += TicksPerMS
		return SF_RESCHEDULE
	}
	ScheduleTimer(tm)

	for i := uint32(1); i <= 6; i++ {
		SetTime(start + i*TicksPerMS)
		ProcessTimers()
	}

	if runs != 6 {
		t.Errorf("handler ran %d times across the wrap, want 6", runs)
	}
}

func TestTimerReschedule(t *testing.T) {
	resetCore()

	count := 0
	tm := &Timer{WakeTime: 10}
	tm.Handler = func(tt *Timer) uint8 {
		count++
		if count == 3 {
			return SF_DONE
		}
		tt.WakeTime += 10
		return SF_RESCHEDULE
	}
	ScheduleTimer(tm)

	for tick := uint32(0); tick <= 100; tick += 10 {
		SetTime(tick)
		ProcessTimers()
	}

	if count != 3 {
		t.Errorf("handler ran %d times, want 3", count)
	}
}
