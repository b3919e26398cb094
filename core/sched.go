// Timer scheduler.
//
// Timers live on a singly linked list sorted by wake time. The list is
// mutated with interrupts masked so ISR-context scheduling cannot corrupt
// it. Handlers run to completion and must not block; a handler that wants
// to fire again updates its WakeTime and returns SF_RESCHEDULE.
package core

// Timer represents a scheduled event.
type Timer struct {
	WakeTime uint32
	Handler  func(*Timer) uint8
	Next     *Timer
}

// Handler results.
const (
	SF_DONE       = 0
	SF_RESCHEDULE = 1
)

var (
	timerList   *Timer
	currentTime uint32
)

// timerIsBefore reports whether tick time a sorts before tick time b. The
// tick counter wraps (about every 71.6 minutes at 1 MHz), so the comparison
// is a signed difference. Valid while no timer is scheduled more than half
// the counter range ahead.
func timerIsBefore(a, b uint32) bool {
	return int32(a-b) < 0
}

// ScheduleTimer adds a timer to the schedule, keeping the list sorted by
// WakeTime.
func ScheduleTimer(t *Timer) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	insertTimer(t)
}

func insertTimer(t *Timer) {
	if timerList == nil || timerIsBefore(t.WakeTime, timerList.WakeTime) {
		t.Next = timerList
		timerList = t
		return
	}

	cur := timerList
	for cur.Next != nil && timerIsBefore(cur.Next.WakeTime, t.WakeTime) {
		cur = cur.Next
	}
	t.Next = cur.Next
	cur.Next = t
}

// TimerDispatch pops and runs every timer whose wake time has passed.
func TimerDispatch() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for timerList != nil && !timerIsBefore(currentTime, timerList.WakeTime) {
		t := timerList
		timerList = t.Next
		t.Next = nil

		if t.Handler(t) == SF_RESCHEDULE {
			insertTimer(t)
		}
	}
}
