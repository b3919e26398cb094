package core

// Scheduler time base. The hardware target feeds its free-running counter
// into SetTime from the main loop; the host simulator and the tests drive
// it directly.
const (
	// TimerFreq is the scheduler tick rate in Hz.
	TimerFreq = 1_000_000

	// TicksPerMS is the number of scheduler ticks in one millisecond.
	TicksPerMS = TimerFreq / 1000
)

// GetTime returns the current system time in scheduler ticks.
func GetTime() uint32 {
	return getSystemTicks()
}

// SetTime sets the current system time from the hardware counter.
func SetTime(ticks uint32) {
	setSystemTicks(ticks)
}

// TimerFromMS converts milliseconds to scheduler ticks.
func TimerFromMS(ms uint32) uint32 {
	return ms * TicksPerMS
}

// TimerFromUS converts microseconds to scheduler ticks.
func TimerFromUS(us uint32) uint32 {
	return uint32(uint64(us) * TimerFreq / 1_000_000)
}

// ProcessTimers runs every due timer. Called from the foreground loop after
// the time source has been updated.
func ProcessTimers() {
	currentTime = GetTime()
	TimerDispatch()
}
