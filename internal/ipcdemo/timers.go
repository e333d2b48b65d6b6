package ipcdemo

import "sync"

// Timers tracks a countdown, in ticks, per task id. original_source/src/
// timers.c held these in a fixed `int timers[MAX_TASKS]` array with a
// standing "TODO: Define MAX_TASKS ... for global consistency" — a map
// keyed by task id removes the fixed bound entirely.
type Timers struct {
	mu     sync.Mutex
	remain map[int]int
}

// NewTimers builds an empty timer set.
func NewTimers() *Timers {
	return &Timers{remain: make(map[int]int)}
}

// Set arms task id's countdown at the given number of ticks.
func (t *Timers) Set(taskID, ticks int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.remain[taskID] = ticks
}

// Expired reports whether task id's timer has counted down to zero or
// below, or was never set — mirroring the original check_timer's inability
// to distinguish the two, which original_source flagged as a known TODO.
func (t *Timers) Expired(taskID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remain[taskID] <= 0
}

// Tick decrements every armed, still-positive timer by one.
func (t *Timers) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, v := range t.remain {
		if v > 0 {
			t.remain[id] = v - 1
		}
	}
}
