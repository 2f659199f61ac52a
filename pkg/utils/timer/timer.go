// Package timer tracks the total duration of a command and the duration of its current stage.
package timer

import (
	"sync"
	"time"
)

// Timer measures elapsed time across the stages of a command.
type Timer interface {
	// Start resets the timer and begins the first stage.
	Start()
	// NewStage begins a new stage without resetting the total.
	NewStage()
	// GetTiming returns the total elapsed time and the elapsed time of the current stage.
	GetTiming() (time.Duration, time.Duration)
}

// StageTimer is the wall-clock Timer implementation.
type StageTimer struct {
	mu         sync.Mutex
	now        func() time.Time
	start      time.Time
	stageStart time.Time
}

// New creates a StageTimer. Call Start before reading timings.
func New() *StageTimer {
	return &StageTimer{now: time.Now}
}

// Start implements Timer.
func (t *StageTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.start = t.now()
	t.stageStart = t.start
}

// NewStage implements Timer.
func (t *StageTimer) NewStage() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stageStart = t.now()
}

// GetTiming implements Timer. Both durations are zero before Start is called.
func (t *StageTimer) GetTiming() (time.Duration, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		return 0, 0
	}

	now := t.now()

	return now.Sub(t.start), now.Sub(t.stageStart)
}
