package anim

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDuration is returned when an animation is started with a
// duration <= 0. The state is left unchanged.
var ErrInvalidDuration = errors.New("anim: duration must be positive")

// Phase is the lifecycle stage of a State.
type Phase uint8

const (
	// Inactive is the initial phase: not running, no progress.
	Inactive Phase = iota
	// Running advances with every Advance call.
	Running
	// Completed behaves like Inactive but keeps progress at the duration.
	Completed
)

var phaseNames = [...]string{
	Inactive:  "inactive",
	Running:   "running",
	Completed: "completed",
}

// String returns the phase name.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", p)
}

// State tracks the progress of one animation instance.
// The zero value is Inactive.
type State struct {
	duration time.Duration
	progress time.Duration
	phase    Phase
}

// Start begins a run of length d from progress 0, restarting the state if
// it is already running. A non-positive d returns ErrInvalidDuration and
// leaves the state unchanged.
func (s *State) Start(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, d)
	}
	s.duration = d
	s.progress = 0
	s.phase = Running
	return nil
}

// Advance adds dt to the progress of a running state. Once progress
// reaches the duration it is clamped there and the state completes.
// Advance is a no-op when the state is not running or dt <= 0.
// It reports whether this call completed the state.
func (s *State) Advance(dt time.Duration) bool {
	if s.phase != Running || dt <= 0 {
		return false
	}
	s.progress += dt
	if s.progress >= s.duration || s.progress < 0 { // < 0 guards overflow
		s.progress = s.duration
		s.phase = Completed
		return true
	}
	return false
}

// Stop cancels a run and returns the state to Inactive.
func (s *State) Stop() {
	*s = State{}
}

// Phase returns the current phase.
func (s State) Phase() Phase { return s.phase }

// Active reports whether the state is running.
func (s State) Active() bool { return s.phase == Running }

// Progress returns the elapsed time of the current or last run.
func (s State) Progress() time.Duration { return s.progress }

// Duration returns the length of the current or last run.
func (s State) Duration() time.Duration { return s.duration }

// T returns progress/duration in [0, 1], or 0 for a state that was never
// started.
func (s State) T() float64 {
	if s.duration <= 0 {
		return 0
	}
	return min(max(float64(s.progress)/float64(s.duration), 0), 1)
}
