// Package pomodoro implements the work-session countdown. The timer does not
// run on its own: the caller polls Tick with the current time (the TUI does
// so about once a second) and the timer reports what to display.
package pomodoro

import (
	"fmt"
	"time"
)

// Duration limits for the work and break sliders, in minutes.
const (
	MinWorkMinutes  = 1
	MaxWorkMinutes  = 60
	MinBreakMinutes = 1
	MaxBreakMinutes = 30

	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5
)

// State is the timer's state.
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// Timer is a two-state countdown. The zero value is an idle timer.
type Timer struct {
	Active bool
	End    time.Time
}

// Status is the result of a Tick.
type Status struct {
	State     State
	Remaining time.Duration
	// Finished is true only on the tick that moved the timer from
	// running to idle.
	Finished bool
}

// State returns the current state.
func (t *Timer) State() State {
	if t.Active {
		return StateRunning
	}
	return StateIdle
}

// Start begins a countdown of workMinutes (clamped to 1..60) from now.
// Starting while running replaces the previous end time.
func (t *Timer) Start(now time.Time, workMinutes int) time.Time {
	workMinutes = ClampWork(workMinutes)
	t.End = now.Add(time.Duration(workMinutes) * time.Minute)
	t.Active = true
	return t.End
}

// Tick evaluates the timer at now. A running timer whose end has passed
// goes idle and reports Finished once; later ticks report a plain idle
// status.
func (t *Timer) Tick(now time.Time) Status {
	if !t.Active {
		return Status{State: StateIdle}
	}
	remaining := t.End.Sub(now)
	if remaining > 0 {
		return Status{State: StateRunning, Remaining: remaining}
	}
	t.Active = false
	t.End = time.Time{}
	return Status{State: StateIdle, Finished: true}
}

// ClampWork limits a work duration to the slider range.
func ClampWork(minutes int) int {
	return clamp(minutes, MinWorkMinutes, MaxWorkMinutes)
}

// ClampBreak limits a break duration to the slider range.
func ClampBreak(minutes int) int {
	return clamp(minutes, MinBreakMinutes, MaxBreakMinutes)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FormatRemaining renders d as MM:SS, truncating partial seconds.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
