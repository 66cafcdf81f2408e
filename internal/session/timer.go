package session

import (
	"time"

	"github.com/zhubert/studdy/internal/pomodoro"
)

// StartTimer starts (or restarts) the pomodoro countdown and returns the
// end time.
func (s *Store) StartTimer(workMinutes int) time.Time {
	end := s.timer.Start(s.clock.Now(), workMinutes)
	s.log.Debug("timer started", "minutes", pomodoro.ClampWork(workMinutes), "end", end)
	return end
}

// TickTimer evaluates the countdown at the current time. When the countdown
// runs out the timer goes idle and EffectTimesUp is queued once.
func (s *Store) TickTimer() pomodoro.Status {
	st := s.timer.Tick(s.clock.Now())
	if st.Finished {
		s.log.Debug("timer finished")
		s.emit(EffectTimesUp)
	}
	return st
}

// Timer returns a copy of the timer state.
func (s *Store) Timer() pomodoro.Timer {
	return s.timer
}
