package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/zhubert/studdy/internal/pomodoro"
)

// ValidationError describes a single validation problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a Config and returns all problems found.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if w := cfg.Timer.WorkMinutes; w != nil && (*w < pomodoro.MinWorkMinutes || *w > pomodoro.MaxWorkMinutes) {
		errs = append(errs, ValidationError{
			Field:   "timer.work_minutes",
			Message: fmt.Sprintf("must be between %d and %d, got %d", pomodoro.MinWorkMinutes, pomodoro.MaxWorkMinutes, *w),
		})
	}

	if b := cfg.Timer.BreakMinutes; b != nil && (*b < pomodoro.MinBreakMinutes || *b > pomodoro.MaxBreakMinutes) {
		errs = append(errs, ValidationError{
			Field:   "timer.break_minutes",
			Message: fmt.Sprintf("must be between %d and %d, got %d", pomodoro.MinBreakMinutes, pomodoro.MaxBreakMinutes, *b),
		})
	}

	if ti := cfg.Timer.TickInterval; ti != nil && (ti.Duration < 100*time.Millisecond || ti.Duration > 10*time.Second) {
		errs = append(errs, ValidationError{
			Field:   "timer.tick_interval",
			Message: fmt.Sprintf("must be between 100ms and 10s, got %s", ti.Duration),
		})
	}

	return errs
}

// JoinErrors formats validation errors as a single "; "-separated string.
func JoinErrors(errs []ValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}
