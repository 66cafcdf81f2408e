// Package session holds the dashboard's in-memory state for one interactive
// session: tasks, notes, habits, scheduled events, goals, the study metric
// log and the pomodoro timer.
//
// # Overview
//
// Nothing here is persisted; the Store lives as long as the process. It is
// owned by the app model and mutated only from its Update loop, so it does
// no locking of its own.
//
// # Initialization
//
// New returns a ready Store. Init fills in any missing collection with its
// empty default and is safe to call again: keys that already hold data are
// left alone.
//
// # Effects
//
// Some transitions raise one-shot celebrations:
//   - EffectConfetti: a task goes from open to done
//   - EffectBalloons: a goal becomes achieved
//   - EffectTimesUp: the pomodoro countdown reaches zero
//
// Effects queue up until DrainEffects hands them to the UI, which shows
// each one exactly once. Reverse transitions (done back to open) raise
// nothing.
//
// # Validation
//
// Empty or blank input is a silent no-op and reports false. Programmer
// errors, such as an unknown task category, a bad index or an unknown time
// slot, return an *errors.Error with KindInvalid or KindNotFound.
//
// # Time
//
// All dates come from the Clock passed to New so tests can drive the
// calendar and the timer with a fake.
package session
