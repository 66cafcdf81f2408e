package session

import (
	"slices"
	"strings"

	"github.com/zhubert/studdy/internal/calendar"
	"github.com/zhubert/studdy/internal/errors"
)

// AddEvent appends an event to day's schedule. An empty label is ignored
// and reports false. Duplicate and overlapping events are allowed.
func (s *Store) AddEvent(day calendar.Date, slot, label string) (bool, error) {
	if !calendar.IsSlot(slot) {
		return false, errors.E(errors.Op("session.AddEvent"), errors.KindInvalid, "invalid time slot "+slot)
	}
	if label == "" {
		return false, nil
	}
	key := day.String()
	s.events[key] = append(s.events[key], Event{ID: s.newID(), Time: slot, Label: label})
	s.log.Debug("event added", "day", key, "time", slot, "count", len(s.events[key]))
	return true, nil
}

// Events returns day's events ordered by time slot. Events sharing a slot
// keep their insertion order. The stored list is not reordered.
func (s *Store) Events(day calendar.Date) []Event {
	events := slices.Clone(s.events[day.String()])
	slices.SortStableFunc(events, func(a, b Event) int {
		return strings.Compare(a.Time, b.Time)
	})
	return events
}

// EventCount returns the number of events stored for day.
func (s *Store) EventCount(day calendar.Date) int {
	return len(s.events[day.String()])
}
