package session

import (
	"maps"
	"slices"
	"strings"

	"github.com/zhubert/studdy/internal/calendar"
)

// ToggleHabitDay flips day's membership in the habit's completed set and
// returns whether the day is now marked. An empty habit name means no
// habit is selected: nothing is stored and the result is false.
func (s *Store) ToggleHabitDay(habit string, day calendar.Date) bool {
	if habit == "" {
		return false
	}
	set, ok := s.habits[habit]
	if !ok {
		set = make(map[calendar.Date]struct{})
		s.habits[habit] = set
	}

	_, marked := set[day]
	if marked {
		delete(set, day)
	} else {
		set[day] = struct{}{}
	}
	s.log.Debug("habit toggled", "habit", habit, "day", day.String(), "marked", !marked)
	return !marked
}

// HabitDone reports whether day is marked for habit.
func (s *Store) HabitDone(habit string, day calendar.Date) bool {
	_, ok := s.habits[habit][day]
	return ok
}

// HabitDays returns the marked days of habit in ascending order.
func (s *Store) HabitDays(habit string) []calendar.Date {
	days := slices.Collect(maps.Keys(s.habits[habit]))
	slices.SortFunc(days, func(a, b calendar.Date) int {
		return strings.Compare(a.String(), b.String())
	})
	return days
}

// Habits returns the names of habits that have been toggled at least once,
// sorted.
func (s *Store) Habits() []string {
	names := slices.Collect(maps.Keys(s.habits))
	slices.Sort(names)
	return names
}
