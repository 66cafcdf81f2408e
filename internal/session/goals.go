package session

import (
	"slices"

	"github.com/zhubert/studdy/internal/errors"
)

// AddGoal appends a goal and records a StudyDataPoint for today holding the
// number of goals achieved so far. Empty text is ignored and reports false.
//
// The data point is taken when a goal is added, not when one is achieved,
// so achieving a goal later does not show up in the study log.
func (s *Store) AddGoal(text string) bool {
	if text == "" {
		return false
	}
	s.goals = append(s.goals, Goal{ID: s.newID(), Text: text})
	point := StudyDataPoint{Date: s.Today(), Count: s.AchievedCount()}
	s.studyData = append(s.studyData, point)
	s.log.Debug("goal added", "goals", len(s.goals), "achieved", point.Count)
	return true
}

// ToggleGoal flips the achieved flag of the goal with the given id and
// returns the new value. Balloons are queued only when a goal becomes
// achieved.
func (s *Store) ToggleGoal(id string) (bool, error) {
	i := slices.IndexFunc(s.goals, func(g Goal) bool { return g.ID == id })
	if i < 0 {
		return false, errors.ItemNotFound(errors.Op("session.ToggleGoal"), "goal", id)
	}
	g := &s.goals[i]
	prev := g.Achieved
	g.Achieved = !prev
	if !prev {
		s.emit(EffectBalloons)
	}
	s.log.Debug("goal toggled", "id", id, "achieved", g.Achieved)
	return g.Achieved, nil
}

// Goals returns a copy of the goals in insertion order.
func (s *Store) Goals() []Goal {
	return slices.Clone(s.goals)
}

// AchievedCount returns the number of achieved goals.
func (s *Store) AchievedCount() int {
	n := 0
	for _, g := range s.goals {
		if g.Achieved {
			n++
		}
	}
	return n
}

// StudyData returns a copy of the study metric log.
func (s *Store) StudyData() []StudyDataPoint {
	return slices.Clone(s.studyData)
}
