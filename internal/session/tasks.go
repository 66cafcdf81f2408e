package session

import (
	"slices"

	"github.com/zhubert/studdy/internal/errors"
)

func validCategory(category string) bool {
	return slices.Contains(Categories, category)
}

// AddTask appends a task to category. Empty text is ignored and reports
// false.
func (s *Store) AddTask(category, text string) (bool, error) {
	const op = errors.Op("session.AddTask")
	if !validCategory(category) {
		return false, errors.UnknownCategory(op, category)
	}
	if text == "" {
		return false, nil
	}
	s.tasks[category] = append(s.tasks[category], Task{ID: s.newID(), Text: text})
	s.log.Debug("task added", "category", category, "count", len(s.tasks[category]))
	return true, nil
}

// ToggleTask flips the done flag of the task with the given id and returns
// the new value. Confetti is queued only when a task becomes done.
func (s *Store) ToggleTask(category, id string) (bool, error) {
	const op = errors.Op("session.ToggleTask")
	if !validCategory(category) {
		return false, errors.UnknownCategory(op, category)
	}
	list := s.tasks[category]
	i := slices.IndexFunc(list, func(t Task) bool { return t.ID == id })
	if i < 0 {
		return false, errors.ItemNotFound(op, "task", id)
	}

	prev := list[i].Done
	list[i].Done = !prev
	if !prev {
		s.emit(EffectConfetti)
	}
	s.log.Debug("task toggled", "category", category, "id", id, "done", list[i].Done)
	return list[i].Done, nil
}

// Tasks returns a copy of the category's tasks in insertion order.
func (s *Store) Tasks(category string) []Task {
	return slices.Clone(s.tasks[category])
}
