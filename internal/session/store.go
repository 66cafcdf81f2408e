package session

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/zhubert/studdy/internal/calendar"
	"github.com/zhubert/studdy/internal/logger"
	"github.com/zhubert/studdy/internal/pomodoro"
)

// Clock supplies the current time. Tests substitute a fake.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Task categories. The set is fixed.
const (
	CategoryPersonal = "personal"
	CategoryWork     = "work"
)

// Categories lists the task categories in display order.
var Categories = []string{CategoryPersonal, CategoryWork}

// Task is an entry in a category's task list.
type Task struct {
	ID   string
	Text string
	Done bool
}

// Event is an entry in a day's schedule.
type Event struct {
	ID    string
	Time  string // "HH:00"
	Label string
}

// Goal is a study goal.
type Goal struct {
	ID       string
	Text     string
	Achieved bool
}

// StudyDataPoint is a snapshot taken when a goal is added: the date and the
// number of goals already achieved at that moment.
type StudyDataPoint struct {
	Date  calendar.Date
	Count int
}

// Effect is a one-shot celebration raised by a state transition.
type Effect int

const (
	// EffectConfetti follows a task going from open to done.
	EffectConfetti Effect = iota + 1
	// EffectBalloons follows a goal becoming achieved.
	EffectBalloons
	// EffectTimesUp follows the pomodoro countdown reaching zero.
	EffectTimesUp
)

func (e Effect) String() string {
	switch e {
	case EffectConfetti:
		return "confetti"
	case EffectBalloons:
		return "balloons"
	case EffectTimesUp:
		return "times-up"
	default:
		return "none"
	}
}

// Store is the session state store.
type Store struct {
	clock Clock
	newID func() string
	log   *slog.Logger

	tasks     map[string][]Task
	notes     string
	habits    map[string]map[calendar.Date]struct{}
	events    map[string][]Event
	goals     []Goal
	studyData []StudyDataPoint
	timer     pomodoro.Timer
	effects   []Effect
}

// New returns an initialized store reading time from clock. A nil clock
// means SystemClock.
func New(clock Clock) *Store {
	s := &Store{clock: clock}
	s.Init()
	return s
}

// Init fills every missing key with its empty default, including the clock,
// ID source and logger, so a zero Store is usable after Init. Keys that
// already hold data are left alone, so calling Init again never loses state.
func (s *Store) Init() {
	if s.clock == nil {
		s.clock = SystemClock
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.log == nil {
		s.log = logger.ComponentLogger("Store")
	}
	if s.tasks == nil {
		s.tasks = make(map[string][]Task, len(Categories))
	}
	for _, cat := range Categories {
		if _, ok := s.tasks[cat]; !ok {
			s.tasks[cat] = []Task{}
		}
	}
	if s.habits == nil {
		s.habits = make(map[string]map[calendar.Date]struct{})
	}
	if s.events == nil {
		s.events = make(map[string][]Event)
	}
	if s.goals == nil {
		s.goals = []Goal{}
	}
	if s.studyData == nil {
		s.studyData = []StudyDataPoint{}
	}
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.clock.Now()
}

// Today returns the current calendar day.
func (s *Store) Today() calendar.Date {
	return calendar.DateOf(s.clock.Now())
}

func (s *Store) emit(e Effect) {
	s.log.Debug("effect queued", "effect", e.String())
	s.effects = append(s.effects, e)
}

// DrainEffects returns the queued effects and clears the queue. Each effect
// is delivered to exactly one caller.
func (s *Store) DrainEffects() []Effect {
	if len(s.effects) == 0 {
		return nil
	}
	out := s.effects
	s.effects = nil
	return out
}

// PendingEffects reports how many effects are waiting to be drained.
func (s *Store) PendingEffects() int {
	return len(s.effects)
}

// Note returns the notes text.
func (s *Store) Note() string {
	return s.notes
}

// SetNote replaces the notes text.
func (s *Store) SetNote(text string) {
	if text == s.notes {
		return
	}
	s.notes = text
	s.log.Debug("note updated", "len", len(text))
}
