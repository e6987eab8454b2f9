package program

import (
	"errors"
	"time"

	"github.com/2beens/coachboard/internal/coaching/catalog"
)

var (
	ErrProgramCompleted = errors.New("program is completed")
	ErrIndexOutOfRange  = errors.New("week, day or exercise index out of range")
	ErrSetOutOfRange    = errors.New("set index out of range")
	ErrFieldMismatch    = errors.New("field does not match exercise category")
	ErrUnknownField     = errors.New("unknown actual value field")
	ErrExerciseNotFound = errors.New("program exercise not found")
	ErrActualsRecorded  = errors.New("exercise already has recorded actual values")
	ErrTooManyActuals   = errors.New("actual values exceed set count")
	ErrInvalidTargets   = errors.New("invalid exercise targets")
)

type Status string

const (
	StatusActive     Status = "active"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Program is the assigned training plan of one client. Programs are treated
// as immutable values: every edit returns a new *Program sharing all the
// untouched weeks, days and exercises with the previous one.
type Program struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	ClientID      string     `json:"clientId"`
	TrainerID     string     `json:"trainerId"`
	Status        Status     `json:"status"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
	DurationWeeks int        `json:"durationWeeks,omitempty"`
	Weeks         []*Week    `json:"weeks"`
}

type Week struct {
	ID     string `json:"id"`
	Number int    `json:"weekNumber"`
	Days   []*Day `json:"days"`
}

type Day struct {
	ID      string  `json:"id"`
	Number  int     `json:"dayNumber"`
	Workout Workout `json:"workout"`
}

type Workout struct {
	ID        string             `json:"id"`
	Exercises []*ProgramExercise `json:"workoutExercises"`
}

// ProgramExercise is one exercise of one day.
type ProgramExercise struct {
	ID          string
	WorkoutID   string
	ExerciseID  string
	Exercise    catalog.Exercise
	Sets        int
	Performance Performance
}

func (e *ProgramExercise) Category() catalog.Category {
	if e.Performance == nil {
		return ""
	}
	return e.Performance.Category()
}

// Path addresses an exercise by position in the tree.
type Path struct {
	Week     int `json:"week"`
	Day      int `json:"day"`
	Exercise int `json:"exercise"`
}

// Located is an exercise together with its current path.
type Located struct {
	Path     Path
	Exercise *ProgramExercise
}

func (p *Program) IsCompleted() bool {
	return p.Status == StatusCompleted
}

// Exercises flattens weeks, days and exercises in tree order.
func (p *Program) Exercises() []Located {
	var located []Located
	for wi, week := range p.Weeks {
		for di, day := range week.Days {
			for ei, ex := range day.Workout.Exercises {
				located = append(located, Located{
					Path:     Path{Week: wi, Day: di, Exercise: ei},
					Exercise: ex,
				})
			}
		}
	}
	return located
}

func (p *Program) ExerciseAt(path Path) (*ProgramExercise, error) {
	if path.Week < 0 || path.Week >= len(p.Weeks) {
		return nil, ErrIndexOutOfRange
	}
	week := p.Weeks[path.Week]
	if path.Day < 0 || path.Day >= len(week.Days) {
		return nil, ErrIndexOutOfRange
	}
	exercises := week.Days[path.Day].Workout.Exercises
	if path.Exercise < 0 || path.Exercise >= len(exercises) {
		return nil, ErrIndexOutOfRange
	}
	return exercises[path.Exercise], nil
}

// FindExercise resolves the stable id of a program exercise to its path.
// An empty id never matches.
func (p *Program) FindExercise(id string) (Path, error) {
	if id == "" {
		return Path{}, ErrExerciseNotFound
	}
	for _, l := range p.Exercises() {
		if l.Exercise.ID == id {
			return l.Path, nil
		}
	}
	return Path{}, ErrExerciseNotFound
}

// WorkoutIDs returns the distinct workout ids, in tree order.
func (p *Program) WorkoutIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, l := range p.Exercises() {
		id := l.Exercise.WorkoutID
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// MarkCompleted returns a copy of the program with status completed.
func (p *Program) MarkCompleted(at time.Time) *Program {
	updated := *p
	updated.Status = StatusCompleted
	updated.CompletedDate = &at
	return &updated
}
