package reconcile

import (
	"github.com/2beens/coachboard/internal/coaching/program"
	"github.com/2beens/coachboard/internal/coaching/workoutlog"
)

// History is the most recent meaningful log per (workout, exercise) pair.
type History map[workoutlog.Key]workoutlog.WorkoutLog

// MergeLatest keeps, per (workoutId, exerciseId), the log with the latest
// log date among the logs that have recorded actual reps. Equal dates are
// decided by the greater log id, so the result does not depend on the order
// in which logs arrive.
func MergeLatest(logs []workoutlog.WorkoutLog) History {
	merged := make(History)
	for _, l := range logs {
		if !l.HasRecordedReps() {
			continue
		}

		key := l.Key()
		current, ok := merged[key]
		if !ok || newer(l, current) {
			merged[key] = l
		}
	}
	return merged
}

func newer(a, b workoutlog.WorkoutLog) bool {
	if a.LogDate.Equal(b.LogDate) {
		return a.ID > b.ID
	}
	return a.LogDate.After(b.LogDate)
}

// Placeholder holds previously logged values shown as hints in empty inputs.
type Placeholder struct {
	Weight program.NullFloat `json:"weight"`
	Reps   program.NullFloat `json:"reps"`
}

func (p Placeholder) Empty() bool {
	return !p.Weight.Valid && !p.Reps.Valid
}

// Placeholder returns the historical values for one set of the exercise.
// A value is only offered where the live buffer has nothing recorded.
// Cardio logs carry no per-set values, so cardio sets get no placeholders.
func (h History) Placeholder(ex *program.ProgramExercise, setIndex int) Placeholder {
	strength, ok := ex.Performance.(*program.Strength)
	if !ok || setIndex < 0 || setIndex >= ex.Sets {
		return Placeholder{}
	}

	l, ok := h[workoutlog.Key{WorkoutID: ex.WorkoutID, ExerciseID: ex.ExerciseID}]
	if !ok {
		return Placeholder{}
	}

	var placeholder Placeholder
	if !at(strength.Weight, setIndex).Valid {
		placeholder.Weight = at(l.WeightUsed, setIndex)
	}
	if !at(strength.ActualReps, setIndex).Valid {
		placeholder.Reps = at(l.ActualReps, setIndex)
	}
	return placeholder
}

// Placeholders returns placeholders for every set of the exercise.
func (h History) Placeholders(ex *program.ProgramExercise) []Placeholder {
	placeholders := make([]Placeholder, ex.Sets)
	for i := range placeholders {
		placeholders[i] = h.Placeholder(ex, i)
	}
	return placeholders
}

func at(values []program.NullFloat, i int) program.NullFloat {
	if i < 0 || i >= len(values) {
		return program.NullFloat{}
	}
	return values[i]
}
