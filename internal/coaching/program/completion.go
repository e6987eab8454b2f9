package program

// SetComplete reports whether one set holds the category specific pair of
// positive actual values: weight and reps for strength, calories and
// duration for cardio.
func SetComplete(perf Performance, setIndex int) bool {
	switch p := perf.(type) {
	case *Strength:
		return valueAt(p.Weight, setIndex).Positive() && valueAt(p.ActualReps, setIndex).Positive()
	case *Cardio:
		return valueAt(p.Calories, setIndex).Positive() && valueAt(p.Duration, setIndex).Positive()
	default:
		return false
	}
}

// SetCompletion returns the completion of every set of one exercise.
func (e *ProgramExercise) SetCompletion() []bool {
	completion := make([]bool, e.Sets)
	for i := range completion {
		completion[i] = SetComplete(e.Performance, i)
	}
	return completion
}

func (e *ProgramExercise) CompletedSets() int {
	count := 0
	for _, done := range e.SetCompletion() {
		if done {
			count++
		}
	}
	return count
}

// Complete is the exercise level rule used when logs are built: every set
// index 0..sets-1 has a recorded value in both actual arrays of the category.
func (e *ProgramExercise) Complete() bool {
	switch p := e.Performance.(type) {
	case *Strength:
		return countRecorded(p.Weight, e.Sets) == e.Sets && countRecorded(p.ActualReps, e.Sets) == e.Sets
	case *Cardio:
		return countRecorded(p.Calories, e.Sets) == e.Sets && countRecorded(p.Duration, e.Sets) == e.Sets
	default:
		return false
	}
}

// SetCompletion returns per-set completion of the exercise at path.
func (p *Program) SetCompletion(path Path) ([]bool, error) {
	ex, err := p.ExerciseAt(path)
	if err != nil {
		return nil, err
	}
	return ex.SetCompletion(), nil
}
