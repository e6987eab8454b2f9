package program

import (
	"fmt"
)

// SetActualValue writes value into the field array of one set and returns the
// updated program along with the completion of that set. Only the touched
// week, day and exercise are copied; p itself is left unchanged.
func (p *Program) SetActualValue(path Path, setIndex int, field Field, value float64) (*Program, bool, error) {
	return p.writeActual(path, setIndex, field, Float(value))
}

// ClearActualValue empties one set entry, e.g. when the client clears an input.
func (p *Program) ClearActualValue(path Path, setIndex int, field Field) (*Program, bool, error) {
	return p.writeActual(path, setIndex, field, NullFloat{})
}

func (p *Program) writeActual(path Path, setIndex int, field Field, value NullFloat) (*Program, bool, error) {
	if p.IsCompleted() {
		return nil, false, ErrProgramCompleted
	}
	if _, err := ParseField(string(field)); err != nil {
		return nil, false, err
	}

	ex, err := p.ExerciseAt(path)
	if err != nil {
		return nil, false, err
	}
	if setIndex < 0 || setIndex >= ex.Sets {
		return nil, false, fmt.Errorf("%w: set %d, sets %d", ErrSetOutOfRange, setIndex, ex.Sets)
	}
	if ex.Performance == nil {
		return nil, false, ErrFieldMismatch
	}

	perf, err := ex.Performance.withActual(field, ex.Sets, setIndex, value)
	if err != nil {
		return nil, false, err
	}

	updatedEx := *ex
	updatedEx.Performance = perf

	return p.replaceExercise(path, &updatedEx), SetComplete(perf, setIndex), nil
}

// Targets are the prescribed values a trainer may change on an assigned program.
type Targets struct {
	Sets             int
	Reps             []int
	TimeInSeconds    float64
	DistanceInMeters float64
	TargetCalories   float64
}

// UpdateTargets replaces the prescribed targets of one exercise. It is
// rejected once the client recorded anything for that exercise, so actual
// arrays never end up longer than the set count.
func (p *Program) UpdateTargets(path Path, targets Targets) (*Program, error) {
	if p.IsCompleted() {
		return nil, ErrProgramCompleted
	}

	ex, err := p.ExerciseAt(path)
	if err != nil {
		return nil, err
	}
	if ex.Performance != nil && ex.Performance.hasActuals() {
		return nil, ErrActualsRecorded
	}
	if targets.Sets <= 0 {
		return nil, fmt.Errorf("%w: sets must be positive", ErrInvalidTargets)
	}

	updatedEx := *ex
	updatedEx.Sets = targets.Sets
	switch ex.Performance.(type) {
	case *Strength:
		if len(targets.Reps) != targets.Sets {
			return nil, fmt.Errorf("%w: %d reps for %d sets", ErrInvalidTargets, len(targets.Reps), targets.Sets)
		}
		reps := make([]int, len(targets.Reps))
		copy(reps, targets.Reps)
		updatedEx.Performance = &Strength{Reps: reps}
	case *Cardio:
		updatedEx.Performance = &Cardio{
			TimeInSeconds:    targets.TimeInSeconds,
			DistanceInMeters: targets.DistanceInMeters,
			TargetCalories:   targets.TargetCalories,
		}
	default:
		return nil, ErrFieldMismatch
	}

	return p.replaceExercise(path, &updatedEx), nil
}

// RemoveExercise drops a whole exercise, together with its actual values.
func (p *Program) RemoveExercise(path Path) (*Program, error) {
	if _, err := p.ExerciseAt(path); err != nil {
		return nil, err
	}

	week := p.Weeks[path.Week]
	day := week.Days[path.Day]

	exercises := make([]*ProgramExercise, 0, len(day.Workout.Exercises)-1)
	exercises = append(exercises, day.Workout.Exercises[:path.Exercise]...)
	exercises = append(exercises, day.Workout.Exercises[path.Exercise+1:]...)

	updatedDay := *day
	updatedDay.Workout.Exercises = exercises

	return p.replaceDay(path.Week, path.Day, &updatedDay), nil
}

func (p *Program) replaceExercise(path Path, ex *ProgramExercise) *Program {
	day := p.Weeks[path.Week].Days[path.Day]

	exercises := make([]*ProgramExercise, len(day.Workout.Exercises))
	copy(exercises, day.Workout.Exercises)
	exercises[path.Exercise] = ex

	updatedDay := *day
	updatedDay.Workout.Exercises = exercises

	return p.replaceDay(path.Week, path.Day, &updatedDay)
}

func (p *Program) replaceDay(weekIndex, dayIndex int, day *Day) *Program {
	week := p.Weeks[weekIndex]

	days := make([]*Day, len(week.Days))
	copy(days, week.Days)
	days[dayIndex] = day

	updatedWeek := *week
	updatedWeek.Days = days

	weeks := make([]*Week, len(p.Weeks))
	copy(weeks, p.Weeks)
	weeks[weekIndex] = &updatedWeek

	updated := *p
	updated.Weeks = weeks
	return &updated
}
