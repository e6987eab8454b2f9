package program

import (
	"encoding/json"
	"fmt"

	"github.com/2beens/coachboard/internal/coaching/catalog"
)

// programExerciseJSON is the flat wire shape, carrying the fields of both
// categories.
type programExerciseJSON struct {
	ID               string           `json:"id"`
	WorkoutID        string           `json:"workoutId"`
	ExerciseID       string           `json:"exerciseId"`
	Exercise         catalog.Exercise `json:"exercise"`
	Sets             int              `json:"sets"`
	Reps             []int            `json:"reps,omitempty"`
	Weight           []NullFloat      `json:"weight,omitempty"`
	ActualReps       []NullFloat      `json:"actualReps,omitempty"`
	TimeInSeconds    float64          `json:"timeInSeconds,omitempty"`
	DistanceInMeters float64          `json:"distanceInMeters,omitempty"`
	TargetCalories   float64          `json:"targetCalories,omitempty"`
	Calories         []NullFloat      `json:"calories,omitempty"`
	Duration         []NullFloat      `json:"duration,omitempty"`
}

func (e *ProgramExercise) MarshalJSON() ([]byte, error) {
	wire := programExerciseJSON{
		ID:         e.ID,
		WorkoutID:  e.WorkoutID,
		ExerciseID: e.ExerciseID,
		Exercise:   e.Exercise,
		Sets:       e.Sets,
	}

	switch p := e.Performance.(type) {
	case *Strength:
		wire.Reps = p.Reps
		wire.Weight = p.Weight
		wire.ActualReps = p.ActualReps
	case *Cardio:
		wire.TimeInSeconds = p.TimeInSeconds
		wire.DistanceInMeters = p.DistanceInMeters
		wire.TargetCalories = p.TargetCalories
		wire.Calories = p.Calories
		wire.Duration = p.Duration
	}
	if wire.Exercise.Category == "" && e.Performance != nil {
		wire.Exercise.Category = e.Performance.Category()
	}

	return json.Marshal(wire)
}

func (e *ProgramExercise) UnmarshalJSON(data []byte) error {
	var wire programExerciseJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	category := wire.Exercise.Category
	if category == "" {
		category = guessCategory(wire)
	}

	var perf Performance
	switch category {
	case catalog.CategoryStrength:
		perf = &Strength{
			Reps:       wire.Reps,
			Weight:     wire.Weight,
			ActualReps: wire.ActualReps,
		}
	case catalog.CategoryCardio:
		perf = &Cardio{
			TimeInSeconds:    wire.TimeInSeconds,
			DistanceInMeters: wire.DistanceInMeters,
			TargetCalories:   wire.TargetCalories,
			Calories:         wire.Calories,
			Duration:         wire.Duration,
		}
	default:
		return fmt.Errorf("exercise [%s]: %w: %q", wire.ExerciseID, catalog.ErrUnknownCategory, category)
	}

	if perf.maxActualLen() > wire.Sets {
		return fmt.Errorf("exercise [%s]: %w: %d > %d", wire.ExerciseID, ErrTooManyActuals, perf.maxActualLen(), wire.Sets)
	}

	wire.Exercise.Category = category
	*e = ProgramExercise{
		ID:          wire.ID,
		WorkoutID:   wire.WorkoutID,
		ExerciseID:  wire.ExerciseID,
		Exercise:    wire.Exercise,
		Sets:        wire.Sets,
		Performance: perf,
	}
	return nil
}

func guessCategory(wire programExerciseJSON) catalog.Category {
	if len(wire.Reps) == 0 && (wire.TimeInSeconds > 0 || wire.DistanceInMeters > 0 || len(wire.Calories) > 0 || len(wire.Duration) > 0) {
		return catalog.CategoryCardio
	}
	return catalog.CategoryStrength
}
