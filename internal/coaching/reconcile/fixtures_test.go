package reconcile_test

import (
	"github.com/2beens/coachboard/internal/coaching/catalog"
	"github.com/2beens/coachboard/internal/coaching/program"
)

func strengthExercise(id, workoutID, exerciseID string, reps ...int) *program.ProgramExercise {
	return &program.ProgramExercise{
		ID:          id,
		WorkoutID:   workoutID,
		ExerciseID:  exerciseID,
		Exercise:    catalog.Exercise{ID: exerciseID, Name: exerciseID, Category: catalog.CategoryStrength},
		Sets:        len(reps),
		Performance: &program.Strength{Reps: reps},
	}
}

func cardioExercise(id, workoutID, exerciseID string, sets int) *program.ProgramExercise {
	return &program.ProgramExercise{
		ID:         id,
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		Exercise:   catalog.Exercise{ID: exerciseID, Name: exerciseID, Category: catalog.CategoryCardio},
		Sets:       sets,
		Performance: &program.Cardio{
			TimeInSeconds:    900,
			DistanceInMeters: 3000,
			TargetCalories:   200,
		},
	}
}

// programOf puts each exercise group into its own week with a single day.
func programOf(groups ...[]*program.ProgramExercise) *program.Program {
	p := &program.Program{
		ID:        "prog-1",
		Title:     "Strength Block",
		ClientID:  "client-1",
		TrainerID: "trainer-1",
		Status:    program.StatusActive,
	}
	for i, exercises := range groups {
		workoutID := ""
		if len(exercises) > 0 {
			workoutID = exercises[0].WorkoutID
		}
		p.Weeks = append(p.Weeks, &program.Week{
			ID:     "week-" + string(rune('a'+i)),
			Number: i + 1,
			Days: []*program.Day{{
				ID:     "day-" + string(rune('a'+i)),
				Number: 1,
				Workout: program.Workout{
					ID:        workoutID,
					Exercises: exercises,
				},
			}},
		})
	}
	return p
}

type setValue struct {
	set   int
	field program.Field
	value float64
}

func mustSet(p *program.Program, path program.Path, values ...setValue) *program.Program {
	for _, v := range values {
		var err error
		p, _, err = p.SetActualValue(path, v.set, v.field, v.value)
		if err != nil {
			panic(err)
		}
	}
	return p
}

func fillStrength(p *program.Program, path program.Path, weight float64, sets int) *program.Program {
	for i := 0; i < sets; i++ {
		p = mustSet(p, path,
			setValue{i, program.FieldWeight, weight},
			setValue{i, program.FieldActualReps, 10},
		)
	}
	return p
}
