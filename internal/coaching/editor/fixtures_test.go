package editor_test

import (
	"github.com/2beens/coachboard/internal/coaching/catalog"
	"github.com/2beens/coachboard/internal/coaching/program"
)

// singleExerciseProgram has one week with one day holding a bench press of
// three sets.
func singleExerciseProgram() *program.Program {
	return &program.Program{
		ID:        "prog-1",
		Title:     "Bench Block",
		ClientID:  "client-1",
		TrainerID: "trainer-1",
		Status:    program.StatusActive,
		Weeks: []*program.Week{{
			ID:     "week-1",
			Number: 1,
			Days: []*program.Day{{
				ID:     "day-1",
				Number: 1,
				Workout: program.Workout{
					ID: "w1",
					Exercises: []*program.ProgramExercise{{
						ID:          "pe-1",
						WorkoutID:   "w1",
						ExerciseID:  "bench",
						Exercise:    catalog.Exercise{ID: "bench", Name: "Bench Press", Category: catalog.CategoryStrength},
						Sets:        3,
						Performance: &program.Strength{Reps: []int{10, 10, 8}},
					}},
				},
			}},
		}},
	}
}

func mustSet(p *program.Program, set int, weight, reps float64) *program.Program {
	var err error
	p, _, err = p.SetActualValue(program.Path{}, set, program.FieldWeight, weight)
	if err != nil {
		panic(err)
	}
	p, _, err = p.SetActualValue(program.Path{}, set, program.FieldActualReps, reps)
	if err != nil {
		panic(err)
	}
	return p
}
