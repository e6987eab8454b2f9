package builder

import (
	"fmt"
	"strings"

	"github.com/2beens/coachboard/internal/coaching/catalog"
	"github.com/2beens/coachboard/internal/coaching/program"
)

// ValidationErrors lists every problem found in a draft.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return "invalid program: " + strings.Join(v, "; ")
}

// Validate checks the draft before anything is sent to the coaching service.
// Coerced reps tokens are not errors; they are reported by Build.
func (b *Builder) Validate() error {
	var problems ValidationErrors

	if strings.TrimSpace(b.Title) == "" {
		problems = append(problems, "title is empty")
	}
	if strings.TrimSpace(b.TrainerID) == "" {
		problems = append(problems, "trainer not set")
	}
	if strings.TrimSpace(b.ClientID) == "" {
		problems = append(problems, "client not set")
	}
	if len(b.weeks) == 0 {
		problems = append(problems, "program has no weeks")
	}

	for _, week := range b.weeks {
		for _, day := range week.Days {
			for i, ex := range day.Exercises {
				where := fmt.Sprintf("week %d, day %d, exercise %d", week.Number, day.Number, i+1)
				problems = append(problems, validateExercise(where, ex.ExerciseInput)...)
			}
		}
	}

	if len(problems) > 0 {
		return problems
	}
	return nil
}

func validateExercise(where string, ex ExerciseInput) []string {
	var problems []string
	if strings.TrimSpace(ex.Name) == "" && ex.ExerciseID == "" {
		problems = append(problems, where+": exercise not selected")
	}

	switch ex.Category {
	case catalog.CategoryStrength:
		if ex.Sets <= 0 {
			problems = append(problems, where+": sets missing")
			break
		}
		if _, err := ParseReps(ex.Reps, ex.Sets); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %s", where, err))
		}
	case catalog.CategoryCardio:
		if ex.DistanceInMeters <= 0 {
			problems = append(problems, where+": distance missing")
		}
		if ex.TargetCalories <= 0 {
			problems = append(problems, where+": calories missing")
		}
	default:
		problems = append(problems, fmt.Sprintf("%s: unknown category %q", where, ex.Category))
	}
	return problems
}

// Coercion points at a reps token that was replaced by 0.
type Coercion struct {
	WeekNumber int    `json:"weekNumber"`
	DayNumber  int    `json:"dayNumber"`
	ExerciseID string `json:"exerciseId"`
	Positions  []int  `json:"positions"`
}

// Build validates the draft and produces the program tree, with status active.
func (b *Builder) Build() (*program.Program, []Coercion, error) {
	if err := b.Validate(); err != nil {
		return nil, nil, err
	}

	p := &program.Program{
		ID:            b.newID(),
		Title:         strings.TrimSpace(b.Title),
		ClientID:      b.ClientID,
		TrainerID:     b.TrainerID,
		Status:        program.StatusActive,
		DurationWeeks: len(b.weeks),
		Weeks:         make([]*program.Week, 0, len(b.weeks)),
	}

	var coercions []Coercion
	for _, weekDraft := range b.weeks {
		week := &program.Week{
			ID:     weekDraft.ID,
			Number: weekDraft.Number,
			Days:   make([]*program.Day, 0, len(weekDraft.Days)),
		}
		for _, dayDraft := range weekDraft.Days {
			day := &program.Day{
				ID:     dayDraft.ID,
				Number: dayDraft.Number,
				Workout: program.Workout{
					ID:        dayDraft.WorkoutID,
					Exercises: make([]*program.ProgramExercise, 0, len(dayDraft.Exercises)),
				},
			}
			for _, exDraft := range dayDraft.Exercises {
				ex, coerced := buildExercise(dayDraft.WorkoutID, exDraft)
				if len(coerced) > 0 {
					coercions = append(coercions, Coercion{
						WeekNumber: weekDraft.Number,
						DayNumber:  dayDraft.Number,
						ExerciseID: ex.ExerciseID,
						Positions:  coerced,
					})
				}
				day.Workout.Exercises = append(day.Workout.Exercises, ex)
			}
			week.Days = append(week.Days, day)
		}
		p.Weeks = append(p.Weeks, week)
	}

	return p, coercions, nil
}

// buildExercise expects a validated draft.
func buildExercise(workoutID string, draft *ExerciseDraft) (*program.ProgramExercise, []int) {
	ex := &program.ProgramExercise{
		ID:         draft.ID,
		WorkoutID:  workoutID,
		ExerciseID: draft.ExerciseID,
		Exercise: catalog.Exercise{
			ID:       draft.ExerciseID,
			Name:     draft.Name,
			Category: draft.Category,
		},
		Sets: draft.Sets,
	}

	switch draft.Category {
	case catalog.CategoryStrength:
		parsed, _ := ParseReps(draft.Reps, draft.Sets)
		ex.Performance = &program.Strength{Reps: parsed.Reps}
		return ex, parsed.Coerced
	default:
		if ex.Sets <= 0 {
			ex.Sets = 1
		}
		ex.Performance = &program.Cardio{
			TimeInSeconds:    draft.TimeInSeconds,
			DistanceInMeters: draft.DistanceInMeters,
			TargetCalories:   draft.TargetCalories,
		}
		return ex, nil
	}
}
