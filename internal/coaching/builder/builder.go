package builder

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/2beens/coachboard/internal/coaching/catalog"
)

var (
	ErrIndexOutOfRange = errors.New("week, day or exercise index out of range")
	ErrNotConfirmed    = errors.New("removal not confirmed")
)

// ExerciseInput is an exercise definition as entered by the trainer.
type ExerciseInput struct {
	ExerciseID string           `json:"exerciseId" toml:"exercise_id"`
	Name       string           `json:"name" toml:"name"`
	Category   catalog.Category `json:"category" toml:"category"`
	Sets       int              `json:"sets" toml:"sets"`
	// Reps is the free text reps field, e.g. "10,10,8".
	Reps             string  `json:"reps" toml:"reps"`
	TimeInSeconds    float64 `json:"timeInSeconds" toml:"time_in_seconds"`
	DistanceInMeters float64 `json:"distanceInMeters" toml:"distance_in_meters"`
	TargetCalories   float64 `json:"targetCalories" toml:"target_calories"`
}

type ExerciseDraft struct {
	ID string `json:"id"`
	ExerciseInput
}

type DayDraft struct {
	ID        string           `json:"id"`
	Number    int              `json:"dayNumber"`
	WorkoutID string           `json:"workoutId"`
	Exercises []*ExerciseDraft `json:"exercises"`
}

type WeekDraft struct {
	ID     string      `json:"id"`
	Number int         `json:"weekNumber"`
	Days   []*DayDraft `json:"days"`

	nextDayNumber int
}

// Builder assembles a new program before its first submission. Week and day
// numbers are handed out once per session and are never recalculated, so
// removing week 2 of 3 leaves weeks 1 and 3.
type Builder struct {
	Title     string
	ClientID  string
	TrainerID string

	weeks          []*WeekDraft
	nextWeekNumber int
	catalog        *catalog.Catalog
	newID          func() string
}

// New creates an empty builder. The catalog is optional and only used to
// fill in categories of exercises picked by name.
func New(cat *catalog.Catalog) *Builder {
	return &Builder{
		nextWeekNumber: 1,
		catalog:        cat,
		newID:          uuid.NewString,
	}
}

func (b *Builder) SetTitle(title string) {
	b.Title = title
}

func (b *Builder) SetClient(clientID string) {
	b.ClientID = clientID
}

func (b *Builder) SetTrainer(trainerID string) {
	b.TrainerID = trainerID
}

// Weeks returns the current weeks. The returned drafts must not be modified.
func (b *Builder) Weeks() []*WeekDraft {
	weeks := make([]*WeekDraft, len(b.weeks))
	copy(weeks, b.weeks)
	return weeks
}

func (b *Builder) AddWeek() *WeekDraft {
	week := &WeekDraft{
		ID:            b.newID(),
		Number:        b.nextWeekNumber,
		nextDayNumber: 1,
	}
	b.nextWeekNumber++
	b.weeks = append(b.weeks, week)
	return week
}

func (b *Builder) AddDay(weekIndex int) (*DayDraft, error) {
	week, err := b.week(weekIndex)
	if err != nil {
		return nil, err
	}

	day := &DayDraft{
		ID:        b.newID(),
		Number:    week.nextDayNumber,
		WorkoutID: b.newID(),
	}

	updatedWeek := *week
	updatedWeek.nextDayNumber++
	updatedWeek.Days = append(cloneDays(week.Days), day)
	b.replaceWeek(weekIndex, &updatedWeek)

	return day, nil
}

// AddExerciseToDay appends an exercise to one day. The day and its week are
// rebuilt, every other week and day keeps its identity.
func (b *Builder) AddExerciseToDay(weekIndex, dayIndex int, input ExerciseInput) (*ExerciseDraft, error) {
	week, err := b.week(weekIndex)
	if err != nil {
		return nil, err
	}
	if dayIndex < 0 || dayIndex >= len(week.Days) {
		return nil, ErrIndexOutOfRange
	}

	if input.Category == "" && b.catalog != nil {
		if category, ok := b.catalog.Autofill(input.Name); ok {
			input.Category = category
		}
	}
	if input.ExerciseID == "" && b.catalog != nil {
		if ex, err := b.catalog.ByName(input.Name); err == nil {
			input.ExerciseID = ex.ID
		}
	}

	exercise := &ExerciseDraft{
		ID:            b.newID(),
		ExerciseInput: input,
	}

	day := week.Days[dayIndex]
	updatedDay := *day
	updatedDay.Exercises = append(cloneExercises(day.Exercises), exercise)

	updatedWeek := *week
	updatedWeek.Days = cloneDays(week.Days)
	updatedWeek.Days[dayIndex] = &updatedDay
	b.replaceWeek(weekIndex, &updatedWeek)

	return exercise, nil
}

// RemoveWeek drops a week. It is a no-op unless confirmed.
func (b *Builder) RemoveWeek(weekIndex int, confirmed bool) error {
	if _, err := b.week(weekIndex); err != nil {
		return err
	}
	if !confirmed {
		return ErrNotConfirmed
	}

	weeks := make([]*WeekDraft, 0, len(b.weeks)-1)
	weeks = append(weeks, b.weeks[:weekIndex]...)
	weeks = append(weeks, b.weeks[weekIndex+1:]...)
	b.weeks = weeks
	return nil
}

// RemoveDay drops a day of a week. It is a no-op unless confirmed.
func (b *Builder) RemoveDay(weekIndex, dayIndex int, confirmed bool) error {
	week, err := b.week(weekIndex)
	if err != nil {
		return err
	}
	if dayIndex < 0 || dayIndex >= len(week.Days) {
		return ErrIndexOutOfRange
	}
	if !confirmed {
		return ErrNotConfirmed
	}

	days := make([]*DayDraft, 0, len(week.Days)-1)
	days = append(days, week.Days[:dayIndex]...)
	days = append(days, week.Days[dayIndex+1:]...)

	updatedWeek := *week
	updatedWeek.Days = days
	b.replaceWeek(weekIndex, &updatedWeek)
	return nil
}

func (b *Builder) RemoveExercise(weekIndex, dayIndex, exerciseIndex int) error {
	week, err := b.week(weekIndex)
	if err != nil {
		return err
	}
	if dayIndex < 0 || dayIndex >= len(week.Days) {
		return ErrIndexOutOfRange
	}
	day := week.Days[dayIndex]
	if exerciseIndex < 0 || exerciseIndex >= len(day.Exercises) {
		return ErrIndexOutOfRange
	}

	exercises := make([]*ExerciseDraft, 0, len(day.Exercises)-1)
	exercises = append(exercises, day.Exercises[:exerciseIndex]...)
	exercises = append(exercises, day.Exercises[exerciseIndex+1:]...)

	updatedDay := *day
	updatedDay.Exercises = exercises

	updatedWeek := *week
	updatedWeek.Days = cloneDays(week.Days)
	updatedWeek.Days[dayIndex] = &updatedDay
	b.replaceWeek(weekIndex, &updatedWeek)
	return nil
}

func (b *Builder) week(weekIndex int) (*WeekDraft, error) {
	if weekIndex < 0 || weekIndex >= len(b.weeks) {
		return nil, fmt.Errorf("%w: week %d", ErrIndexOutOfRange, weekIndex)
	}
	return b.weeks[weekIndex], nil
}

func (b *Builder) replaceWeek(weekIndex int, week *WeekDraft) {
	weeks := make([]*WeekDraft, len(b.weeks))
	copy(weeks, b.weeks)
	weeks[weekIndex] = week
	b.weeks = weeks
}

func cloneDays(days []*DayDraft) []*DayDraft {
	cloned := make([]*DayDraft, len(days), len(days)+1)
	copy(cloned, days)
	return cloned
}

func cloneExercises(exercises []*ExerciseDraft) []*ExerciseDraft {
	cloned := make([]*ExerciseDraft, len(exercises), len(exercises)+1)
	copy(cloned, exercises)
	return cloned
}
