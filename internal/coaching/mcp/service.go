package mcp

import (
	"context"
	"time"

	"github.com/2beens/coachboard/internal/coaching/program"
	"github.com/2beens/coachboard/internal/coaching/progress"
	"github.com/2beens/coachboard/internal/coaching/reconcile"
	"github.com/2beens/coachboard/internal/coaching/workoutlog"
)

// CoachingApi is the part of the remote coaching service the tools read from.
type CoachingApi interface {
	GetProgram(ctx context.Context, programID string) (*program.Program, error)
	ExerciseProgress(ctx context.Context, clientID, exerciseID string) ([]workoutlog.WorkoutLog, error)
}

// contextService is used by Handler, for testability.
type contextService interface {
	GetExerciseProgress(ctx context.Context, clientID, exerciseID string) (*ExerciseProgress, error)
	GetProgramCompletion(ctx context.Context, programID string) (*ProgramCompletion, error)
}

type ExerciseProgress struct {
	ClientID   string                `json:"client_id"`
	ExerciseID string                `json:"exercise_id"`
	Samples    []progress.Sample     `json:"samples"`
	Days       []progress.DaySummary `json:"days"`
}

type ExerciseCompletion struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	WeekNumber    int    `json:"week_number"`
	DayNumber     int    `json:"day_number"`
	Sets          int    `json:"sets"`
	CompletedSets int    `json:"completed_sets"`
	Completed     bool   `json:"completed"`
}

type ProgramCompletion struct {
	ProgramID     string               `json:"program_id"`
	Title         string               `json:"title"`
	Status        program.Status       `json:"status"`
	CompletedDate *time.Time           `json:"completed_date,omitempty"`
	AllComplete   bool                 `json:"all_complete"`
	Exercises     []ExerciseCompletion `json:"exercises"`
}

// ContextService implements the business logic behind the coaching tools.
type ContextService struct {
	api CoachingApi
}

func NewContextService(api CoachingApi) *ContextService {
	return &ContextService{
		api: api,
	}
}

// GetExerciseProgress returns the per-set series and the per-day summary of
// one exercise of a client.
func (s *ContextService) GetExerciseProgress(ctx context.Context, clientID, exerciseID string) (*ExerciseProgress, error) {
	logs, err := s.api.ExerciseProgress(ctx, clientID, exerciseID)
	if err != nil {
		return nil, err
	}
	samples := progress.Series(logs)
	if samples == nil {
		samples = []progress.Sample{}
	}
	return &ExerciseProgress{
		ClientID:   clientID,
		ExerciseID: exerciseID,
		Samples:    samples,
		Days:       progress.DailySummary(samples),
	}, nil
}

// GetProgramCompletion reports how far a program is from being completed,
// computed the same way a save would.
func (s *ContextService) GetProgramCompletion(ctx context.Context, programID string) (*ProgramCompletion, error) {
	p, err := s.api.GetProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	completion := &ProgramCompletion{
		ProgramID:     p.ID,
		Title:         p.Title,
		Status:        p.Status,
		CompletedDate: p.CompletedDate,
		Exercises:     []ExerciseCompletion{},
	}
	for _, l := range p.Exercises() {
		week := p.Weeks[l.Path.Week]
		day := week.Days[l.Path.Day]
		completion.Exercises = append(completion.Exercises, ExerciseCompletion{
			ID:            l.Exercise.ID,
			Name:          l.Exercise.Exercise.Name,
			WeekNumber:    week.Number,
			DayNumber:     day.Number,
			Sets:          l.Exercise.Sets,
			CompletedSets: l.Exercise.CompletedSets(),
			Completed:     l.Exercise.Complete(),
		})
	}
	completion.AllComplete = reconcile.ProgramCompleted(reconcile.CandidateLogs(p, time.Time{}))

	return completion, nil
}
