package progress

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/coachboard/internal/coaching/catalog"
	"github.com/2beens/coachboard/internal/coaching/program"
	"github.com/2beens/coachboard/internal/coaching/workoutlog"
	"github.com/2beens/coachboard/internal/telemetry/tracing"
	"github.com/2beens/coachboard/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressApi interface {
	ExerciseProgress(ctx context.Context, clientID, exerciseID string) ([]workoutlog.WorkoutLog, error)
	ClientProgress(ctx context.Context, clientID string) ([]catalog.Exercise, error)
	ListClientPrograms(ctx context.Context, clientID string) ([]*program.Program, error)
	ClientHistory(ctx context.Context, clientID string) ([]workoutlog.WorkoutLog, error)
}

type ExerciseProgressResponse struct {
	ClientID   string       `json:"clientId"`
	ExerciseID string       `json:"exerciseId"`
	Samples    []Sample     `json:"samples"`
	Days       []DaySummary `json:"days"`
}

type SummaryResponse struct {
	ClientID          string             `json:"clientId"`
	CompletedPrograms int                `json:"completedPrograms"`
	ActivePrograms    []*program.Program `json:"activePrograms"`
	Exercises         []catalog.Exercise `json:"exercises"`
	LoggedWorkouts    int                `json:"loggedWorkouts"`
	LastLogDate       *time.Time         `json:"lastLogDate,omitempty"`
}

type Handler struct {
	api progressApi
}

func NewHandler(api progressApi) *Handler {
	return &Handler{
		api: api,
	}
}

func (handler *Handler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.exercise")
	defer span.End()

	vars := mux.Vars(r)
	clientID := vars["clientId"]
	exerciseID := vars["exerciseId"]
	if clientID == "" || exerciseID == "" {
		http.Error(w, "error, client id or exercise id empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.String("client.id", clientID),
		attribute.String("exercise.id", exerciseID),
	)

	logs, err := handler.api.ExerciseProgress(ctx, clientID, exerciseID)
	if err != nil {
		log.Errorf("get exercise progress [%s] [%s]: %s", clientID, exerciseID, err)
		http.Error(w, "error, failed to get exercise progress", http.StatusBadGateway)
		return
	}

	samples := Series(logs)
	pkg.WriteJSON(w, ExerciseProgressResponse{
		ClientID:   clientID,
		ExerciseID: exerciseID,
		Samples:    nonNilSamples(samples),
		Days:       DailySummary(samples),
	}, http.StatusOK)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.summary")
	defer span.End()

	clientID := mux.Vars(r)["clientId"]
	if clientID == "" {
		http.Error(w, "error, client id empty", http.StatusBadRequest)
		return
	}

	programs, err := handler.api.ListClientPrograms(ctx, clientID)
	if err != nil {
		log.Errorf("list client programs [%s]: %s", clientID, err)
		http.Error(w, "error, failed to get client programs", http.StatusBadGateway)
		return
	}

	exercises, err := handler.api.ClientProgress(ctx, clientID)
	if err != nil {
		log.Errorf("get client progress [%s]: %s", clientID, err)
		http.Error(w, "error, failed to get client progress", http.StatusBadGateway)
		return
	}

	history, err := handler.api.ClientHistory(ctx, clientID)
	if err != nil {
		// summary is still useful without the history
		log.Errorf("get client history [%s]: %s", clientID, err)
	}

	active, _ := SplitActive(programs)
	resp := SummaryResponse{
		ClientID:          clientID,
		CompletedPrograms: CompletedPrograms(programs),
		ActivePrograms:    active,
		Exercises:         exercises,
		LoggedWorkouts:    len(history),
	}
	for _, l := range history {
		if resp.LastLogDate == nil || l.LogDate.After(*resp.LastLogDate) {
			logDate := l.LogDate
			resp.LastLogDate = &logDate
		}
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func nonNilSamples(samples []Sample) []Sample {
	if samples == nil {
		return []Sample{}
	}
	return samples
}
