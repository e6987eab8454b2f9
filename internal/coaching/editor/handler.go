package editor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/coachboard/internal/coaching/program"
	"github.com/2beens/coachboard/internal/coaching/reconcile"
	"github.com/2beens/coachboard/internal/coaching/workoutlog"
	"github.com/2beens/coachboard/internal/telemetry/tracing"
	"github.com/2beens/coachboard/pkg"
)

type SetValueParams struct {
	ExerciseID string  `json:"exerciseId"`
	SetIndex   int     `json:"set"`
	Field      string  `json:"field"`
	Value      float64 `json:"value"`
}

type TargetsParams struct {
	Sets             int     `json:"sets"`
	Reps             []int   `json:"reps"`
	TimeInSeconds    float64 `json:"timeInSeconds"`
	DistanceInMeters float64 `json:"distanceInMeters"`
	TargetCalories   float64 `json:"targetCalories"`
}

type SaveResponse struct {
	Program       *program.Program        `json:"program"`
	SubmittedLogs []workoutlog.WorkoutLog `json:"submittedLogs"`
	AllComplete   bool                    `json:"allComplete"`
	StatusUpdated bool                    `json:"statusUpdated"`
	Errors        []string                `json:"errors,omitempty"`
}

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{
		manager: manager,
	}
}

// HandleOpen opens (or joins) the editor session of a program.
func (handler *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.editor.open")
	defer span.End()

	programID := mux.Vars(r)["programId"]
	if programID == "" {
		http.Error(w, "error, program id empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("program.id", programID))

	view, err := handler.manager.Open(ctx, programID)
	if err != nil {
		log.Errorf("open editor for program [%s]: %s", programID, err)
		http.Error(w, "error, failed to open program", http.StatusBadGateway)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (handler *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	programID := mux.Vars(r)["programId"]
	handler.manager.Close(programID)
	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleSetValue(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.editor.set")
	defer span.End()

	programID := mux.Vars(r)["programId"]

	var params SetValueParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "error, invalid set value params", http.StatusBadRequest)
		return
	}
	field, err := program.ParseField(params.Field)
	if err != nil {
		http.Error(w, "error, unknown field", http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.String("program.id", programID),
		attribute.String("field", params.Field),
	)

	edit, err := handler.manager.SetValue(ctx, programID, params.ExerciseID, params.SetIndex, field, params.Value)
	if err != nil {
		writeEditError(w, programID, err)
		return
	}

	pkg.WriteJSON(w, edit, http.StatusOK)
}

func (handler *Handler) HandleClearValue(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.editor.clear")
	defer span.End()

	programID := mux.Vars(r)["programId"]
	query := r.URL.Query()

	setIndex, err := strconv.Atoi(query.Get("set"))
	if err != nil {
		http.Error(w, "error, invalid set index", http.StatusBadRequest)
		return
	}
	field, err := program.ParseField(query.Get("field"))
	if err != nil {
		http.Error(w, "error, unknown field", http.StatusBadRequest)
		return
	}

	edit, err := handler.manager.Clear(ctx, programID, query.Get("exerciseId"), setIndex, field)
	if err != nil {
		writeEditError(w, programID, err)
		return
	}

	pkg.WriteJSON(w, edit, http.StatusOK)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.editor.remove")
	defer span.End()

	vars := mux.Vars(r)
	programID := vars["programId"]
	exerciseID := vars["exerciseId"]

	view, err := handler.manager.RemoveExercise(ctx, programID, exerciseID)
	if err != nil {
		writeEditError(w, programID, err)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (handler *Handler) HandleUpdateTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.editor.targets")
	defer span.End()

	vars := mux.Vars(r)
	programID := vars["programId"]
	exerciseID := vars["exerciseId"]

	var params TargetsParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "error, invalid targets params", http.StatusBadRequest)
		return
	}

	view, err := handler.manager.UpdateTargets(ctx, programID, exerciseID, program.Targets{
		Sets:             params.Sets,
		Reps:             params.Reps,
		TimeInSeconds:    params.TimeInSeconds,
		DistanceInMeters: params.DistanceInMeters,
		TargetCalories:   params.TargetCalories,
	})
	if err != nil {
		writeEditError(w, programID, err)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.editor.save")
	defer span.End()

	programID := mux.Vars(r)["programId"]
	span.SetAttributes(attribute.String("program.id", programID))

	result, err := handler.manager.Save(ctx, programID)
	if result == nil {
		writeEditError(w, programID, err)
		return
	}

	pkg.WriteJSON(w, saveResponse(result), saveStatusCode(result))
}

func saveResponse(result *reconcile.SaveResult) SaveResponse {
	resp := SaveResponse{
		Program:       result.Program,
		SubmittedLogs: result.SubmittedLogs,
		AllComplete:   result.AllComplete,
		StatusUpdated: result.StatusUpdated,
	}
	if resp.SubmittedLogs == nil {
		resp.SubmittedLogs = []workoutlog.WorkoutLog{}
	}
	for _, err := range []error{result.StatusErr, result.LogsErr, result.HistoryErr} {
		if err != nil {
			resp.Errors = append(resp.Errors, err.Error())
		}
	}
	return resp
}

func saveStatusCode(result *reconcile.SaveResult) int {
	if result.Err() != nil {
		return http.StatusBadGateway
	}
	return http.StatusOK
}

func writeEditError(w http.ResponseWriter, programID string, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "error, program not opened for editing", http.StatusNotFound)
	case errors.Is(err, program.ErrExerciseNotFound):
		http.Error(w, "error, exercise not found", http.StatusNotFound)
	case errors.Is(err, program.ErrProgramCompleted):
		http.Error(w, "error, program completed", http.StatusConflict)
	case errors.Is(err, program.ErrActualsRecorded):
		http.Error(w, "error, exercise already has recorded values", http.StatusConflict)
	case errors.Is(err, program.ErrInvalidTargets):
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
	case errors.Is(err, program.ErrSetOutOfRange),
		errors.Is(err, program.ErrIndexOutOfRange),
		errors.Is(err, program.ErrFieldMismatch):
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("edit program [%s]: %s", programID, err)
		http.Error(w, "error, failed to edit program", http.StatusBadGateway)
	}
}
