package builder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/coachboard/internal/coaching/catalog"
	"github.com/2beens/coachboard/internal/coaching/program"
	"github.com/2beens/coachboard/internal/telemetry/metrics"
	"github.com/2beens/coachboard/internal/telemetry/tracing"
	"github.com/2beens/coachboard/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=builder_test

type builderApi interface {
	ListExercises(ctx context.Context) ([]catalog.Exercise, error)
	CreateProgram(ctx context.Context, p *program.Program) (*program.Program, error)
}

type DraftParams struct {
	Title     *string `json:"title"`
	ClientID  *string `json:"clientId"`
	TrainerID *string `json:"trainerId"`
}

type DraftResponse struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	ClientID  string       `json:"clientId"`
	TrainerID string       `json:"trainerId"`
	Weeks     []*WeekDraft `json:"weeks"`
}

type SubmitResponse struct {
	Program   *program.Program `json:"program"`
	Coercions []Coercion       `json:"coercions,omitempty"`
}

type ValidationResponse struct {
	Errors []string `json:"errors"`
}

const defaultDraftTTL = 12 * time.Hour

// draft is locked for the whole of a request on it, a submit included.
type draft struct {
	mu       sync.Mutex
	builder  *Builder
	lastUsed time.Time
	// submitted is set once the program is created, under mu.
	submitted bool
}

// Handler keeps builder drafts in memory until they are submitted or left
// unused for longer than the draft TTL.
type Handler struct {
	api            builderApi
	metricsManager *metrics.Manager
	draftTTL       time.Duration
	now            func() time.Time

	// mu guards the drafts map only, never a remote call
	mu     sync.Mutex
	drafts map[string]*draft
}

func NewHandler(api builderApi, metricsManager *metrics.Manager, draftTTL time.Duration, now func() time.Time) *Handler {
	if draftTTL <= 0 {
		draftTTL = defaultDraftTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Handler{
		api:            api,
		metricsManager: metricsManager,
		draftTTL:       draftTTL,
		now:            now,
		drafts:         make(map[string]*draft),
	}
}

func (handler *Handler) HandleNewDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.builder.new")
	defer span.End()

	var params DraftParams
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, "error, invalid draft params", http.StatusBadRequest)
			return
		}
	}

	var cat *catalog.Catalog
	exercises, err := handler.api.ListExercises(ctx)
	if err != nil {
		// categories will have to be set explicitly
		log.Errorf("builder, list exercises: %s", err)
	} else {
		cat = catalog.New(exercises)
	}

	b := New(cat)
	applyParams(b, params)

	id := uuid.NewString()
	handler.mu.Lock()
	handler.sweepExpired()
	handler.drafts[id] = &draft{
		builder:  b,
		lastUsed: handler.now(),
	}
	handler.mu.Unlock()

	log.Debugf("new program draft [%s] created", id)
	pkg.WriteJSON(w, draftResponse(id, b), http.StatusCreated)
}

func (handler *Handler) HandleGetDraft(w http.ResponseWriter, r *http.Request) {
	handler.withDraft(w, r, func(id string, b *Builder) {
		pkg.WriteJSON(w, draftResponse(id, b), http.StatusOK)
	})
}

func (handler *Handler) HandleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	var params DraftParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "error, invalid draft params", http.StatusBadRequest)
		return
	}

	handler.withDraft(w, r, func(id string, b *Builder) {
		applyParams(b, params)
		pkg.WriteJSON(w, draftResponse(id, b), http.StatusOK)
	})
}

func (handler *Handler) HandleAddWeek(w http.ResponseWriter, r *http.Request) {
	handler.withDraft(w, r, func(_ string, b *Builder) {
		pkg.WriteJSON(w, b.AddWeek(), http.StatusCreated)
	})
}

func (handler *Handler) HandleAddDay(w http.ResponseWriter, r *http.Request) {
	weekIndex, err := indexVar(r, "week")
	if err != nil {
		http.Error(w, "error, invalid week index", http.StatusBadRequest)
		return
	}

	handler.withDraft(w, r, func(_ string, b *Builder) {
		day, err := b.AddDay(weekIndex)
		if err != nil {
			writeBuilderError(w, err)
			return
		}
		pkg.WriteJSON(w, day, http.StatusCreated)
	})
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	weekIndex, err := indexVar(r, "week")
	if err != nil {
		http.Error(w, "error, invalid week index", http.StatusBadRequest)
		return
	}
	dayIndex, err := indexVar(r, "day")
	if err != nil {
		http.Error(w, "error, invalid day index", http.StatusBadRequest)
		return
	}

	var input ExerciseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Tracef("add exercise, unmarshal json params: %s", err)
		http.Error(w, "error, invalid exercise", http.StatusBadRequest)
		return
	}
	if input.Category != "" {
		category, err := catalog.ParseCategory(string(input.Category))
		if err != nil {
			http.Error(w, "error, unknown category", http.StatusBadRequest)
			return
		}
		input.Category = category
	}

	handler.withDraft(w, r, func(_ string, b *Builder) {
		exercise, err := b.AddExerciseToDay(weekIndex, dayIndex, input)
		if err != nil {
			writeBuilderError(w, err)
			return
		}
		pkg.WriteJSON(w, exercise, http.StatusCreated)
	})
}

func (handler *Handler) HandleRemoveWeek(w http.ResponseWriter, r *http.Request) {
	weekIndex, err := indexVar(r, "week")
	if err != nil {
		http.Error(w, "error, invalid week index", http.StatusBadRequest)
		return
	}

	handler.withDraft(w, r, func(id string, b *Builder) {
		if err := b.RemoveWeek(weekIndex, confirmed(r)); err != nil {
			writeBuilderError(w, err)
			return
		}
		pkg.WriteJSON(w, draftResponse(id, b), http.StatusOK)
	})
}

func (handler *Handler) HandleRemoveDay(w http.ResponseWriter, r *http.Request) {
	weekIndex, err := indexVar(r, "week")
	if err != nil {
		http.Error(w, "error, invalid week index", http.StatusBadRequest)
		return
	}
	dayIndex, err := indexVar(r, "day")
	if err != nil {
		http.Error(w, "error, invalid day index", http.StatusBadRequest)
		return
	}

	handler.withDraft(w, r, func(id string, b *Builder) {
		if err := b.RemoveDay(weekIndex, dayIndex, confirmed(r)); err != nil {
			writeBuilderError(w, err)
			return
		}
		pkg.WriteJSON(w, draftResponse(id, b), http.StatusOK)
	})
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	var indexes [3]int
	for i, name := range []string{"week", "day", "exercise"} {
		idx, err := indexVar(r, name)
		if err != nil {
			http.Error(w, "error, invalid "+name+" index", http.StatusBadRequest)
			return
		}
		indexes[i] = idx
	}

	handler.withDraft(w, r, func(id string, b *Builder) {
		if err := b.RemoveExercise(indexes[0], indexes[1], indexes[2]); err != nil {
			writeBuilderError(w, err)
			return
		}
		pkg.WriteJSON(w, draftResponse(id, b), http.StatusOK)
	})
}

// HandleSubmit validates the draft and creates the program on the coaching
// service. The draft is dropped once the program is created.
func (handler *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.builder.submit")
	defer span.End()

	handler.withDraft(w, r, func(id string, b *Builder) {
		p, coercions, err := b.Build()
		if err != nil {
			var validationErrs ValidationErrors
			if errors.As(err, &validationErrs) {
				pkg.WriteJSON(w, ValidationResponse{Errors: validationErrs}, http.StatusUnprocessableEntity)
				return
			}
			log.Errorf("build program draft [%s]: %s", id, err)
			http.Error(w, "error, failed to build program", http.StatusInternalServerError)
			return
		}
		for _, c := range coercions {
			log.Warnf("draft [%s], week %d day %d exercise [%s]: non numeric reps coerced to 0 at %v",
				id, c.WeekNumber, c.DayNumber, c.ExerciseID, c.Positions)
		}

		created, err := handler.api.CreateProgram(ctx, p)
		if err != nil {
			log.Errorf("create program from draft [%s]: %s", id, err)
			http.Error(w, "error, failed to create program", http.StatusBadGateway)
			return
		}

		handler.forget(id)
		if handler.metricsManager != nil {
			handler.metricsManager.CounterProgramsCreated.Inc()
		}

		log.Printf("program [%s] created for client [%s]", created.ID, created.ClientID)
		pkg.WriteJSON(w, SubmitResponse{Program: created, Coercions: coercions}, http.StatusCreated)
	})
}

// withDraft runs f with the draft locked. Other drafts stay available while
// f waits on the coaching service.
func (handler *Handler) withDraft(w http.ResponseWriter, r *http.Request, f func(id string, b *Builder)) {
	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, draft id empty", http.StatusBadRequest)
		return
	}

	handler.mu.Lock()
	handler.sweepExpired()
	d, ok := handler.drafts[id]
	if ok {
		d.lastUsed = handler.now()
	}
	handler.mu.Unlock()

	if !ok {
		http.Error(w, "error, draft not found", http.StatusNotFound)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// submitted by a request that held the lock before us
	if d.submitted {
		http.Error(w, "error, draft not found", http.StatusNotFound)
		return
	}
	f(id, d.builder)
}

// forget must be called with the draft locked.
func (handler *Handler) forget(id string) {
	handler.mu.Lock()
	defer handler.mu.Unlock()
	if d, ok := handler.drafts[id]; ok {
		d.submitted = true
		delete(handler.drafts, id)
	}
}

// sweepExpired drops drafts unused for longer than the draft TTL. It must be
// called with handler.mu held.
func (handler *Handler) sweepExpired() {
	now := handler.now()
	for id, d := range handler.drafts {
		if now.Sub(d.lastUsed) > handler.draftTTL {
			delete(handler.drafts, id)
			log.Debugf("program draft [%s] expired", id)
		}
	}
}

func applyParams(b *Builder, params DraftParams) {
	if params.Title != nil {
		b.SetTitle(*params.Title)
	}
	if params.ClientID != nil {
		b.SetClient(*params.ClientID)
	}
	if params.TrainerID != nil {
		b.SetTrainer(*params.TrainerID)
	}
}

func draftResponse(id string, b *Builder) DraftResponse {
	return DraftResponse{
		ID:        id,
		Title:     b.Title,
		ClientID:  b.ClientID,
		TrainerID: b.TrainerID,
		Weeks:     b.Weeks(),
	}
}

func indexVar(r *http.Request, name string) (int, error) {
	idx, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		return 0, ErrIndexOutOfRange
	}
	return idx, nil
}

func confirmed(r *http.Request) bool {
	c, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return c
}

func writeBuilderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrIndexOutOfRange):
		http.Error(w, "error, index out of range", http.StatusNotFound)
	case errors.Is(err, ErrNotConfirmed):
		http.Error(w, "error, removal needs confirm=true", http.StatusConflict)
	default:
		log.Errorf("builder: %s", err)
		http.Error(w, "error, builder failure", http.StatusInternalServerError)
	}
}
