package catalog

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/coachboard/internal/telemetry/tracing"
	"github.com/2beens/coachboard/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog_test

type catalogApi interface {
	ListExercises(ctx context.Context) ([]Exercise, error)
}

type Handler struct {
	api catalogApi
}

func NewHandler(api catalogApi) *Handler {
	return &Handler{
		api: api,
	}
}

// HandleList returns all exercises sorted by name. With the name query param
// set, only the matching exercise is returned.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	exercises, err := handler.api.ListExercises(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "error, failed to get exercises", http.StatusBadGateway)
		return
	}
	cat := New(exercises)

	if name := r.URL.Query().Get("name"); name != "" {
		ex, err := cat.ByName(name)
		if err != nil {
			http.Error(w, "error, exercise not found", http.StatusNotFound)
			return
		}
		pkg.WriteJSON(w, []Exercise{ex}, http.StatusOK)
		return
	}

	pkg.WriteJSON(w, cat.All(), http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	exercises, err := handler.api.ListExercises(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "error, failed to get exercises", http.StatusBadGateway)
		return
	}

	ex, err := New(exercises).ByID(id)
	if err != nil {
		http.Error(w, "error, exercise not found", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, ex, http.StatusOK)
}
