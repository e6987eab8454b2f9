package builder_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/2beens/coachboard/internal/coaching/builder"
	"github.com/2beens/coachboard/internal/coaching/catalog"
	"github.com/2beens/coachboard/internal/coaching/program"
	"github.com/2beens/coachboard/internal/telemetry/metrics"
)

func newTestRouter(h *builder.Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/builder", h.HandleNewDraft).Methods("POST")
	r.HandleFunc("/builder/{id}", h.HandleGetDraft).Methods("GET")
	r.HandleFunc("/builder/{id}", h.HandleUpdateDraft).Methods("PATCH")
	r.HandleFunc("/builder/{id}/weeks", h.HandleAddWeek).Methods("POST")
	r.HandleFunc("/builder/{id}/weeks/{week}", h.HandleRemoveWeek).Methods("DELETE")
	r.HandleFunc("/builder/{id}/weeks/{week}/days", h.HandleAddDay).Methods("POST")
	r.HandleFunc("/builder/{id}/weeks/{week}/days/{day}", h.HandleRemoveDay).Methods("DELETE")
	r.HandleFunc("/builder/{id}/weeks/{week}/days/{day}/exercises", h.HandleAddExercise).Methods("POST")
	r.HandleFunc("/builder/{id}/weeks/{week}/days/{day}/exercises/{exercise}", h.HandleRemoveExercise).Methods("DELETE")
	r.HandleFunc("/builder/{id}/submit", h.HandleSubmit).Methods("POST")
	return r
}

func doRequest(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}
	req := httptest.NewRequest(method, target, &reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func strPtr(s string) *string {
	return &s
}

func TestHandler_DraftLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiMock := NewMockbuilderApi(ctrl)
	metricsManager := metrics.NewTestManager()
	r := newTestRouter(builder.NewHandler(apiMock, metricsManager, time.Hour, nil))

	apiMock.EXPECT().ListExercises(gomock.Any()).Return([]catalog.Exercise{
		{ID: "ex-squat", Name: "Squat", Category: catalog.CategoryStrength},
	}, nil).Times(1)

	rec := doRequest(t, r, "POST", "/builder", builder.DraftParams{Title: strPtr("Base Block")})
	require.Equal(t, http.StatusCreated, rec.Code)
	var draft builder.DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	require.NotEmpty(t, draft.ID)
	assert.Equal(t, "Base Block", draft.Title)

	base := "/builder/" + draft.ID

	// submitting an incomplete draft lists every problem
	rec = doRequest(t, r, "POST", base+"/submit", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var validation builder.ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &validation))
	assert.Len(t, validation.Errors, 3)

	rec = doRequest(t, r, "PATCH", base, builder.DraftParams{ClientID: strPtr("client-1"), TrainerID: strPtr("trainer-1")})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, http.StatusCreated, doRequest(t, r, "POST", base+"/weeks", nil).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, r, "POST", base+"/weeks", nil).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, r, "POST", base+"/weeks/0/days", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, r, "POST", base+"/weeks/7/days", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(t, r, "POST", base+"/weeks/x/days", nil).Code)

	rec = doRequest(t, r, "POST", base+"/weeks/0/days/0/exercises", builder.ExerciseInput{Name: "squat", Sets: 2, Reps: "5,x"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var ex builder.ExerciseDraft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ex))
	assert.Equal(t, catalog.CategoryStrength, ex.Category)
	assert.Equal(t, "ex-squat", ex.ExerciseID)

	assert.Equal(t, http.StatusBadRequest,
		doRequest(t, r, "POST", base+"/weeks/0/days/0/exercises", builder.ExerciseInput{Name: "Flow", Category: "yoga"}).Code)

	// removal without confirmation is refused
	assert.Equal(t, http.StatusConflict, doRequest(t, r, "DELETE", base+"/weeks/1", nil).Code)
	rec = doRequest(t, r, "DELETE", base+"/weeks/1?confirm=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	require.Len(t, draft.Weeks, 1)
	assert.Equal(t, 1, draft.Weeks[0].Number)

	apiMock.EXPECT().CreateProgram(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *program.Program) (*program.Program, error) {
			assert.Equal(t, "Base Block", p.Title)
			assert.Equal(t, program.StatusActive, p.Status)
			require.Len(t, p.Weeks, 1)
			return p, nil
		}).Times(1)

	rec = doRequest(t, r, "POST", base+"/submit", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var submitted builder.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitted))
	assert.Equal(t, "client-1", submitted.Program.ClientID)
	require.Len(t, submitted.Coercions, 1)
	assert.Equal(t, []int{1}, submitted.Coercions[0].Positions)
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterProgramsCreated))

	// submitted drafts are gone
	assert.Equal(t, http.StatusNotFound, doRequest(t, r, "GET", base, nil).Code)
}

func TestHandler_Submit_RemoteFailureKeepsDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiMock := NewMockbuilderApi(ctrl)
	r := newTestRouter(builder.NewHandler(apiMock, nil, time.Hour, nil))

	apiMock.EXPECT().ListExercises(gomock.Any()).Return(nil, errors.New("catalog down"))
	rec := doRequest(t, r, "POST", "/builder", builder.DraftParams{
		Title:     strPtr("Cardio Month"),
		ClientID:  strPtr("client-1"),
		TrainerID: strPtr("trainer-1"),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var draft builder.DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	base := "/builder/" + draft.ID

	require.Equal(t, http.StatusCreated, doRequest(t, r, "POST", base+"/weeks", nil).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, r, "POST", base+"/weeks/0/days", nil).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, r, "POST", base+"/weeks/0/days/0/exercises", builder.ExerciseInput{
		Name:             "Run",
		Category:         "Cardio",
		DistanceInMeters: 5000,
		TargetCalories:   400,
	}).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, r, "POST", base+"/weeks/0/days/0/exercises", builder.ExerciseInput{
		Name:             "Row",
		Category:         "cardio",
		DistanceInMeters: 2000,
		TargetCalories:   150,
	}).Code)
	require.Equal(t, http.StatusOK, doRequest(t, r, "DELETE", base+"/weeks/0/days/0/exercises/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, r, "DELETE", base+"/weeks/0/days/0/exercises/4", nil).Code)

	apiMock.EXPECT().CreateProgram(gomock.Any(), gomock.Any()).Return(nil, errors.New("status 500"))
	assert.Equal(t, http.StatusBadGateway, doRequest(t, r, "POST", base+"/submit", nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(t, r, "GET", base, nil).Code)

	assert.Equal(t, http.StatusOK, doRequest(t, r, "DELETE", base+"/weeks/0/days/0?confirm=true", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, r, "GET", "/builder/unknown", nil).Code)
}

func newDraft(t *testing.T, r http.Handler, params builder.DraftParams) string {
	t.Helper()
	rec := doRequest(t, r, "POST", "/builder", params)
	require.Equal(t, http.StatusCreated, rec.Code)
	var draft builder.DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	return draft.ID
}

func TestHandler_Submit_DoesNotBlockOtherDrafts(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiMock := NewMockbuilderApi(ctrl)
	r := newTestRouter(builder.NewHandler(apiMock, nil, time.Hour, nil))

	apiMock.EXPECT().ListExercises(gomock.Any()).Return([]catalog.Exercise{
		{ID: "ex-squat", Name: "Squat", Category: catalog.CategoryStrength},
	}, nil).Times(2)

	submittedID := newDraft(t, r, builder.DraftParams{
		Title:     strPtr("Strength Block"),
		ClientID:  strPtr("client-1"),
		TrainerID: strPtr("trainer-1"),
	})
	otherID := newDraft(t, r, builder.DraftParams{Title: strPtr("Other Block")})

	base := "/builder/" + submittedID
	require.Equal(t, http.StatusCreated, doRequest(t, r, "POST", base+"/weeks", nil).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, r, "POST", base+"/weeks/0/days", nil).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, r, "POST", base+"/weeks/0/days/0/exercises",
		builder.ExerciseInput{Name: "Squat", Sets: 3, Reps: "5"}).Code)

	createStarted := make(chan struct{})
	releaseCreate := make(chan struct{})
	apiMock.EXPECT().CreateProgram(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *program.Program) (*program.Program, error) {
			close(createStarted)
			<-releaseCreate
			return p, nil
		}).Times(1)

	submitDone := make(chan int)
	go func() {
		submitDone <- doRequest(t, r, "POST", base+"/submit", nil).Code
	}()
	<-createStarted

	otherDone := make(chan int)
	go func() {
		otherDone <- doRequest(t, r, "GET", "/builder/"+otherID, nil).Code
	}()

	select {
	case code := <-otherDone:
		assert.Equal(t, http.StatusOK, code)
	case <-time.After(2 * time.Second):
		t.Error("other draft blocked while a program is being created")
	}

	close(releaseCreate)
	assert.Equal(t, http.StatusCreated, <-submitDone)
	assert.Equal(t, http.StatusNotFound, doRequest(t, r, "GET", base, nil).Code)
}

func TestHandler_UnusedDraftsExpire(t *testing.T) {
	ctrl := gomock.NewController(t)
	apiMock := NewMockbuilderApi(ctrl)

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	r := newTestRouter(builder.NewHandler(apiMock, nil, time.Hour, clock))

	apiMock.EXPECT().ListExercises(gomock.Any()).Return(nil, nil).Times(2)

	idleID := newDraft(t, r, builder.DraftParams{Title: strPtr("Idle")})
	activeID := newDraft(t, r, builder.DraftParams{Title: strPtr("Active")})

	now = now.Add(40 * time.Minute)
	require.Equal(t, http.StatusOK, doRequest(t, r, "GET", "/builder/"+activeID, nil).Code)

	// idle for 70 minutes, active used 30 minutes ago
	now = now.Add(30 * time.Minute)
	assert.Equal(t, http.StatusNotFound, doRequest(t, r, "GET", "/builder/"+idleID, nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(t, r, "GET", "/builder/"+activeID, nil).Code)
}
