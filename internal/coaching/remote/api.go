package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/coachboard/internal/coaching/catalog"
	"github.com/2beens/coachboard/internal/coaching/program"
	"github.com/2beens/coachboard/internal/coaching/workoutlog"
	"github.com/2beens/coachboard/internal/telemetry/tracing"
)

const (
	oneHour              = 60 * 60
	catalogCacheExpire   = oneHour
	catalogCacheKey      = "exercises::all"
	maxErrorBodyReported = 512
)

var ErrUnauthorized = errors.New("unauthorized")

// StatusError is returned for every non 2xx response of the coaching service.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Api is the client of the remote coaching service.
type Api struct {
	baseURL            string
	token              string
	httpClient         *http.Client
	cache              *freecache.Cache
	catalogCacheExpire int
}

type ApiParams struct {
	BaseURL    string
	Token      string
	HttpClient *http.Client
	// CatalogCacheSeconds of 0 falls back to one hour.
	CatalogCacheSeconds int
}

func NewApi(params ApiParams) *Api {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	httpClient := params.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	expire := params.CatalogCacheSeconds
	if expire <= 0 {
		expire = catalogCacheExpire
	}

	return &Api{
		baseURL:            strings.TrimSuffix(params.BaseURL, "/"),
		token:              params.Token,
		httpClient:         httpClient,
		cache:              freecache.NewCache(cacheSize),
		catalogCacheExpire: expire,
	}
}

func (a *Api) GetProgram(ctx context.Context, programID string) (_ *program.Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.program.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", programID))

	p := &program.Program{}
	if err := a.do(ctx, http.MethodGet, "workouts/program/"+url.PathEscape(programID), nil, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (a *Api) UpdateProgram(ctx context.Context, p *program.Program) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.program.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", p.ID))

	return a.do(ctx, http.MethodPut, "workouts/program/"+url.PathEscape(p.ID), p, nil)
}

func (a *Api) CreateProgram(ctx context.Context, p *program.Program) (_ *program.Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.program.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	created := &program.Program{}
	if err := a.do(ctx, http.MethodPost, "workouts/create", p, created); err != nil {
		return nil, err
	}
	// some deployments answer with an empty body
	if created.ID == "" {
		return p, nil
	}
	return created, nil
}

func (a *Api) DeleteProgramExercise(ctx context.Context, programExerciseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.program.deleteExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return a.do(ctx, http.MethodDelete, "workouts/exercise/"+url.PathEscape(programExerciseID), nil, nil)
}

type programStatusUpdate struct {
	Status        program.Status `json:"status"`
	CompletedDate time.Time      `json:"completedDate"`
}

func (a *Api) UpdateProgramStatus(ctx context.Context, programID string, status program.Status, completedDate time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.program.updateStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("program.id", programID),
		attribute.String("program.status", string(status)),
	)

	body := programStatusUpdate{
		Status:        status,
		CompletedDate: completedDate,
	}
	return a.do(ctx, http.MethodPut, "workouts/program/status/"+url.PathEscape(programID), body, nil)
}

// ListExercises returns the exercise catalog. The catalog is reference data,
// so the raw response is cached.
func (a *Api) ListExercises(ctx context.Context) (_ []catalog.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exercises []catalog.Exercise
	if cached, err := a.cache.Get([]byte(catalogCacheKey)); err == nil {
		if err := json.Unmarshal(cached, &exercises); err == nil {
			log.Tracef("found %d exercises in cache", len(exercises))
			return exercises, nil
		} else {
			log.Errorf("unmarshal cached exercises: %s", err)
		}
	}

	respBytes, err := a.doRaw(ctx, http.MethodGet, "workouts/exercises", nil)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(respBytes, &exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises: %w", err)
	}

	if err := a.cache.Set([]byte(catalogCacheKey), respBytes, a.catalogCacheExpire); err != nil {
		log.Errorf("failed to cache exercises: %s", err)
	}

	return exercises, nil
}

func (a *Api) ListWorkoutLogs(ctx context.Context, workoutID string) (_ []workoutlog.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.logs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID))

	var logs []workoutlog.WorkoutLog
	if err := a.do(ctx, http.MethodGet, "workouts/log/"+url.PathEscape(workoutID), nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (a *Api) AddWorkoutLog(ctx context.Context, l workoutlog.WorkoutLog) (_ *workoutlog.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.logs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.key", l.Key().String()))

	added := l
	if err := a.do(ctx, http.MethodPost, "workouts/log", l, &added); err != nil {
		return nil, err
	}
	return &added, nil
}

func (a *Api) ListClientPrograms(ctx context.Context, clientID string) (_ []*program.Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.client.programs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var programs []*program.Program
	if err := a.do(ctx, http.MethodGet, "client/programs/"+url.PathEscape(clientID), nil, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (a *Api) ClientHistory(ctx context.Context, clientID string) (_ []workoutlog.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.client.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var logs []workoutlog.WorkoutLog
	if err := a.do(ctx, http.MethodGet, "client/history/"+url.PathEscape(clientID), nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// ExerciseProgressEntry is one exercise the client has progress for.
type ExerciseProgressEntry struct {
	Exercise catalog.Exercise `json:"exercise"`
}

// ClientProgress lists the exercises the client has logged.
func (a *Api) ClientProgress(ctx context.Context, clientID string) (_ []catalog.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.client.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var entries []ExerciseProgressEntry
	if err := a.do(ctx, http.MethodGet, "client/"+url.PathEscape(clientID)+"/progress", nil, &entries); err != nil {
		return nil, err
	}

	exercises := make([]catalog.Exercise, 0, len(entries))
	for _, e := range entries {
		exercises = append(exercises, e.Exercise)
	}
	return exercises, nil
}

type exerciseProgressResponse struct {
	Progress []workoutlog.WorkoutLog `json:"progress"`
}

// ExerciseProgress returns the logs of one exercise of one client.
func (a *Api) ExerciseProgress(ctx context.Context, clientID, exerciseID string) (_ []workoutlog.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.client.exerciseProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("client.id", clientID),
		attribute.String("exercise.id", exerciseID),
	)

	path := fmt.Sprintf("client/exerciseProgress/%s/exercise/%s", url.PathEscape(clientID), url.PathEscape(exerciseID))
	resp := &exerciseProgressResponse{}
	if err := a.do(ctx, http.MethodGet, path, nil, resp); err != nil {
		return nil, err
	}
	return resp.Progress, nil
}

func (a *Api) do(ctx context.Context, method, path string, body, out any) error {
	respBytes, err := a.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(respBytes)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal %s %s response: %w", method, path, err)
	}
	return nil
}

func (a *Api) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+"/"+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	log.Tracef("calling coaching api: %s %s", method, path)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody := string(respBytes)
		if len(errBody) > maxErrorBodyReported {
			errBody = errBody[:maxErrorBodyReported]
		}
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(errBody),
		}
	}

	return respBytes, nil
}
