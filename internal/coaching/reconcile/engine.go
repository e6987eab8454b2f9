package reconcile

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"

	"github.com/2beens/coachboard/internal/coaching/program"
	"github.com/2beens/coachboard/internal/coaching/workoutlog"
	"github.com/2beens/coachboard/internal/telemetry/metrics"
	"github.com/2beens/coachboard/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=reconcile_test

type remoteApi interface {
	ListWorkoutLogs(ctx context.Context, workoutID string) ([]workoutlog.WorkoutLog, error)
	AddWorkoutLog(ctx context.Context, l workoutlog.WorkoutLog) (*workoutlog.WorkoutLog, error)
	UpdateProgramStatus(ctx context.Context, programID string, status program.Status, completedDate time.Time) error
}

type Engine struct {
	api            remoteApi
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewEngine(api remoteApi, metricsManager *metrics.Manager, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		api:            api,
		metricsManager: metricsManager,
		now:            now,
	}
}

// Prefill fetches the logs of every workout of the program concurrently and
// merges them. Any failed fetch fails the whole prefill, there is no
// partial history.
func (e *Engine) Prefill(ctx context.Context, p *program.Program) (_ History, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconcile.prefill")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutIDs := p.WorkoutIDs()
	span.SetAttributes(attribute.Int("workouts", len(workoutIDs)))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allLogs []workoutlog.WorkoutLog
		errs    error
	)
	for _, workoutID := range workoutIDs {
		wg.Add(1)
		go func(workoutID string) {
			defer wg.Done()
			logs, err := e.api.ListWorkoutLogs(ctx, workoutID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("list logs of workout [%s]: %w", workoutID, err))
				return
			}
			allLogs = append(allLogs, logs...)
		}(workoutID)
	}
	wg.Wait()

	if errs != nil {
		return nil, errs
	}

	return MergeLatest(allLogs), nil
}

type SaveResult struct {
	// Program reflects the status transition, if one happened.
	Program       *program.Program
	Candidates    []workoutlog.WorkoutLog
	SubmittedLogs []workoutlog.WorkoutLog
	AllComplete   bool
	StatusUpdated bool
	History       History

	StatusErr  error
	LogsErr    error
	HistoryErr error
}

// Err combines the errors of all save steps.
func (r *SaveResult) Err() error {
	return multierr.Combine(r.StatusErr, r.LogsErr, r.HistoryErr)
}

// Save computes the candidate logs, requests the status transition when all
// of them are complete, submits every log and finally refreshes the history.
// The status update and the log submission are independent: a failure in
// one of them neither blocks nor rolls back the other. Nothing is retried.
func (e *Engine) Save(ctx context.Context, p *program.Program) (_ *SaveResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconcile.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if p.IsCompleted() {
		return nil, program.ErrProgramCompleted
	}

	start := e.now()
	defer func() {
		if e.metricsManager != nil {
			e.metricsManager.HistogramSaveDuration.Observe(e.now().Sub(start).Seconds())
		}
	}()

	result := &SaveResult{
		Program:    p,
		Candidates: CandidateLogs(p, start),
	}
	result.AllComplete = ProgramCompleted(result.Candidates)

	span.SetAttributes(
		attribute.String("program.id", p.ID),
		attribute.Int("logs", len(result.Candidates)),
		attribute.Bool("all_complete", result.AllComplete),
	)

	var wg sync.WaitGroup
	if result.AllComplete {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := e.api.UpdateProgramStatus(ctx, p.ID, program.StatusCompleted, start); err != nil {
				result.StatusErr = fmt.Errorf("update program status: %w", err)
				return
			}
			result.StatusUpdated = true
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		result.SubmittedLogs, result.LogsErr = e.submitLogs(ctx, result.Candidates)
	}()

	wg.Wait()

	if result.StatusUpdated {
		result.Program = p.MarkCompleted(start)
		e.countProgramCompleted()
	}
	if result.StatusErr != nil {
		log.Errorf("save program [%s]: %s", p.ID, result.StatusErr)
		e.countSaveFailure("status")
	}
	if result.LogsErr != nil {
		log.Errorf("save program [%s]: %s", p.ID, result.LogsErr)
		e.countSaveFailure("logs")
	}

	result.History, result.HistoryErr = e.Prefill(ctx, result.Program)
	if result.HistoryErr != nil {
		log.Errorf("save program [%s], refresh history: %s", p.ID, result.HistoryErr)
		e.countSaveFailure("history")
	}

	return result, result.Err()
}

// submitLogs posts every log concurrently. Successfully submitted logs are
// returned in candidate order even when others failed.
func (e *Engine) submitLogs(ctx context.Context, logs []workoutlog.WorkoutLog) ([]workoutlog.WorkoutLog, error) {
	submitted := make([]*workoutlog.WorkoutLog, len(logs))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	for i := range logs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			added, err := e.api.AddWorkoutLog(ctx, logs[i])
			if err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("add log [%s]: %w", logs[i].Key(), err))
				mu.Unlock()
				return
			}
			if added == nil {
				l := logs[i]
				added = &l
			}
			submitted[i] = added
			e.countLogSubmitted(logs[i].Completed)
		}(i)
	}
	wg.Wait()

	var out []workoutlog.WorkoutLog
	for _, l := range submitted {
		if l != nil {
			out = append(out, *l)
		}
	}
	return out, errs
}

func (e *Engine) countProgramCompleted() {
	if e.metricsManager != nil {
		e.metricsManager.CounterProgramsCompleted.Inc()
	}
}

func (e *Engine) countSaveFailure(step string) {
	if e.metricsManager != nil {
		e.metricsManager.CounterSaveFailures.WithLabelValues(step).Inc()
	}
}

func (e *Engine) countLogSubmitted(completed bool) {
	if e.metricsManager != nil {
		e.metricsManager.CounterLogsSubmitted.WithLabelValues(strconv.FormatBool(completed)).Inc()
	}
}
