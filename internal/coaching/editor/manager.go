package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/coachboard/internal/coaching/catalog"
	"github.com/2beens/coachboard/internal/coaching/program"
	"github.com/2beens/coachboard/internal/coaching/reconcile"
	"github.com/2beens/coachboard/internal/coaching/workoutlog"
	"github.com/2beens/coachboard/internal/telemetry/metrics"
	"github.com/2beens/coachboard/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=manager_mocks_test.go -package=editor_test

var ErrSessionNotFound = errors.New("editor session not found")

type coachingApi interface {
	GetProgram(ctx context.Context, programID string) (*program.Program, error)
	UpdateProgram(ctx context.Context, p *program.Program) error
	DeleteProgramExercise(ctx context.Context, programExerciseID string) error
	ListWorkoutLogs(ctx context.Context, workoutID string) ([]workoutlog.WorkoutLog, error)
	AddWorkoutLog(ctx context.Context, l workoutlog.WorkoutLog) (*workoutlog.WorkoutLog, error)
	UpdateProgramStatus(ctx context.Context, programID string, status program.Status, completedDate time.Time) error
}

type draftStore interface {
	Load(ctx context.Context, programID string) (*program.Program, error)
	Store(ctx context.Context, p *program.Program) error
	Delete(ctx context.Context, programID string) error
}

// Session is the single writer of one program's edit buffer.
type Session struct {
	mu      sync.Mutex
	program *program.Program
	history reconcile.History
}

type ExerciseView struct {
	ID           string                  `json:"id"`
	ExerciseID   string                  `json:"exerciseId"`
	Name         string                  `json:"name"`
	Category     catalog.Category        `json:"category"`
	Path         program.Path            `json:"path"`
	Sets         int                     `json:"sets"`
	SetCompleted []bool                  `json:"setCompleted"`
	Placeholders []reconcile.Placeholder `json:"placeholders"`
	Completed    bool                    `json:"completed"`
}

type View struct {
	Program   *program.Program `json:"program"`
	ReadOnly  bool             `json:"readOnly"`
	Exercises []ExerciseView   `json:"exercises"`
}

type SetEdit struct {
	ExerciseID   string `json:"exerciseId"`
	SetIndex     int    `json:"set"`
	SetComplete  bool   `json:"setComplete"`
	SetCompleted []bool `json:"setCompleted"`
}

type Manager struct {
	api            coachingApi
	drafts         draftStore
	engine         *reconcile.Engine
	metricsManager *metrics.Manager

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(api coachingApi, drafts draftStore, metricsManager *metrics.Manager, now func() time.Time) *Manager {
	return &Manager{
		api:            api,
		drafts:         drafts,
		engine:         reconcile.NewEngine(api, metricsManager, now),
		metricsManager: metricsManager,
		sessions:       make(map[string]*Session),
	}
}

// Open starts an editor session, or returns the view of an already open one.
// An unsaved draft takes precedence over the program stored remotely. The
// session is only registered once the history prefill succeeded.
func (m *Manager) Open(ctx context.Context, programID string) (_ *View, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "editor.open")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", programID))

	if session, ok := m.session(programID); ok {
		session.mu.Lock()
		defer session.mu.Unlock()
		return session.view(), nil
	}

	p, err := m.drafts.Load(ctx, programID)
	if err != nil {
		log.Errorf("load draft of program [%s]: %s", programID, err)
	}
	if p == nil {
		p, err = m.api.GetProgram(ctx, programID)
		if err != nil {
			return nil, fmt.Errorf("get program: %w", err)
		}
	} else {
		log.Debugf("program [%s] opened from draft", programID)
	}

	history, err := m.engine.Prefill(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("prefill history: %w", err)
	}

	session := &Session{
		program: p,
		history: history,
	}

	m.mu.Lock()
	if existing, ok := m.sessions[programID]; ok {
		// opened concurrently, keep the first one
		session = existing
	} else {
		m.sessions[programID] = session
	}
	sessionsCount := len(m.sessions)
	m.mu.Unlock()

	if m.metricsManager != nil {
		m.metricsManager.GaugeEditorSessions.Set(float64(sessionsCount))
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.view(), nil
}

func (m *Manager) View(programID string) (*View, error) {
	session, ok := m.session(programID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.view(), nil
}

// SetValue records one actual value and returns the recomputed set completion.
func (m *Manager) SetValue(ctx context.Context, programID, exerciseID string, setIndex int, field program.Field, value float64) (*SetEdit, error) {
	return m.edit(ctx, programID, exerciseID, setIndex, field, func(p *program.Program, path program.Path) (*program.Program, bool, error) {
		return p.SetActualValue(path, setIndex, field, value)
	})
}

// Clear empties one actual value.
func (m *Manager) Clear(ctx context.Context, programID, exerciseID string, setIndex int, field program.Field) (*SetEdit, error) {
	return m.edit(ctx, programID, exerciseID, setIndex, field, func(p *program.Program, path program.Path) (*program.Program, bool, error) {
		return p.ClearActualValue(path, setIndex, field)
	})
}

type editFunc func(p *program.Program, path program.Path) (*program.Program, bool, error)

func (m *Manager) edit(ctx context.Context, programID, exerciseID string, setIndex int, field program.Field, f editFunc) (*SetEdit, error) {
	session, ok := m.session(programID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	path, err := session.program.FindExercise(exerciseID)
	if err != nil {
		return nil, err
	}

	updated, setComplete, err := f(session.program, path)
	if err != nil {
		return nil, err
	}
	session.program = updated

	if m.metricsManager != nil {
		m.metricsManager.CounterSetEdits.WithLabelValues(string(field)).Inc()
	}
	m.storeDraft(ctx, updated)

	completion, err := updated.SetCompletion(path)
	if err != nil {
		return nil, err
	}
	return &SetEdit{
		ExerciseID:   exerciseID,
		SetIndex:     setIndex,
		SetComplete:  setComplete,
		SetCompleted: completion,
	}, nil
}

// RemoveExercise deletes the exercise on the coaching service first and drops
// it, with all entered values, from the buffer afterwards.
func (m *Manager) RemoveExercise(ctx context.Context, programID, exerciseID string) (*View, error) {
	session, ok := m.session(programID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	path, err := session.program.FindExercise(exerciseID)
	if err != nil {
		return nil, err
	}

	if err := m.api.DeleteProgramExercise(ctx, exerciseID); err != nil {
		return nil, fmt.Errorf("delete program exercise: %w", err)
	}

	updated, err := session.program.RemoveExercise(path)
	if err != nil {
		return nil, err
	}
	session.program = updated
	m.storeDraft(ctx, updated)

	return session.view(), nil
}

// UpdateTargets changes the prescribed targets of an exercise nobody
// recorded values for yet. The coaching service is updated before the buffer.
func (m *Manager) UpdateTargets(ctx context.Context, programID, exerciseID string, targets program.Targets) (*View, error) {
	session, ok := m.session(programID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	path, err := session.program.FindExercise(exerciseID)
	if err != nil {
		return nil, err
	}

	updated, err := session.program.UpdateTargets(path, targets)
	if err != nil {
		return nil, err
	}
	if err := m.api.UpdateProgram(ctx, updated); err != nil {
		return nil, fmt.Errorf("update program: %w", err)
	}
	session.program = updated
	m.storeDraft(ctx, updated)

	return session.view(), nil
}

// Save runs the save protocol for the session's buffer. The result is
// returned even when some of the steps failed.
func (m *Manager) Save(ctx context.Context, programID string) (*reconcile.SaveResult, error) {
	session, ok := m.session(programID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	result, err := m.engine.Save(ctx, session.program)
	if result == nil {
		return nil, err
	}

	session.program = result.Program
	if result.HistoryErr == nil {
		session.history = result.History
	}

	if result.Program.IsCompleted() {
		if delErr := m.drafts.Delete(ctx, programID); delErr != nil {
			log.Errorf("delete draft of completed program [%s]: %s", programID, delErr)
		}
	} else {
		m.storeDraft(ctx, result.Program)
	}

	return result, err
}

// Close forgets the session. The draft stays in redis until it expires.
func (m *Manager) Close(programID string) {
	m.mu.Lock()
	delete(m.sessions, programID)
	sessionsCount := len(m.sessions)
	m.mu.Unlock()

	if m.metricsManager != nil {
		m.metricsManager.GaugeEditorSessions.Set(float64(sessionsCount))
	}
}

func (m *Manager) session(programID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[programID]
	return session, ok
}

func (m *Manager) storeDraft(ctx context.Context, p *program.Program) {
	if err := m.drafts.Store(ctx, p); err != nil {
		log.Errorf("store draft of program [%s]: %s", p.ID, err)
	}
}

// view must be called with the session locked.
func (s *Session) view() *View {
	v := &View{
		Program:  s.program,
		ReadOnly: s.program.IsCompleted(),
	}
	for _, l := range s.program.Exercises() {
		ex := l.Exercise
		v.Exercises = append(v.Exercises, ExerciseView{
			ID:           ex.ID,
			ExerciseID:   ex.ExerciseID,
			Name:         ex.Exercise.Name,
			Category:     ex.Category(),
			Path:         l.Path,
			Sets:         ex.Sets,
			SetCompleted: ex.SetCompletion(),
			Placeholders: s.history.Placeholders(ex),
			Completed:    ex.Complete(),
		})
	}
	return v
}
