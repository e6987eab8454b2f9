package reconcile

import (
	"time"

	"github.com/2beens/coachboard/internal/coaching/program"
	"github.com/2beens/coachboard/internal/coaching/workoutlog"
)

// CandidateLogs builds one log per program exercise, flattening weeks, days
// and exercises in tree order.
func CandidateLogs(p *program.Program, now time.Time) []workoutlog.WorkoutLog {
	located := p.Exercises()
	logs := make([]workoutlog.WorkoutLog, 0, len(located))
	for _, l := range located {
		logs = append(logs, candidateLog(p, l.Exercise, now))
	}
	return logs
}

func candidateLog(p *program.Program, ex *program.ProgramExercise, now time.Time) workoutlog.WorkoutLog {
	l := workoutlog.WorkoutLog{
		WorkoutID:     ex.WorkoutID,
		ExerciseID:    ex.ExerciseID,
		ClientID:      p.ClientID,
		ProgramID:     p.ID,
		SetsCompleted: ex.CompletedSets(),
		Completed:     ex.Complete(),
		LogDate:       now,
	}

	switch perf := ex.Performance.(type) {
	case *program.Strength:
		l.WeightUsed = padded(perf.Weight, ex.Sets)
		l.ActualReps = padded(perf.ActualReps, ex.Sets)
		l.RepsCompleted = make([]int, ex.Sets)
		for i := range l.RepsCompleted {
			if r := at(perf.ActualReps, i); r.Valid {
				l.RepsCompleted[i] = int(r.Float64)
			}
		}
	case *program.Cardio:
		l.DistanceInMeters = perf.DistanceInMeters
		l.TimeInSeconds = perf.TimeInSeconds
		if recorded := sumRecorded(perf.Duration, ex.Sets); recorded > 0 {
			l.TimeInSeconds = recorded
		}
		l.WeightUsed = []program.NullFloat{}
		l.ActualReps = []program.NullFloat{}
		l.RepsCompleted = []int{}
	}

	return l
}

// ProgramCompleted is the whole program AND over the candidate logs.
// A program without any exercise is never completed.
func ProgramCompleted(logs []workoutlog.WorkoutLog) bool {
	if len(logs) == 0 {
		return false
	}
	for _, l := range logs {
		if !l.Completed {
			return false
		}
	}
	return true
}

func padded(values []program.NullFloat, sets int) []program.NullFloat {
	out := make([]program.NullFloat, sets)
	copy(out, values)
	return out
}

func sumRecorded(values []program.NullFloat, limit int) float64 {
	var sum float64
	for i := 0; i < len(values) && i < limit; i++ {
		if values[i].Valid {
			sum += values[i].Float64
		}
	}
	return sum
}
