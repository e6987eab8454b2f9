package progress

import (
	"sort"
	"time"

	"github.com/2beens/coachboard/internal/coaching/program"
	"github.com/2beens/coachboard/internal/coaching/workoutlog"
)

// Sample is one logged set, ready for charting.
type Sample struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
}

// Series produces one sample per logged set, pairing weightUsed[i] with
// repsCompleted[i]. Dates are truncated to the calendar day and samples are
// sorted ascending by date, keeping log order for equal days.
func Series(logs []workoutlog.WorkoutLog) []Sample {
	var samples []Sample
	for _, l := range logs {
		day := Day(l.LogDate)
		for i, weight := range l.WeightUsed {
			sample := Sample{
				Date:   day,
				Weight: weight.Float64,
			}
			if i < len(l.RepsCompleted) {
				sample.Reps = l.RepsCompleted[i]
			}
			samples = append(samples, sample)
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Date.Before(samples[j].Date)
	})

	return samples
}

// Day drops the time of day. Logs are bucketed by their UTC calendar day,
// whatever offset they were written with.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type DaySummary struct {
	Date      time.Time `json:"date"`
	MaxWeight float64   `json:"maxWeight"`
	Volume    float64   `json:"volume"`
	Sets      int       `json:"sets"`
	TotalReps int       `json:"totalReps"`
}

// DailySummary folds date sorted samples into one entry per day.
func DailySummary(samples []Sample) []DaySummary {
	var summaries []DaySummary
	for _, s := range samples {
		if len(summaries) == 0 || !summaries[len(summaries)-1].Date.Equal(s.Date) {
			summaries = append(summaries, DaySummary{Date: s.Date})
		}
		current := &summaries[len(summaries)-1]
		current.Sets++
		current.TotalReps += s.Reps
		current.Volume += s.Weight * float64(s.Reps)
		if s.Weight > current.MaxWeight {
			current.MaxWeight = s.Weight
		}
	}
	return summaries
}

// CompletedPrograms counts programs with status completed.
func CompletedPrograms(programs []*program.Program) int {
	count := 0
	for _, p := range programs {
		if p != nil && p.IsCompleted() {
			count++
		}
	}
	return count
}

// SplitActive separates active and in-progress programs from the rest.
func SplitActive(programs []*program.Program) (active, other []*program.Program) {
	for _, p := range programs {
		if p == nil {
			continue
		}
		switch p.Status {
		case program.StatusActive, program.StatusInProgress:
			active = append(active, p)
		default:
			other = append(other, p)
		}
	}
	return active, other
}
