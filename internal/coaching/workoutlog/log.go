package workoutlog

import (
	"fmt"
	"time"

	"github.com/2beens/coachboard/internal/coaching/program"
)

// WorkoutLog is the persisted performance of one exercise instance, as
// submitted on a single save. Logs are append-only.
type WorkoutLog struct {
	ID               string              `json:"id,omitempty"`
	WorkoutID        string              `json:"workoutId"`
	ExerciseID       string              `json:"exerciseId"`
	ClientID         string              `json:"clientId"`
	ProgramID        string              `json:"programId"`
	SetsCompleted    int                 `json:"setsCompleted"`
	RepsCompleted    []int               `json:"repsCompleted"`
	WeightUsed       []program.NullFloat `json:"weightUsed"`
	ActualReps       []program.NullFloat `json:"actualReps"`
	TimeInSeconds    float64             `json:"timeInSeconds"`
	DistanceInMeters float64             `json:"distanceInMeters"`
	Notes            string              `json:"notes"`
	Completed        bool                `json:"completed"`
	LogDate          time.Time           `json:"logDate"`
}

// Key groups logs of the same exercise within the same workout.
type Key struct {
	WorkoutID  string
	ExerciseID string
}

func (k Key) String() string {
	return fmt.Sprintf("%s-%s", k.WorkoutID, k.ExerciseID)
}

func (l WorkoutLog) Key() Key {
	return Key{WorkoutID: l.WorkoutID, ExerciseID: l.ExerciseID}
}

// HasRecordedReps reports whether at least one actual rep value is recorded.
// Logs without any are noise from saves made before the client entered data.
func (l WorkoutLog) HasRecordedReps() bool {
	for _, r := range l.ActualReps {
		if r.Valid {
			return true
		}
	}
	return false
}
