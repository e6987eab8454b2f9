package program

import (
	"github.com/2beens/coachboard/internal/coaching/catalog"
)

// Field names a per-set actual value array.
type Field string

const (
	FieldWeight     Field = "weight"
	FieldActualReps Field = "actualReps"
	FieldCalories   Field = "calories"
	FieldDuration   Field = "duration"
)

func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldWeight, FieldActualReps, FieldCalories, FieldDuration:
		return f, nil
	default:
		return "", ErrUnknownField
	}
}

// Performance holds the category dependent targets and actual values of an
// exercise. It is either *Strength or *Cardio.
type Performance interface {
	Category() catalog.Category
	// withActual returns a copy with v written to field at setIndex.
	withActual(field Field, sets, setIndex int, v NullFloat) (Performance, error)
	hasActuals() bool
	maxActualLen() int
}

type Strength struct {
	// Reps holds the prescribed reps per set.
	Reps       []int
	Weight     []NullFloat
	ActualReps []NullFloat
}

func (s *Strength) Category() catalog.Category {
	return catalog.CategoryStrength
}

func (s *Strength) withActual(field Field, sets, setIndex int, v NullFloat) (Performance, error) {
	updated := *s
	switch field {
	case FieldWeight:
		updated.Weight = withValue(s.Weight, sets, setIndex, v)
	case FieldActualReps:
		updated.ActualReps = withValue(s.ActualReps, sets, setIndex, v)
	case FieldCalories, FieldDuration:
		return nil, ErrFieldMismatch
	default:
		return nil, ErrUnknownField
	}
	return &updated, nil
}

func (s *Strength) hasActuals() bool {
	return countRecorded(s.Weight, len(s.Weight)) > 0 || countRecorded(s.ActualReps, len(s.ActualReps)) > 0
}

func (s *Strength) maxActualLen() int {
	return max(len(s.Weight), len(s.ActualReps))
}

type Cardio struct {
	TimeInSeconds    float64
	DistanceInMeters float64
	TargetCalories   float64

	Calories []NullFloat
	// Duration is the recorded duration per set, in seconds.
	Duration []NullFloat
}

func (c *Cardio) Category() catalog.Category {
	return catalog.CategoryCardio
}

func (c *Cardio) withActual(field Field, sets, setIndex int, v NullFloat) (Performance, error) {
	updated := *c
	switch field {
	case FieldCalories:
		updated.Calories = withValue(c.Calories, sets, setIndex, v)
	case FieldDuration:
		updated.Duration = withValue(c.Duration, sets, setIndex, v)
	case FieldWeight, FieldActualReps:
		return nil, ErrFieldMismatch
	default:
		return nil, ErrUnknownField
	}
	return &updated, nil
}

func (c *Cardio) hasActuals() bool {
	return countRecorded(c.Calories, len(c.Calories)) > 0 || countRecorded(c.Duration, len(c.Duration)) > 0
}

func (c *Cardio) maxActualLen() int {
	return max(len(c.Calories), len(c.Duration))
}
