package catalog

import (
	"fmt"
	"strings"
)

// Category decides which target and actual fields of a program exercise
// are meaningful:
//   - Strength: reps targets, weight + actual reps per set
//   - Cardio: duration/distance/calories targets, calories + duration per set
type Category string

const (
	CategoryStrength Category = "Strength"
	CategoryCardio   Category = "Cardio"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryStrength, CategoryCardio:
		return true
	default:
		return false
	}
}

// ParseCategory accepts any casing, e.g. "strength" or "CARDIO".
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strength":
		return CategoryStrength, nil
	case "cardio":
		return CategoryCardio, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// Exercise is immutable reference data, served by the remote catalog endpoint.
type Exercise struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}
