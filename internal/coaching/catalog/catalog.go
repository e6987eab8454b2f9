package catalog

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrUnknownCategory  = errors.New("unknown exercise category")
)

// Catalog is a read-only lookup over the flat exercise list.
type Catalog struct {
	exercises []Exercise
	byID      map[string]Exercise
	byName    map[string]Exercise
}

func New(exercises []Exercise) *Catalog {
	c := &Catalog{
		exercises: make([]Exercise, 0, len(exercises)),
		byID:      make(map[string]Exercise, len(exercises)),
		byName:    make(map[string]Exercise, len(exercises)),
	}
	for _, ex := range exercises {
		if _, ok := c.byID[ex.ID]; ok {
			// first entry wins, the remote list should not contain duplicates anyway
			continue
		}
		c.exercises = append(c.exercises, ex)
		c.byID[ex.ID] = ex
		nameKey := normalizeName(ex.Name)
		if _, ok := c.byName[nameKey]; !ok {
			c.byName[nameKey] = ex
		}
	}

	sort.SliceStable(c.exercises, func(i, j int) bool {
		return strings.ToLower(c.exercises[i].Name) < strings.ToLower(c.exercises[j].Name)
	})

	return c
}

func (c *Catalog) Len() int {
	return len(c.exercises)
}

// All returns the exercises sorted by name.
func (c *Catalog) All() []Exercise {
	all := make([]Exercise, len(c.exercises))
	copy(all, c.exercises)
	return all
}

func (c *Catalog) ByID(id string) (Exercise, error) {
	ex, ok := c.byID[id]
	if !ok {
		return Exercise{}, ErrExerciseNotFound
	}
	return ex, nil
}

// ByName ignores case and surrounding whitespace.
func (c *Catalog) ByName(name string) (Exercise, error) {
	ex, ok := c.byName[normalizeName(name)]
	if !ok {
		return Exercise{}, ErrExerciseNotFound
	}
	return ex, nil
}

// Autofill returns the category of a known exercise, so the category-dependent
// fields (sets/reps vs. time/distance/calories) can be populated as soon as
// the trainer picks the exercise name.
func (c *Catalog) Autofill(name string) (Category, bool) {
	ex, err := c.ByName(name)
	if err != nil {
		return "", false
	}
	return ex.Category, true
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
