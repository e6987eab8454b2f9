package builder

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/2beens/coachboard/internal/coaching/catalog"
)

// Template is a program definition kept in a TOML file:
//
//	title = "Beginner Strength"
//	client_id = "..."
//	trainer_id = "..."
//
//	[[weeks]]
//	  [[weeks.days]]
//	    [[weeks.days.exercises]]
//	    name = "Squat"
//	    sets = 3
//	    reps = "5,5,5"
type Template struct {
	Title     string         `toml:"title"`
	ClientID  string         `toml:"client_id"`
	TrainerID string         `toml:"trainer_id"`
	Weeks     []TemplateWeek `toml:"weeks"`
}

type TemplateWeek struct {
	Days []TemplateDay `toml:"days"`
}

type TemplateDay struct {
	Exercises []ExerciseInput `toml:"exercises"`
}

// LoadTemplate reads a TOML template into a new builder.
func LoadTemplate(r io.Reader, cat *catalog.Catalog) (*Builder, error) {
	var tmpl Template
	if _, err := toml.NewDecoder(r).Decode(&tmpl); err != nil {
		return nil, fmt.Errorf("decode program template: %w", err)
	}
	return FromTemplate(tmpl, cat)
}

func FromTemplate(tmpl Template, cat *catalog.Catalog) (*Builder, error) {
	b := New(cat)
	b.SetTitle(tmpl.Title)
	b.SetClient(tmpl.ClientID)
	b.SetTrainer(tmpl.TrainerID)

	for wi, week := range tmpl.Weeks {
		b.AddWeek()
		for di, day := range week.Days {
			if _, err := b.AddDay(wi); err != nil {
				return nil, err
			}
			for _, ex := range day.Exercises {
				if ex.Category != "" {
					category, err := catalog.ParseCategory(string(ex.Category))
					if err != nil {
						return nil, fmt.Errorf("week %d, day %d, exercise [%s]: %w", wi+1, di+1, ex.Name, err)
					}
					ex.Category = category
				}
				if _, err := b.AddExerciseToDay(wi, di, ex); err != nil {
					return nil, err
				}
			}
		}
	}

	return b, nil
}
