// Package main builds a training program from a TOML template and submits it
// to the coaching service.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/coachboard/internal/coaching/builder"
	"github.com/2beens/coachboard/internal/coaching/catalog"
	"github.com/2beens/coachboard/internal/coaching/remote"
	"github.com/2beens/coachboard/internal/config"
	"github.com/2beens/coachboard/internal/logging"
	"github.com/2beens/coachboard/pkg"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	templatePath := flag.String("template", "", "path to the TOML program template")
	dryRun := flag.Bool("dry-run", false, "validate and print the program without submitting it")
	flag.Parse()

	if *templatePath == "" {
		log.Fatalln("template path not set, use -template")
	}
	templateExists, err := pkg.PathExists(*templatePath, false)
	if err != nil {
		log.Fatalf("check template path: %s", err)
	}
	if !templateExists {
		log.Fatalf("template [%s] not found", *templatePath)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	logging.Setup(logging.LoggerSetupParams{
		LogLevel: cfg.LogLevel,
	})

	api := remote.NewApi(remote.ApiParams{
		BaseURL: cfg.CoachApiBaseURL,
		Token:   os.Getenv("COACH_API_TOKEN"),
		HttpClient: &http.Client{
			Timeout: time.Duration(cfg.CoachApiTimeoutSeconds) * time.Second,
		},
	})

	if err := run(context.Background(), api, *templatePath, *dryRun); err != nil {
		log.Fatalf("import program: %s", err)
	}
}

func run(ctx context.Context, api *remote.Api, templatePath string, dryRun bool) error {
	exercises, err := api.ListExercises(ctx)
	if err != nil {
		return fmt.Errorf("list exercises: %w", err)
	}

	templateFile, err := os.Open(templatePath)
	if err != nil {
		return err
	}
	defer templateFile.Close()

	b, err := builder.LoadTemplate(templateFile, catalog.New(exercises))
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}

	p, coercions, err := b.Build()
	if err != nil {
		return err
	}
	for _, c := range coercions {
		log.Warnf("week %d day %d exercise [%s]: non-numeric reps at positions %v set to 0",
			c.WeekNumber, c.DayNumber, c.ExerciseID, c.Positions)
	}

	if dryRun {
		log.Infof("program [%s] is valid: %d weeks, %d exercises", p.Title, len(p.Weeks), len(p.Exercises()))
		return nil
	}

	created, err := api.CreateProgram(ctx, p)
	if err != nil {
		return fmt.Errorf("create program: %w", err)
	}
	log.Infof("program [%s] created with id [%s]", created.Title, created.ID)
	return nil
}
