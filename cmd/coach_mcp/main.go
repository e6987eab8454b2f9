// Package main runs the coaching MCP server over stdio (for local editor use).
// The same MCP server is also mounted on the main service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"

	coachmcp "github.com/2beens/coachboard/internal/coaching/mcp"
	"github.com/2beens/coachboard/internal/coaching/remote"
	"github.com/2beens/coachboard/internal/config"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	api := remote.NewApi(remote.ApiParams{
		BaseURL: cfg.CoachApiBaseURL,
		Token:   os.Getenv("COACH_API_TOKEN"),
		HttpClient: &http.Client{
			Timeout: time.Duration(cfg.CoachApiTimeoutSeconds) * time.Second,
		},
		CatalogCacheSeconds: cfg.CatalogCacheSeconds,
	})
	server := coachmcp.NewServer(api)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
