package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"event-finder/internal/api"
	"event-finder/internal/config"
	"event-finder/internal/events"
	"event-finder/internal/gemini"
	"event-finder/internal/search"
)

func main() {
	// .env is optional; keys may come from the secrets file or the real env.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	creds := config.LoadCredentials(cfg.SecretsFile)
	searcher := search.NewClient(cfg.Search.BaseURL, cfg.SearchTimeout())
	model := gemini.NewClient(cfg.Gemini.BaseURL, cfg.GeminiTimeout())
	finder := events.NewService(searcher, model, creds.Lookup())

	r := api.SetupRouter(cfg, finder)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Infof("[Main] starting server on %s%s", addr, cfg.Server.Subpath)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
