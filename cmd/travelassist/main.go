package main

import (
	"context"
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"travelassist/internal/chunker"
	"travelassist/internal/config"
	openaiembed "travelassist/internal/embedding/openai"
	openaigen "travelassist/internal/generation/openai"
	"travelassist/internal/loader"
	"travelassist/internal/logger"
	"travelassist/internal/service"
	"travelassist/internal/tools/flight"
	"travelassist/internal/tools/weather"
	"travelassist/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, docsDir string
	var verbose bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/travelassist/config.yaml if not provided)")
	flag.StringVar(&docsDir, "docs", "", "Directory of PDF brochures (overrides config)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging to stderr")
	flag.Parse()
	logger.SetVerbose(verbose)

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if docsDir != "" {
		cfg.Docs.Dir = docsDir
	}

	// Credentials are resolved once here and passed into constructors;
	// a missing mandatory key halts before any query is accepted.
	openaiKey := os.Getenv(cfg.Embedder.APIKeyEnv)
	if openaiKey == "" {
		log.Fatalf("missing credential: set %s", cfg.Embedder.APIKeyEnv)
	}
	weatherKey := os.Getenv(cfg.Weather.APIKeyEnv)
	if weatherKey == "" {
		log.Fatalf("missing credential: set %s", cfg.Weather.APIKeyEnv)
	}
	flightKey := os.Getenv(cfg.Flight.APIKeyEnv)
	if flightKey == "" {
		log.Fatalf("missing credential: set %s", cfg.Flight.APIKeyEnv)
	}

	// Assemble components
	embedder, err := openaiembed.NewClient(openaiembed.Config{
		APIKey:    openaiKey,
		Model:     cfg.Embedder.Model,
		BatchSize: cfg.Embedder.BatchSize,
	})
	if err != nil {
		log.Fatalf("embedder init failed: %v", err)
	}
	completer, err := openaigen.NewClient(openaigen.Config{
		APIKey:    openaiKey,
		Model:     cfg.Completion.Model,
		MaxTokens: cfg.Completion.MaxTokens,
	})
	if err != nil {
		log.Fatalf("completion client init failed: %v", err)
	}
	weatherClient, err := weather.NewClient(weather.Config{
		BaseURL: cfg.Weather.BaseURL,
		APIKey:  weatherKey,
	})
	if err != nil {
		log.Fatalf("weather client init failed: %v", err)
	}
	flightClient, err := flight.NewClient(flight.Config{
		BaseURL: cfg.Flight.BaseURL,
		APIKey:  flightKey,
	})
	if err != nil {
		log.Fatalf("flight client init failed: %v", err)
	}

	assistant := service.NewAssistant(
		loader.NewDirSource(cfg.Docs.Dir),
		chunker.NewWindowChunker(cfg.Chunker.Size, cfg.Chunker.Overlap),
		embedder,
		completer,
		weatherClient,
		flightClient,
		cfg.Retrieval.TopK,
	)
	if err := assistant.Rebuild(context.Background()); err != nil {
		log.Fatalf("corpus build failed: %v", err)
	}

	m := tui.New(assistant)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
