package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"pokebrowse/internal/api"
	"pokebrowse/internal/config"
	"pokebrowse/internal/fetch"
	"pokebrowse/internal/query"
	"pokebrowse/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath, baseURL, logPath string
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&baseURL, "base-url", "", "Address of the collection service, e.g. http://localhost:5000")
	flag.StringVar(&logPath, "log", "", "Log file (default: pokebrowse.log)")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		fmt.Printf("Error loading .env: %v\n", err)
		os.Exit(1)
	}

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, cfgErr := configSvc.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}
	config.ApplyEnv(cfg)

	// Flags win over file and environment
	if baseURL != "" {
		cfg.Browser.BaseURL = baseURL
	}
	if logPath != "" {
		cfg.Browser.LogFile = logPath
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.Browser.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	if cfgErr != nil {
		log.Printf("Error loading config, using defaults: %v", cfgErr)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	client := api.NewHTTPClient(cfg.Browser.BaseURL, cfg.Browser.Collection,
		api.WithTimeout(cfg.Browser.Timeout()))
	log.Printf("Browsing %s", client.Endpoint())

	store := query.NewStore(query.DefaultState())
	fetcher := fetch.New(ctx, client, fetch.Options{DiscardStale: cfg.Fetch.DiscardStale})

	e2e := os.Getenv("POKEBROWSE_E2E_TEST") == "1"
	uiModel := ui.NewModel(store, fetcher, ui.Options{
		Collection:   cfg.Browser.Collection,
		ShowReady:    e2e,
		StaticCursor: e2e,
	})

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
