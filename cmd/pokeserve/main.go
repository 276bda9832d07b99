package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pokebrowse/internal/catalog"
	"pokebrowse/internal/config"
	"pokebrowse/internal/server"
)

func main() {
	var configPath, addr, csvPath string
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&addr, "addr", "", "Listen address (default :5000)")
	flag.StringVar(&csvPath, "csv", "", "CSV file to seed the collection from")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Error loading .env: %v", err)
	}

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	config.ApplyEnv(cfg)

	if addr != "" {
		cfg.Server.Addr = addr
	}
	if csvPath != "" {
		cfg.Server.CSV = csvPath
	}
	if mode := os.Getenv(gin.EnvGinMode); mode != "" {
		gin.SetMode(mode)
	}

	ctx := context.Background()

	db, err := catalog.Open(ctx, cfg.Server.Driver, cfg.Server.DSN)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	store := catalog.New(db, cfg.Server.Driver)
	if err := store.Migrate(ctx); err != nil {
		log.Fatalf("Error creating schema: %v", err)
	}
	if cfg.Server.CSV != "" {
		if _, err := store.SeedFile(ctx, cfg.Server.CSV); err != nil {
			log.Fatalf("Error seeding collection: %v", err)
		}
	}

	r := server.NewRouter(store, server.Options{
		Collection:  cfg.Browser.Collection,
		PerPage:     cfg.Server.PerPage,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Serving /api/%s on %s (%s)", cfg.Browser.Collection, cfg.Server.Addr, cfg.Server.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Shutdown failed: %v", err)
	}

	log.Println("Server stopped.")
}
