package main

import (
	"context"
	"fmt"

	"github.com/mkarpekin/go-notes-keeper/internal/config"
	"github.com/mkarpekin/go-notes-keeper/internal/handler"
	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/server"
	"github.com/mkarpekin/go-notes-keeper/internal/service"
	"github.com/mkarpekin/go-notes-keeper/internal/store"
	"github.com/mkarpekin/go-notes-keeper/internal/tracing"
	"github.com/mkarpekin/go-notes-keeper/internal/utils"
	"github.com/mkarpekin/go-notes-keeper/internal/workers"
	"github.com/mkarpekin/go-notes-keeper/models"
)

// Populated at build time via -ldflags "-X main.buildVersion=..." etc.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	utils.InitHasherPool(cfg.App.HashKey)

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	// the config version is a fallback for builds without linker flags
	version := buildVersion
	if version == "N/A" && cfg.App.Version != "" {
		version = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(version, buildDate, buildCommit)

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, "go-notes-keeper")
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up tracing")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ws := workers.NewWorkers(storages, cfg.Workers, log)
	ws.Run()

	// blocks until a stop signal arrives and the HTTP server drains
	srv.RunServer()

	ws.Stop()

	if err := storages.Close(ctx); err != nil {
		log.Error().Err(err).Msg("error closing storages")
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Error().Err(err).Msg("error flushing traces")
	}

	log.Info().Msg("application stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
