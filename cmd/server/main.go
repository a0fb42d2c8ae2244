package main

import (
	"context"
	"fmt"

	"github.com/jacklucas/notes-api/internal/config"
	"github.com/jacklucas/notes-api/internal/handler"
	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/internal/server"
	"github.com/jacklucas/notes-api/internal/service"
	"github.com/jacklucas/notes-api/internal/store"
	"github.com/jacklucas/notes-api/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
