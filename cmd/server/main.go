package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/handler"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/server"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("registry-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB, db.Dialect()); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages, err := store.NewStorages(db, cfg.Auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg.Auth, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
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
