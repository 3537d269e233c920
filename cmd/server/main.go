package main

import (
	"context"
	"fmt"
	"os"

	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/handler"
	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/internal/server"
	"github.com/happydeal-transit/erp/internal/service"
	"github.com/happydeal-transit/erp/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("erp-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if err = os.MkdirAll(cfg.Storage.Uploads.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("error creating upload directory")
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.BootstrapService.EnsureDefaultData(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding default data")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, cfg.CORS, log)
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
