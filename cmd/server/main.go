package main

import (
	"context"
	"fmt"

	"github.com/antonsh/stockscan/internal/config"
	httphandler "github.com/antonsh/stockscan/internal/handler/http"
	"github.com/antonsh/stockscan/internal/logger"
	"github.com/antonsh/stockscan/internal/server"
	"github.com/antonsh/stockscan/internal/service"
	"github.com/antonsh/stockscan/internal/store"
	"github.com/antonsh/stockscan/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("stockscan-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err := migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	services := service.NewServices(storages, cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv := server.NewServer(handler.Init(), cfg.Server, log)
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
