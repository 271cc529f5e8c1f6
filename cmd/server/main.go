package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.nhat.io/clock"

	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/handler"
	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/server"
	"github.com/joycesaquino/customer/internal/service"
	"github.com/joycesaquino/customer/internal/store"
	"github.com/joycesaquino/customer/internal/telemetry"
	"github.com/joycesaquino/customer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("customer-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Err(err).Msg("error shutting down telemetry")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage, clock.New(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
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
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
