package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"

	"github.com/openfleet/garage-api/internal/api"
	"github.com/openfleet/garage-api/internal/infrastructure/db/memory"
	"github.com/openfleet/garage-api/internal/infrastructure/hashpool"
	"github.com/openfleet/garage-api/internal/pkg/config"
	"github.com/openfleet/garage-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hasher := hashpool.New(cfg.Hash.Workers, cfg.Hash.Cost, log)
	hasher.Start(ctx)

	vehicles := memory.NewVehicleRepository()
	users := memory.NewUserRepository()

	e := api.NewRouter(vehicles, users, hasher, log)
	e.Use(echoprometheus.NewMiddleware("garage"))
	e.GET("/metrics", echoprometheus.NewHandler())

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
