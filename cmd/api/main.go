package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/nutriplan/backend/config"
	"github.com/nutriplan/backend/internal/api"
	"github.com/nutriplan/backend/internal/router"
	"github.com/nutriplan/backend/internal/server"
	"github.com/nutriplan/backend/internal/service"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// A missing credential is the only fatal startup condition.
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	gemini := service.NewGeminiClient(cfg, logger)
	dietService := service.NewDietService(gemini, logger)
	dietHandler := api.NewDietHandler(dietService, logger)

	engine := router.SetupRouter(cfg, dietHandler, logger)
	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
}
