package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pageza/recipecard/config"
	"github.com/pageza/recipecard/internal/audit"
	"github.com/pageza/recipecard/internal/database"
	"github.com/pageza/recipecard/internal/logging"
	"github.com/pageza/recipecard/internal/server"
	"github.com/pageza/recipecard/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	log.Logger = logger

	sinks := []audit.Sink{audit.LogSink{Logger: logger}}
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer client.Close()
		sinks = append(sinks, audit.NewRedisSink(client, cfg.AuditStream))
	}
	dispatcher := audit.NewDispatcher(logger, 5*time.Second, sinks...)

	extractService := service.NewFromConfig(cfg, logger.With().Str("component", "extract").Logger())

	// Create and start server
	srv := server.New(cfg, extractService, dispatcher, logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("received signal")
	}

	// Gracefully shutdown the server
	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
		return
	}
	logger.Info().Msg("server stopped")
}
