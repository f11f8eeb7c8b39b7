package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/lowlevel-labs/internal/config"
	"github.com/povarna/lowlevel-labs/internal/list"
	"github.com/povarna/lowlevel-labs/internal/session"
	"github.com/povarna/lowlevel-labs/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	sessionLogger := logger.New(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dispatcher := session.NewDispatcher(list.New(), os.Stdout, cfg.Session.Prompt, &sessionLogger)

	sessionLogger.Info().Msg("Starting list session")
	if err := dispatcher.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Session ended with error")
	}
	sessionLogger.Info().Msg("Session closed")
}
