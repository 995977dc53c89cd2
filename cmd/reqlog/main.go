package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/akave-ai/reqlog/internal/config"
	"github.com/akave-ai/reqlog/internal/logging"
	"github.com/akave-ai/reqlog/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging, "reqlog", cfg.Primary.Env)
	if err != nil {
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		fallback.Fatal().Err(err).Msg("build logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	logger.Info().Str("port", cfg.Server.Port).Msg("starting server")
	if err := srv.Start(ctx); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
