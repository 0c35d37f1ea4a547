package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/marlonxteban/fyyur/internal/logging"
	"github.com/marlonxteban/fyyur/internal/queue"
)

// activity consumes directory events and appends them to
// $LOG_DIR/activity.log.
func main() {
	_ = godotenv.Load()
	logging.Init(logging.Config{Level: os.Getenv("LOG_LEVEL"), Format: os.Getenv("LOG_FORMAT")})

	url := os.Getenv("AMQP_URL")
	if url == "" {
		url = os.Getenv("RABBITMQ_URL")
	}
	if url == "" {
		logging.Fatal().Msg("AMQP_URL is required")
	}
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("queue", queue.ActivityQueue).Str("dir", logDir).Msg("activity consumer starting")
	if err := queue.StartActivityConsumer(ctx, url, logDir); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("activity consumer stopped")
	}
	logging.Info().Msg("activity consumer stopped")
}
