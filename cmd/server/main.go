package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/marlonxteban/fyyur/internal/config"
	"github.com/marlonxteban/fyyur/internal/database"
	"github.com/marlonxteban/fyyur/internal/handler"
	"github.com/marlonxteban/fyyur/internal/logging"
	"github.com/marlonxteban/fyyur/internal/middleware"
	"github.com/marlonxteban/fyyur/internal/queue"
	"github.com/marlonxteban/fyyur/internal/repository"
	"github.com/marlonxteban/fyyur/internal/router"
	"github.com/marlonxteban/fyyur/internal/service"
	"github.com/marlonxteban/fyyur/internal/utils"
	"github.com/marlonxteban/fyyur/internal/view"
)

func main() {
	// `server hash-password <plain>` prints a value for ADMIN_PASSWORD_HASH
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		os.Exit(hashPassword(os.Args[2:]))
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logging.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	if cfg.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.Migrate(ctx, db)
		cancel()
		if err != nil {
			logging.Fatal().Err(err).Msg("migrate schema")
		}
	}

	opts := []service.Option{}
	if pub := queue.NewPublisher(cfg.AMQPURL); pub != nil {
		opts = append(opts, service.WithPublisher(pub))
	} else {
		logging.Info().Msg("AMQP_URL not set, activity events disabled")
	}
	dir := service.NewDirectory(
		repository.NewVenueRepo(db),
		repository.NewArtistRepo(db),
		repository.NewShowRepo(db),
		opts...,
	)

	renderer, err := view.New()
	if err != nil {
		logging.Fatal().Err(err).Msg("parse templates")
	}

	rdb := config.NewRedisClient()
	if rdb != nil {
		defer rdb.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = !cfg.IsProduction()
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(middleware.Flash(cfg.FlashSecret))

	router.RegisterRoutes(e, handler.New(dir, cfg.FlashSecret), router.Guards{
		Auth:      middleware.RequireAdmin(cfg.AdminUser, cfg.AdminPassHash),
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	})

	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	addr := ":" + cfg.Port
	go func() {
		logging.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func hashPassword(args []string) int {
	fs := flag.NewFlagSet("hash-password", flag.ContinueOnError)
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: server hash-password [-cost N] <password>")
		return 2
	}
	hash, err := utils.HashPassword(fs.Arg(0), *cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(hash)
	return 0
}
