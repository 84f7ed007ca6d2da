package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/example/vocabtrainer/internal/config"
	"github.com/example/vocabtrainer/internal/database"
	"github.com/example/vocabtrainer/internal/notify"
	"github.com/example/vocabtrainer/internal/scheduler"
	"github.com/example/vocabtrainer/internal/server"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.RFC3339,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if err := database.Connect(cfg.DBDriver, cfg.DBDSN); err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close()

	// The Telegram notifier is optional: without a token, reminders are off.
	var notifier scheduler.Notifier
	if cfg.TelegramToken != "" {
		n, err := notify.NewTelegramNotifier(cfg.TelegramToken)
		if err != nil {
			logger.Error("failed to create Telegram notifier", slog.Any("error", err))
			os.Exit(1)
		}
		notifier = n
		logger.Info("telegram reminders enabled")
	}

	jobs := scheduler.New(notifier, cfg.AttemptRetention, logger)
	jobs.Start()
	defer jobs.Stop()

	srv := server.New(cfg, logger).HTTPServer()

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("shutting down", slog.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during shutdown", slog.Any("error", err))
	}

	logger.Info("server stopped")
}
