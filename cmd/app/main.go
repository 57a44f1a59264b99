package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsaurabh334/PanditJii/internal/config"
	"github.com/jsaurabh334/PanditJii/internal/db"
	"github.com/jsaurabh334/PanditJii/internal/logger"
	"github.com/jsaurabh334/PanditJii/internal/notify"
	"github.com/jsaurabh334/PanditJii/internal/pricing"
	"github.com/jsaurabh334/PanditJii/internal/server"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	notifier := notify.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer notifier.Close()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go notifier.Start(workerCtx)
	go pollQueueLength(workerCtx, notifier)

	surge := pricing.NewTable(cfg.FestivalSurge)

	srv := server.New(database, cfg, notifier, surge)

	go func() {
		logger.Infof("Server listening on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
}

func pollQueueLength(ctx context.Context, notifier *notify.Service) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			notifier.QueueLength(ctx)
		}
	}
}
