package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/api"
	"github.com/yourname/healthtracker/internal/auth"
	"github.com/yourname/healthtracker/internal/config"
	"github.com/yourname/healthtracker/internal/storage"
)

const demoUsers = `[{"id":"u1","token":"MOCK-TOKEN","name":"Demo User","weight_kg":70}]`

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create default user if not exists
	if cfg.DBType == "file" && cfg.Env == "development" {
		if err := seedUsers(cfg.DataDir); err != nil {
			logger.Fatalf("failed to seed users: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Errorf("failed to close storage: %v", err)
		}
	}()

	provider, err := auth.NewProvider(cfg, store, logger)
	if err != nil {
		logger.Fatalf("failed to init auth: %v", err)
	}

	app := api.NewApp(logger, store, cfg.WaterGoalML, nil)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewRouter(app, provider),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Server running on %s (storage=%s, auth=%s)", cfg.Addr, cfg.DBType, cfg.AuthMode)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Infof("shutting down")
	case err := <-errCh:
		logger.Errorf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

func seedUsers(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	usersFile := filepath.Join(dataDir, storage.UsersFile)
	if _, err := os.Stat(usersFile); !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(usersFile, []byte(demoUsers), 0644)
}
