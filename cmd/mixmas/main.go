// Package main provides the main entry point for the Mixmas API server
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/application/generate"
	"github.com/mixmas/v2/internal/application/library"
	"github.com/mixmas/v2/internal/application/session"
	"github.com/mixmas/v2/internal/infrastructure/ai/gemini"
	"github.com/mixmas/v2/internal/infrastructure/config"
	"github.com/mixmas/v2/internal/infrastructure/http/server"
	"github.com/mixmas/v2/internal/infrastructure/persistence/kvstore"
	"github.com/mixmas/v2/internal/infrastructure/persistence/localstore"
	"github.com/mixmas/v2/internal/infrastructure/share"
	"github.com/mixmas/v2/pkg/healthcheck"
	"github.com/mixmas/v2/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to config.yaml search paths)")
	flag.Parse()

	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	kv, err := kvstore.Open(cfg.Storage.Path, zapLogger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			zapLogger.Warn("Failed to close storage", zap.Error(err))
		}
	}()

	store := localstore.New(kv, zapLogger)
	codec := share.NewCodec(cfg.Share.BaseURL, zapLogger)

	modelClient := gemini.NewClient(cfg.AI.APIKey, zapLogger,
		gemini.WithModel(cfg.AI.Model),
		gemini.WithBaseURL(cfg.AI.BaseURL),
	)
	generator := generate.NewService(modelClient, zapLogger)

	startCtx := context.Background()
	lib := library.NewService(startCtx, store, zapLogger)
	defer lib.Flush()

	sess := session.NewService(store, codec, zapLogger)
	sess.Start(startCtx, "", false)

	health := healthcheck.New(cfg.App.Name, cfg.App.Version, zapLogger)
	health.Register("storage", healthcheck.CheckFunc(func(ctx context.Context) healthcheck.Check {
		return healthcheck.NewCheck(ctx, "storage", func(ctx context.Context) error {
			_, _, err := kv.Get(ctx, "health_probe")
			return err
		})
	}))
	health.Register("library", healthcheck.CheckFunc(func(ctx context.Context) healthcheck.Check {
		return healthcheck.NewCheck(ctx, "library", func(context.Context) error {
			if lib.PersistenceDegraded() {
				return errors.New("saved recipes are not reaching durable storage")
			}
			return nil
		})
	}))
	health.Register("model", healthcheck.CheckFunc(func(ctx context.Context) healthcheck.Check {
		return healthcheck.NewCheck(ctx, "model", func(context.Context) error {
			if !modelClient.Configured() {
				return errors.New("model API key not configured")
			}
			return nil
		})
	}))

	httpServer := server.NewServer(cfg, zapLogger, generator, lib, sess, codec, store, health)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	// Push any debounced library writes out before the store closes.
	lib.Flush()
	zapLogger.Info("Server stopped")
	return nil
}
