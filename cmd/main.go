package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"avtoelon/internal/caching"
	"avtoelon/internal/config"
	"avtoelon/internal/server"
	"avtoelon/pkg/database"
	"avtoelon/pkg/logger"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Server.Env, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDB(cfg.Database.Path, zl)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zl.Error("failed to close database", zap.Error(err))
		}
	}()

	if err := database.EnsureSchema(ctx, db); err != nil {
		return err
	}
	if cfg.Database.SeedDefaults {
		seeded, err := database.SeedIfEmpty(ctx, db)
		if err != nil {
			return err
		}
		if seeded {
			zl.Info("default catalog seeded")
		}
	}

	cache := caching.NewNoopCatalogCache()
	if cfg.CacheEnabled() {
		cache = caching.NewRedisCatalogCache(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, cfg.Cache.TTL, zl)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			zl.Error("failed to close cache", zap.Error(err))
		}
	}()

	e, err := server.New(cfg, zl, db, cache)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("avtoelon server starting", zap.String("addr", cfg.Addr()), zap.String("database", cfg.Database.Path))
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
