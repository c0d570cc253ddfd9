package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"storefront-gateway/internal/catalog"
	"storefront-gateway/internal/config"
	"storefront-gateway/internal/db"
	"storefront-gateway/internal/httpserver"
	"storefront-gateway/internal/store"
	"storefront-gateway/internal/upstream"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[web] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	snapshots, pinger, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		logger.Fatalf("init store: %v", err)
	}
	defer cleanup()

	api := upstream.New(cfg.APIBaseURL, cfg.UpstreamTimeout, logger)
	products := catalog.New(api)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Upstream: api,
		Store:    snapshots,
		Catalog:  products,
		Origins:  cfg.AllowedOrigins,
		Pinger:   pinger,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (store=%s, upstream=%s)", cfg.HTTPAddr, cfg.StoreBackend, cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// buildStore selects the snapshot backend. The file store needs no
// readiness probe; postgres and redis expose theirs.
func buildStore(ctx context.Context, cfg config.Config) (store.Store, httpserver.Pinger, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreFile:
		fs, err := store.NewFile(cfg.StateDir)
		if err != nil {
			return nil, nil, nil, err
		}
		return fs, nil, func() {}, nil

	case config.StorePostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString, int32(cfg.DBMaxConns))
		if err != nil {
			return nil, nil, nil, err
		}
		ps := store.NewPostgres(pool)
		return ps, ps, pool.Close, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		rs := store.NewRedis(client)
		return rs, rs, func() { _ = client.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
