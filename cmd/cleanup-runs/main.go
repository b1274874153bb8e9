// Command cleanup-runs fails batch runs stuck in pending, which otherwise
// block their owner from starting another batch. Meant for cron.
//
// Usage:
//
//	cleanup-runs --max-age=24h
//
// Uses the server configuration (CONFIG_PATH and environment); the database
// driver must be postgres.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/batch-dashboard/internal/adapter/postgres"
	"github.com/heartmarshall/batch-dashboard/internal/adapter/postgres/batchrun"
	"github.com/heartmarshall/batch-dashboard/internal/app"
	"github.com/heartmarshall/batch-dashboard/internal/config"
)

func main() {
	maxAge := flag.Duration("max-age", 24*time.Hour, "fail runs pending for longer than this")
	flag.Parse()

	if err := run(*maxAge); err != nil {
		fmt.Fprintln(os.Stderr, "cleanup-runs:", err)
		os.Exit(1)
	}
}

func run(maxAge time.Duration) error {
	if maxAge <= 0 {
		return fmt.Errorf("--max-age must be positive (got %s)", maxAge)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("needs database.driver %q (got %q)", config.DriverPostgres, cfg.Database.Driver)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	now := time.Now().UTC()
	n, err := batchrun.New(pool).FailStale(ctx, now.Add(-maxAge), now)
	if err != nil {
		return fmt.Errorf("fail stale runs: %w", err)
	}

	logger.InfoContext(ctx, "stale batch runs failed",
		slog.Int64("count", n),
		slog.Duration("max_age", maxAge))
	fmt.Printf("Marked %d stale batch runs as failed.\n", n)
	return nil
}
