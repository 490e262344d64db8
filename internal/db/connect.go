package db

import (
	"context"
	"sync"

	"taskboard/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/singleflight"
)

var (
	mu     sync.Mutex
	pool   *pgxpool.Pool
	flight singleflight.Group
)

// Acquire returns the process-wide pool, establishing it on first use.
// Concurrent callers share a single in-flight connection attempt; a failed
// attempt is not cached, so the next caller retries fresh.
func Acquire(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	mu.Lock()
	p := pool
	mu.Unlock()
	if p != nil {
		return p, nil
	}

	v, err, _ := flight.Do("connect", func() (any, error) {
		p, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return nil, err
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()
	if pool == nil {
		pool = v.(*pgxpool.Pool)
	}
	return pool, nil
}

// Connect is the startup path: acquire the pool and exit on failure.
func Connect(dsn string) *pgxpool.Pool {
	p, err := Acquire(context.Background(), dsn)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	logger.Info("database connected")
	return p
}

// Close tears down the cached pool. A later Acquire reconnects.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if pool != nil {
		pool.Close()
		pool = nil
	}
}
