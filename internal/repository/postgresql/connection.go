package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/document_ingest/internal/config"
)

const (
	maxRetries = 5
	retryDelay = 5 * time.Second
)

func NewConnection(ctx context.Context, log *slog.Logger, cfg config.PostgreSQL) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, ConnectionURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	err = retry.Do(
		func() error {
			return pool.Ping(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(maxRetries+1),
		retry.Delay(retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Debug("database connection attempt failed, retrying",
				slog.Int("attempt", int(n)+1),
				slog.Int("max_retries", maxRetries),
				slog.String("err", err.Error()),
			)
		}),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return pool, nil
}

func ConnectionURL(cfg config.PostgreSQL) string {
	connectionURL := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: "sslmode=disable",
	}

	return connectionURL.String()
}
