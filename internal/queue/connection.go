package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/kurochkinivan/document_ingest/internal/config"
	"github.com/redis/go-redis/v9"
)

const (
	maxRetries = 5
	retryDelay = 5 * time.Second
)

func NewClient(ctx context.Context, log *slog.Logger, cfg config.Redis) (*redis.Client, error) {
	opts, err := ParseURL(cfg.URL, cfg.Password)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	err = retry.Do(
		func() error {
			return client.Ping(ctx).Err()
		},
		retry.Context(ctx),
		retry.Attempts(maxRetries+1),
		retry.Delay(retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Debug("redis connection attempt failed, retrying",
				slog.Int("attempt", int(n)+1),
				slog.Int("max_retries", maxRetries),
				slog.String("err", err.Error()),
			)
		}),
	)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to ping redis: %w", err), client.Close())
	}

	return client, nil
}

// ParseURL accepts a redis URL with or without scheme. The password is only
// applied when the URL carries none.
func ParseURL(raw, password string) (*redis.Options, error) {
	if !strings.HasPrefix(raw, "redis://") && !strings.HasPrefix(raw, "rediss://") {
		raw = "redis://" + raw
	}

	opts, err := redis.ParseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	if password != "" && opts.Password == "" {
		opts.Password = password
	}

	return opts, nil
}
