package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/document_ingest/internal/app"
	"github.com/kurochkinivan/document_ingest/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "ingestd",
		Usage:   "CSV and PDF ingestion service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:    "upload-dir",
			Aliases: []string{"u"},
			Usage:   "Set directory to store uploaded files in",
			Value:   "uploads",
			Sources: cli.NewValueSourceChain(cli.EnvVar("UPLOAD_DIR"), yaml.YAML("app.upload_dir", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.Int64Flag{
			Name:      "max-csv-size",
			Usage:     "Set maximum size of an uploaded CSV file in bytes",
			Value:     20 << 20,
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.max_csv_size", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive[int64],
		},
		&cli.Int64Flag{
			Name:      "max-pdf-size",
			Usage:     "Set maximum size of an uploaded PDF file in bytes",
			Value:     20 << 20,
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.max_pdf_size", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive[int64],
		},
		&cli.DurationFlag{
			Name:      "sweep-interval",
			Usage:     "Set how often stale uploads are removed",
			Value:     10 * time.Minute,
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.sweep_interval", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive[time.Duration],
		},
		&cli.DurationFlag{
			Name:    "sweep-grace-period",
			Usage:   "Set how long an upload without a document is kept",
			Value:   time.Hour,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.sweep_grace_period", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PG_HOST"), yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PG_PORT"), yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_USERNAME"), yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_PASSWORD"), yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "document_ingest",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PG_DBNAME"), yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "redis-url",
			Usage:   "Set Redis URL, the redis:// scheme is optional",
			Value:   "localhost:6379",
			Sources: cli.NewValueSourceChain(cli.EnvVar("REDIS_URL"), yaml.YAML("redis.url", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "redis-password",
			Usage:   "Set Redis password used when the URL carries none",
			Sources: cli.NewValueSourceChain(cli.EnvVar("REDIS_PASSWORD"), yaml.YAML("redis.password", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "redis-key-prefix",
			Usage:   "Set prefix of the queue keys in Redis",
			Value:   "ingest",
			Sources: cli.NewValueSourceChain(yaml.YAML("redis.key_prefix", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PORT"), yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:      "csv-concurrency",
			Usage:     "Set number of concurrent CSV ingest jobs",
			Value:     2,
			Sources:   cli.NewValueSourceChain(yaml.YAML("queues.csv_concurrency", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive[int],
		},
		&cli.IntFlag{
			Name:      "pdf-concurrency",
			Usage:     "Set number of concurrent PDF ingest jobs",
			Value:     1,
			Sources:   cli.NewValueSourceChain(yaml.YAML("queues.pdf_concurrency", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive[int],
		},
		&cli.IntFlag{
			Name:      "webhook-concurrency",
			Usage:     "Set number of concurrent webhook deliveries",
			Value:     2,
			Sources:   cli.NewValueSourceChain(yaml.YAML("queues.webhook_concurrency", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive[int],
		},
		&cli.IntFlag{
			Name:      "csv-batch-size",
			Usage:     "Set number of CSV rows written per batch",
			Value:     1000,
			Sources:   cli.NewValueSourceChain(yaml.YAML("queues.csv_batch_size", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive[int],
		},
		&cli.DurationFlag{
			Name:      "queue-poll-interval",
			Usage:     "Set how often delayed jobs are promoted",
			Value:     time.Second,
			Sources:   cli.NewValueSourceChain(yaml.YAML("queues.poll_interval", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive[time.Duration],
		},
		&cli.DurationFlag{
			Name:      "queue-lease-ttl",
			Usage:     "Set how long a running job may go without a heartbeat before another worker takes it over",
			Value:     30 * time.Second,
			Sources:   cli.NewValueSourceChain(yaml.YAML("queues.lease_ttl", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive[time.Duration],
		},
		&cli.StringFlag{
			Name:    "webhook-url",
			Usage:   "Set URL notified when a CSV file is ingested, empty disables delivery",
			Sources: cli.NewValueSourceChain(cli.EnvVar("WEBHOOK_URL"), yaml.YAML("webhook.url", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:      "webhook-max-attempts",
			Usage:     "Set maximum number of webhook delivery attempts",
			Value:     5,
			Sources:   cli.NewValueSourceChain(cli.EnvVar("WEBHOOK_MAX_ATTEMPTS"), yaml.YAML("webhook.max_attempts", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive[int],
		},
		&cli.DurationFlag{
			Name:    "webhook-timeout",
			Usage:   "Set timeout of a single webhook request",
			Value:   10 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("webhook.timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validatePositive[T int | int64 | time.Duration](v T) error {
	if v <= 0 {
		return fmt.Errorf("must be positive, got %v", v)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
