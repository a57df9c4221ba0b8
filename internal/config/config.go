package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	Redis
	HTTP
	Queues
	Webhook
}

type App struct {
	UploadDirectory  string
	MaxCsvSize       int64
	MaxPdfSize       int64
	SweepInterval    time.Duration
	SweepGracePeriod time.Duration
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type Redis struct {
	URL       string
	Password  string
	KeyPrefix string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Queues struct {
	CsvConcurrency     int
	PdfConcurrency     int
	WebhookConcurrency int
	CsvBatchSize       int
	PollInterval       time.Duration
	LeaseTTL           time.Duration
}

type Webhook struct {
	URL         string
	MaxAttempts int
	Timeout     time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			UploadDirectory:  cmd.String("upload-dir"),
			MaxCsvSize:       cmd.Int64("max-csv-size"),
			MaxPdfSize:       cmd.Int64("max-pdf-size"),
			SweepInterval:    cmd.Duration("sweep-interval"),
			SweepGracePeriod: cmd.Duration("sweep-grace-period"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		Redis: Redis{
			URL:       cmd.String("redis-url"),
			Password:  cmd.String("redis-password"),
			KeyPrefix: cmd.String("redis-key-prefix"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
		Queues: Queues{
			CsvConcurrency:     cmd.Int("csv-concurrency"),
			PdfConcurrency:     cmd.Int("pdf-concurrency"),
			WebhookConcurrency: cmd.Int("webhook-concurrency"),
			CsvBatchSize:       cmd.Int("csv-batch-size"),
			PollInterval:       cmd.Duration("queue-poll-interval"),
			LeaseTTL:           cmd.Duration("queue-lease-ttl"),
		},
		Webhook: Webhook{
			URL:         cmd.String("webhook-url"),
			MaxAttempts: cmd.Int("webhook-max-attempts"),
			Timeout:     cmd.Duration("webhook-timeout"),
		},
	}
}
