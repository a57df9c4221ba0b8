package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/kurochkinivan/document_ingest/internal/config"
	v1 "github.com/kurochkinivan/document_ingest/internal/controller/http/v1"
	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/kurochkinivan/document_ingest/internal/infrastructure/pdftext"
	"github.com/kurochkinivan/document_ingest/internal/infrastructure/reportgen"
	"github.com/kurochkinivan/document_ingest/internal/infrastructure/webhook"
	"github.com/kurochkinivan/document_ingest/internal/pipeline"
	"github.com/kurochkinivan/document_ingest/internal/queue"
	"github.com/kurochkinivan/document_ingest/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

type repositories struct {
	csvFiles     *postgresql.CsvFilesRepository
	records      *postgresql.RecordsRepository
	pdfDocuments *postgresql.PdfDocumentsRepository
	parsedData   *postgresql.ParsedDataRepository
	financial    *postgresql.FinancialRepository
	txManager    *postgresql.TxManager
}

func (a *App) Run(ctx context.Context) (err error) {
	a.log.InfoContext(ctx, "starting app",
		slog.String("upload_dir", a.cfg.App.UploadDirectory),
		slog.Int("csv_concurrency", a.cfg.Queues.CsvConcurrency),
		slog.Int("pdf_concurrency", a.cfg.Queues.PdfConcurrency),
		slog.Int("webhook_concurrency", a.cfg.Queues.WebhookConcurrency),
	)

	if err := os.MkdirAll(a.cfg.App.UploadDirectory, 0o750); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	a.log.InfoContext(ctx, "establishing redis connection")

	client, err := queue.NewClient(ctx, a.log, a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to create redis connection: %w", err)
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close redis connection: %w", closeErr))
		}
	}()

	validator, err := queue.NewValidator(domain.JobSchemas())
	if err != nil {
		return fmt.Errorf("failed to create job validator: %w", err)
	}

	jobs := queue.New(a.log, client,
		queue.WithPrefix(a.cfg.Redis.KeyPrefix),
		queue.WithValidator(validator),
		queue.WithPollInterval(a.cfg.Queues.PollInterval),
		queue.WithLeaseTTL(a.cfg.Queues.LeaseTTL),
	)

	repos := &repositories{
		csvFiles:     postgresql.NewCsvFilesRepository(pool),
		records:      postgresql.NewRecordsRepository(pool),
		pdfDocuments: postgresql.NewPdfDocumentsRepository(pool),
		parsedData:   postgresql.NewParsedDataRepository(pool),
		financial:    postgresql.NewFinancialRepository(pool),
		txManager:    postgresql.NewTxManager(pool),
	}

	return a.startPipeline(ctx, repos, jobs)
}

func (a *App) startPipeline(ctx context.Context, repos *repositories, jobs *queue.Queue) error {
	reconciler := pipeline.NewReconciler(a.log, repos.financial, repos.parsedData, repos.txManager)

	csvWorker := pipeline.NewCsvIngestWorker(
		a.log,
		repos.csvFiles,
		repos.records,
		jobs,
		a.cfg.Queues.CsvBatchSize,
	)
	pdfWorker := pipeline.NewPdfIngestWorker(
		a.log,
		repos.pdfDocuments,
		repos.parsedData,
		pdftext.New(),
		reconciler,
	)
	webhookWorker := pipeline.NewWebhookDeliveryWorker(
		a.log,
		repos.csvFiles,
		webhook.NewClient(a.cfg.Webhook.Timeout),
		jobs,
		a.cfg.Webhook.URL,
		a.cfg.Webhook.MaxAttempts,
	)
	annotator := pipeline.NewAnnotator(a.log, repos.pdfDocuments, reconciler, reportgen.New())
	sweeper := pipeline.NewSweeper(
		a.log,
		a.cfg.App.UploadDirectory,
		a.cfg.App.SweepInterval,
		a.cfg.App.SweepGracePeriod,
		repos.csvFiles,
		repos.pdfDocuments,
	)

	server := v1.NewServer(
		a.cfg.HTTP,
		v1.NewCsvHandler(a.log, a.cfg.App.UploadDirectory, a.cfg.App.MaxCsvSize, repos.csvFiles, repos.records, jobs),
		v1.NewPdfHandler(
			a.log,
			a.cfg.App.UploadDirectory,
			a.cfg.App.MaxPdfSize,
			repos.pdfDocuments,
			repos.parsedData,
			repos.financial,
			jobs,
			annotator,
		),
	)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		return jobs.Consume(ctx, domain.JobTypeCsvIngest, csvWorker.Handle, a.cfg.Queues.CsvConcurrency)
	})

	erg.Go(func() error {
		return jobs.Consume(ctx, domain.JobTypePdfIngest, pdfWorker.Handle, a.cfg.Queues.PdfConcurrency)
	})

	erg.Go(func() error {
		return jobs.Consume(ctx, domain.JobTypeWebhookDelivery, webhookWorker.Handle, a.cfg.Queues.WebhookConcurrency)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "sweeper started")
		return sweeper.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "pipeline stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "pipeline stopped gracefully")

	return nil
}
