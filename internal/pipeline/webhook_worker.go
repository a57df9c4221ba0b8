package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/kurochkinivan/document_ingest/internal/queue"
)

const (
	DefaultWebhookMaxAttempts = 5

	webhookURLNotConfigured = "WEBHOOK_URL not configured"
)

// RetryDelay is the wait before the delivery that follows a failed attempt.
func RetryDelay(attempt int) time.Duration {
	switch {
	case attempt <= 1:
		return time.Minute
	case attempt == 2:
		return 5 * time.Minute
	default:
		return 30 * time.Minute
	}
}

// WebhookDeliveryWorker posts the ingestion summary of a CSV file and
// schedules its own retries.
type WebhookDeliveryWorker struct {
	log         *slog.Logger
	files       CsvFileStore
	notifier    Notifier
	enqueuer    Enqueuer
	url         string
	maxAttempts int
	now         func() time.Time
}

func NewWebhookDeliveryWorker(
	log *slog.Logger,
	files CsvFileStore,
	notifier Notifier,
	enqueuer Enqueuer,
	url string,
	maxAttempts int,
) *WebhookDeliveryWorker {
	if maxAttempts <= 0 {
		maxAttempts = DefaultWebhookMaxAttempts
	}

	return &WebhookDeliveryWorker{
		log:         log,
		files:       files,
		notifier:    notifier,
		enqueuer:    enqueuer,
		url:         url,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

func (w *WebhookDeliveryWorker) Handle(ctx context.Context, job *queue.Job) error {
	var payload domain.WebhookPayload
	if err := decodePayload(job, &payload); err != nil {
		return err
	}

	return w.Process(ctx, &payload)
}

func (w *WebhookDeliveryWorker) Process(ctx context.Context, payload *domain.WebhookPayload) error {
	log := w.log.With(
		slog.String("document_id", payload.DocumentID),
		slog.Int("attempt", payload.Attempt),
	)

	file, err := w.files.CsvFileByID(ctx, payload.DocumentID)
	if err != nil {
		return lookupError("csv file", payload.DocumentID, err)
	}

	if file.WebhookStatus != domain.WebhookStatusPending || file.WebhookAttempts >= payload.Attempt {
		log.InfoContext(ctx, "webhook attempt already settled, skipping",
			slog.String("webhook_status", string(file.WebhookStatus)),
			slog.Int("webhook_attempts", file.WebhookAttempts),
		)
		return nil
	}

	if w.url == "" {
		log.WarnContext(ctx, "webhook url is not configured")

		reason := webhookURLNotConfigured
		return w.updateState(ctx, file.ID, domain.WebhookState{
			Status:    domain.WebhookStatusFailed,
			Attempts:  payload.Attempt,
			LastError: &reason,
		})
	}

	err = w.notifier.Notify(ctx, w.url, &domain.WebhookNotification{
		DocumentID:    file.ID,
		RowsProcessed: file.TotalRows,
		ValidRows:     file.ValidRows,
		InvalidRows:   file.InvalidRows,
		CompletedAt:   file.CompletedAt,
	})
	if err == nil {
		log.InfoContext(ctx, "webhook delivered")

		return w.updateState(ctx, file.ID, domain.WebhookState{
			Status:   domain.WebhookStatusSuccess,
			Attempts: payload.Attempt,
		})
	}

	return w.retry(ctx, log, file.ID, payload.Attempt, err)
}

func (w *WebhookDeliveryWorker) retry(ctx context.Context, log *slog.Logger, id string, attempt int, cause error) error {
	reason := cause.Error()
	next := attempt + 1

	if next > w.maxAttempts {
		log.ErrorContext(ctx, "webhook delivery failed, giving up", slog.String("err", reason))

		err := w.updateState(ctx, id, domain.WebhookState{
			Status:    domain.WebhookStatusFailed,
			Attempts:  attempt,
			LastError: &reason,
		})
		if err != nil {
			return err
		}

		return fmt.Errorf("%w: webhook failed after %d attempts: %s", queue.ErrSkipRetry, attempt, reason)
	}

	delay := RetryDelay(attempt)
	nextAt := w.now().Add(delay).UTC()

	log.WarnContext(ctx, "webhook delivery failed, scheduling retry",
		slog.Duration("delay", delay),
		slog.String("err", reason),
	)

	// The next attempt is scheduled before the failure is recorded: a
	// recorded attempt without a successor would never be delivered again.
	err := w.enqueuer.Enqueue(ctx, domain.JobTypeWebhookDelivery, &domain.WebhookPayload{
		DocumentID: id,
		Attempt:    next,
	}, WebhookDeliveryJobOptions(delay))
	if err != nil {
		return fmt.Errorf("failed to enqueue webhook retry: %w", err)
	}

	return w.updateState(ctx, id, domain.WebhookState{
		Status:        domain.WebhookStatusPending,
		Attempts:      attempt,
		NextAttemptAt: &nextAt,
		LastError:     &reason,
	})
}

func (w *WebhookDeliveryWorker) updateState(ctx context.Context, id string, state domain.WebhookState) error {
	if err := w.files.UpdateWebhookState(ctx, id, state); err != nil {
		return fmt.Errorf("failed to update webhook state: %w", err)
	}

	return nil
}
