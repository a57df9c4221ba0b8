package pipeline

import (
	"time"

	"github.com/kurochkinivan/document_ingest/internal/queue"
)

// Queue options of the ingest jobs created on upload.
var (
	CsvIngestJobOptions = queue.Options{MaxAttempts: 1}
	PdfIngestJobOptions = queue.Options{
		MaxAttempts: 3,
		Backoff:     queue.Backoff{Type: queue.BackoffFixed, Delay: time.Minute},
	}
)

// WebhookDeliveryJobOptions schedules one delivery attempt. Failed
// deliveries are rescheduled by the worker itself; the queue only retries
// when the worker could not record or schedule the outcome.
func WebhookDeliveryJobOptions(delay time.Duration) queue.Options {
	return queue.Options{
		Delay:       delay,
		MaxAttempts: 3,
		Backoff:     queue.Backoff{Type: queue.BackoffExponential, Delay: 10 * time.Second},
	}
}
