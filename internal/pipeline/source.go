package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/kurochkinivan/document_ingest/internal/queue"
)

// removeSource deletes an uploaded file once its job is settled. Failures are
// only logged.
func removeSource(log *slog.Logger, path string) {
	if path == "" {
		return
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("failed to delete source file",
			slog.String("path", path),
			slog.String("err", err.Error()),
		)
	}
}

// lookupError turns a missing record into a terminal job error.
func lookupError(kind, id string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s %s not found", queue.ErrSkipRetry, kind, id)
	}

	return fmt.Errorf("failed to get %s %s: %w", kind, id, err)
}

func decodePayload(job *queue.Job, v any) error {
	if err := job.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", queue.ErrSkipRetry, err)
	}

	return nil
}
