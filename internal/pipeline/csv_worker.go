package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/kurochkinivan/document_ingest/internal/queue"
	"golang.org/x/sync/errgroup"
)

const DefaultBatchSize = 1000

// CsvIngestWorker validates the rows of an uploaded CSV file and stores them
// as valid and invalid records.
type CsvIngestWorker struct {
	log       *slog.Logger
	files     CsvFileStore
	records   RecordsSaver
	enqueuer  Enqueuer
	batchSize int
	now       func() time.Time
}

func NewCsvIngestWorker(
	log *slog.Logger,
	files CsvFileStore,
	records RecordsSaver,
	enqueuer Enqueuer,
	batchSize int,
) *CsvIngestWorker {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &CsvIngestWorker{
		log:       log,
		files:     files,
		records:   records,
		enqueuer:  enqueuer,
		batchSize: batchSize,
		now:       time.Now,
	}
}

func (w *CsvIngestWorker) Handle(ctx context.Context, job *queue.Job) error {
	var payload domain.IngestPayload
	if err := decodePayload(job, &payload); err != nil {
		return err
	}

	return w.process(ctx, &payload, job.Recovered)
}

func (w *CsvIngestWorker) Process(ctx context.Context, payload *domain.IngestPayload) error {
	return w.process(ctx, payload, false)
}

// process ingests a PENDING file. A recovered delivery may also resume a
// file its expired predecessor left PROCESSING; the partial records of that
// run are replaced.
func (w *CsvIngestWorker) process(ctx context.Context, payload *domain.IngestPayload, recovered bool) error {
	log := w.log.With(slog.String("document_id", payload.DocumentID))

	file, err := w.files.CsvFileByID(ctx, payload.DocumentID)
	if err != nil {
		return lookupError("csv file", payload.DocumentID, err)
	}

	switch {
	case file.Status == domain.StatusPending:
		claimed, err := w.files.ClaimCsvFile(ctx, file.ID)
		if err != nil {
			return fmt.Errorf("failed to claim csv file: %w", err)
		}
		if !claimed {
			log.InfoContext(ctx, "csv file was claimed concurrently, skipping")
			return nil
		}
	case file.Status == domain.StatusProcessing && recovered:
		log.WarnContext(ctx, "resuming csv file of an interrupted job")
	default:
		log.InfoContext(ctx, "csv file is not pending, skipping", slog.String("status", string(file.Status)))
		return nil
	}

	defer removeSource(log, payload.FilePath)

	log.InfoContext(ctx, "csv ingestion started")

	counts, err := w.ingest(ctx, file.ID, payload.FilePath)
	if err == nil {
		err = w.files.CompleteCsvFile(ctx, file.ID, counts, w.now().UTC())
	}
	if err != nil {
		w.fail(ctx, log, file.ID, err)
		return fmt.Errorf("failed to ingest csv file: %w", err)
	}

	log.InfoContext(ctx, "csv ingestion completed",
		slog.Int("total_rows", counts.Total),
		slog.Int("valid_rows", counts.Valid),
		slog.Int("invalid_rows", counts.Invalid),
	)

	err = w.enqueuer.Enqueue(ctx, domain.JobTypeWebhookDelivery, &domain.WebhookPayload{
		DocumentID: file.ID,
		Attempt:    1,
	}, WebhookDeliveryJobOptions(0))
	if err != nil {
		reason := "failed to enqueue webhook delivery: " + err.Error()
		state := domain.WebhookState{Status: domain.WebhookStatusFailed, LastError: &reason}

		if err := w.files.UpdateWebhookState(ctx, file.ID, state); err != nil {
			log.ErrorContext(ctx, "failed to update webhook state", slog.String("err", err.Error()))
		}

		return fmt.Errorf("failed to enqueue webhook delivery: %w", err)
	}

	return nil
}

func (w *CsvIngestWorker) fail(ctx context.Context, log *slog.Logger, id string, cause error) {
	log.ErrorContext(ctx, "csv ingestion failed", slog.String("err", cause.Error()))

	if err := w.files.FailCsvFile(ctx, id, cause.Error()); err != nil {
		log.ErrorContext(ctx, "failed to mark csv file as failed", slog.String("err", err.Error()))
	}
}

func (w *CsvIngestWorker) ingest(ctx context.Context, fileID, path string) (_ domain.RowCounts, err error) {
	var counts domain.RowCounts

	f, err := os.Open(path)
	if err != nil {
		return counts, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	// Rows of an interrupted earlier run would be counted twice.
	if err := w.records.DeleteRecords(ctx, fileID); err != nil {
		return counts, fmt.Errorf("failed to clear previous records: %w", err)
	}

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return counts, nil
	}
	if err != nil {
		return counts, fmt.Errorf("failed to read csv header: %w", err)
	}
	header = normalizeHeader(header)

	dec, err := csvutil.NewDecoder(reader, header...)
	if err != nil {
		return counts, fmt.Errorf("failed to create decoder: %w", err)
	}

	valid := make([]*domain.ValidRecord, 0, w.batchSize)
	invalid := make([]*domain.InvalidRecord, 0, w.batchSize)

	for {
		var row domain.CsvRow

		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, csvutil.ErrFieldCount) {
			row = rowFromRecord(header, dec.Record())
		} else if err != nil {
			return counts, fmt.Errorf("failed to decode row #%d: %w", counts.Total+1, err)
		}

		counts.Total++

		verdict := ValidateRow(row)
		if verdict.Valid() {
			counts.Valid++
			valid = append(valid, &domain.ValidRecord{
				FileID: fileID,
				Email:  verdict.Email,
				Age:    verdict.Age,
			})
		} else {
			counts.Invalid++
			invalid = append(invalid, &domain.InvalidRecord{
				FileID:      fileID,
				RawData:     map[string]string{"email": row.Email, "age": row.Age},
				ErrorReason: verdict.Reason,
			})
		}

		if len(valid)+len(invalid) >= w.batchSize {
			if err := w.flush(ctx, valid, invalid); err != nil {
				return counts, err
			}

			valid = valid[:0]
			invalid = invalid[:0]
		}
	}

	if err := w.flush(ctx, valid, invalid); err != nil {
		return counts, err
	}

	return counts, nil
}

// flush writes both batches in parallel and returns once both are stored.
func (w *CsvIngestWorker) flush(ctx context.Context, valid []*domain.ValidRecord, invalid []*domain.InvalidRecord) error {
	erg, ctx := errgroup.WithContext(ctx)

	if len(valid) > 0 {
		erg.Go(func() error {
			return w.records.SaveValidRecords(ctx, valid...)
		})
	}

	if len(invalid) > 0 {
		erg.Go(func() error {
			return w.records.SaveInvalidRecords(ctx, invalid...)
		})
	}

	if err := erg.Wait(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}

	return nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}

	return out
}

// rowFromRecord picks the known columns out of a record whose length does not
// match the header.
func rowFromRecord(header, record []string) domain.CsvRow {
	var row domain.CsvRow
	for i, name := range header {
		if i >= len(record) {
			break
		}

		switch name {
		case "email":
			row.Email = record[i]
		case "age":
			row.Age = record[i]
		}
	}

	return row
}
