package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/kurochkinivan/document_ingest/internal/queue"
)

// PdfIngestWorker extracts the text of an uploaded PDF and, when the text
// holds a balance sheet, stores it in structured form.
type PdfIngestWorker struct {
	log        *slog.Logger
	documents  PdfDocumentStore
	parsedData ParsedDataStore
	extractor  TextExtractor
	reconciler StatementReconciler
	now        func() time.Time
}

func NewPdfIngestWorker(
	log *slog.Logger,
	documents PdfDocumentStore,
	parsedData ParsedDataStore,
	extractor TextExtractor,
	reconciler StatementReconciler,
) *PdfIngestWorker {
	return &PdfIngestWorker{
		log:        log,
		documents:  documents,
		parsedData: parsedData,
		extractor:  extractor,
		reconciler: reconciler,
		now:        time.Now,
	}
}

func (w *PdfIngestWorker) Handle(ctx context.Context, job *queue.Job) error {
	var payload domain.IngestPayload
	if err := decodePayload(job, &payload); err != nil {
		return err
	}

	return w.process(ctx, &payload, job.Recovered)
}

func (w *PdfIngestWorker) Process(ctx context.Context, payload *domain.IngestPayload) error {
	return w.process(ctx, payload, false)
}

// process settles the document exactly once: COMPLETED, or FAILED with the
// error as reason. A recovered delivery may resume a document its expired
// predecessor left PROCESSING.
func (w *PdfIngestWorker) process(ctx context.Context, payload *domain.IngestPayload, recovered bool) error {
	log := w.log.With(slog.String("document_id", payload.DocumentID))

	doc, err := w.documents.PdfDocumentByID(ctx, payload.DocumentID)
	if err != nil {
		return lookupError("pdf document", payload.DocumentID, err)
	}

	switch {
	case doc.Status == domain.StatusPending:
		claimed, err := w.documents.ClaimPdfDocument(ctx, doc.ID)
		if err != nil {
			return fmt.Errorf("failed to claim pdf document: %w", err)
		}
		if !claimed {
			log.InfoContext(ctx, "pdf document was claimed concurrently, skipping")
			return nil
		}
	case doc.Status == domain.StatusProcessing && recovered:
		log.WarnContext(ctx, "resuming pdf document of an interrupted job")
	default:
		log.InfoContext(ctx, "pdf document is not pending, skipping", slog.String("status", string(doc.Status)))
		return nil
	}

	defer removeSource(log, payload.FilePath)

	log.InfoContext(ctx, "pdf processing started")

	pageCount, err := w.extract(ctx, log, doc.ID, payload.FilePath)
	if err == nil {
		err = w.documents.CompletePdfDocument(ctx, doc.ID, w.now().UTC())
	}
	if err != nil {
		log.ErrorContext(ctx, "pdf processing failed", slog.String("err", err.Error()))

		if err := w.documents.FailPdfDocument(ctx, doc.ID, err.Error()); err != nil {
			log.ErrorContext(ctx, "failed to mark pdf document as failed", slog.String("err", err.Error()))
		}

		return fmt.Errorf("failed to process pdf document: %w", err)
	}

	log.InfoContext(ctx, "pdf processing completed", slog.Int("pages", pageCount))

	return nil
}

func (w *PdfIngestWorker) extract(ctx context.Context, log *slog.Logger, id, path string) (int, error) {
	extracted, err := w.extractor.Extract(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("failed to extract text: %w", err)
	}

	err = w.parsedData.UpsertParsedData(ctx, &domain.ParsedData{
		DocumentID: id,
		ParsedText: extracted.Text,
		PageCount:  extracted.PageCount,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save parsed data: %w", err)
	}

	statement, err := ParseStatement(extracted.Text)
	if errors.Is(err, ErrStatementNotFound) {
		log.InfoContext(ctx, "no balance sheet found in document")
		return extracted.PageCount, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to parse statement: %w", err)
	}

	if _, err := w.reconciler.Reconcile(ctx, id, statement, ReconcileOptions{}); err != nil {
		return 0, err
	}

	return extracted.PageCount, nil
}
