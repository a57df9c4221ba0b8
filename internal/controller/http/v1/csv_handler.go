package v1

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/kurochkinivan/document_ingest/internal/pipeline"
)

const (
	recordsKindValid   = "valid"
	recordsKindInvalid = "invalid"
)

type CsvFilesRepository interface {
	CreateCsvFile(ctx context.Context, file *domain.CsvFile) error
	CsvFileByID(ctx context.Context, id string) (*domain.CsvFile, error)
	DeleteCsvFile(ctx context.Context, id string) error
}

type RecordsRepository interface {
	ValidRecordsByFileID(ctx context.Context, fileID string, limit, offset uint64) ([]*domain.ValidRecord, int, error)
	InvalidRecordsByFileID(ctx context.Context, fileID string, limit, offset uint64) ([]*domain.InvalidRecord, int, error)
}

type CsvHandler struct {
	log      *slog.Logger
	policy   uploadPolicy
	files    CsvFilesRepository
	records  RecordsRepository
	enqueuer Enqueuer
	now      func() time.Time
}

func NewCsvHandler(
	log *slog.Logger,
	uploadDir string,
	maxSize int64,
	files CsvFilesRepository,
	records RecordsRepository,
	enqueuer Enqueuer,
) *CsvHandler {
	return &CsvHandler{
		log: log,
		policy: uploadPolicy{
			dir:       uploadDir,
			maxSize:   maxSize,
			extension: ".csv",
			mimeType:  "text/csv",
		},
		files:    files,
		records:  records,
		enqueuer: enqueuer,
		now:      time.Now,
	}
}

type GetCsvRecordsResponse struct {
	Kind       string     `json:"kind"`
	Records    any        `json:"records"`
	Pagination Pagination `json:"pagination"`
}

func (h *CsvHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	upload, err := h.policy.store(w, r)
	if err != nil {
		writeUploadError(w, r, h.log, err)
		return
	}

	file := &domain.CsvFile{
		Document:      upload.document(h.now().UTC()),
		WebhookStatus: domain.WebhookStatusPending,
	}

	if err := h.files.CreateCsvFile(ctx, file); err != nil {
		upload.discard(h.log)
		writeLookupError(w, r, h.log, err, "")
		return
	}

	err = h.enqueuer.Enqueue(ctx, domain.JobTypeCsvIngest, &domain.IngestPayload{
		DocumentID: file.ID,
		FilePath:   file.StoredPath,
	}, pipeline.CsvIngestJobOptions)
	if err != nil {
		h.log.ErrorContext(ctx, "failed to enqueue csv ingestion",
			slog.String("document_id", file.ID),
			slog.String("err", err.Error()),
		)

		if err := h.files.DeleteCsvFile(ctx, file.ID); err != nil {
			h.log.ErrorContext(ctx, "failed to delete csv file", slog.String("err", err.Error()))
		}
		upload.discard(h.log)

		writeError(w, http.StatusInternalServerError, "failed to enqueue csv ingestion")
		return
	}

	h.log.InfoContext(ctx, "csv file uploaded",
		slog.String("document_id", file.ID),
		slog.String("original_name", file.OriginalName),
		slog.Int64("size_bytes", file.SizeBytes),
	)

	writeJSON(w, http.StatusAccepted, uploadResponse{
		ID:         file.ID,
		Status:     file.Status,
		UploadedAt: file.UploadedAt,
	})
}

func (h *CsvHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := documentID(w, chi.URLParam(r, "id"), "csv file not found")
	if !ok {
		return
	}

	file, err := h.files.CsvFileByID(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, h.log, err, "csv file not found")
		return
	}

	writeJSON(w, http.StatusOK, file)
}

// Records pages through the stored rows of a file. The kind query parameter
// selects valid (default) or invalid rows.
func (h *CsvHandler) Records(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fileID, ok := documentID(w, chi.URLParam(r, "id"), "csv file not found")
	if !ok {
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = recordsKindValid
	}
	if kind != recordsKindValid && kind != recordsKindInvalid {
		writeError(w, http.StatusBadRequest, "invalid kind, must be valid or invalid")
		return
	}

	if _, err := h.files.CsvFileByID(ctx, fileID); err != nil {
		writeLookupError(w, r, h.log, err, "csv file not found")
		return
	}

	offset := (page - 1) * limit

	var (
		records any
		total   int
	)

	switch kind {
	case recordsKindValid:
		records, total, err = h.records.ValidRecordsByFileID(ctx, fileID, limit, offset)
	case recordsKindInvalid:
		records, total, err = h.records.InvalidRecordsByFileID(ctx, fileID, limit, offset)
	}
	if err != nil {
		writeLookupError(w, r, h.log, err, "")
		return
	}

	writeJSON(w, http.StatusOK, GetCsvRecordsResponse{
		Kind:       kind,
		Records:    records,
		Pagination: newPagination(page, limit, total),
	})
}
