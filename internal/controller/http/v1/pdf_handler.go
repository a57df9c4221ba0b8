package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/kurochkinivan/document_ingest/internal/pipeline"
	"github.com/shopspring/decimal"
)

const maxAnnotateBody = 1 << 20

type PdfDocumentsRepository interface {
	CreatePdfDocument(ctx context.Context, doc *domain.PdfDocument) error
	PdfDocumentByID(ctx context.Context, id string) (*domain.PdfDocument, error)
	LatestCompletedPdfDocument(ctx context.Context) (*domain.PdfDocument, error)
	DeletePdfDocument(ctx context.Context, id string) error
}

type ParsedDataRepository interface {
	ParsedData(ctx context.Context, documentID string) (*domain.ParsedData, error)
}

type FinancialRepository interface {
	BalanceSheetByDocumentID(ctx context.Context, documentID string) (*domain.FinancialStatement, error)
}

type Annotator interface {
	Annotate(ctx context.Context, req *pipeline.AnnotateRequest) ([]byte, error)
}

type PdfHandler struct {
	log        *slog.Logger
	policy     uploadPolicy
	documents  PdfDocumentsRepository
	parsedData ParsedDataRepository
	financial  FinancialRepository
	enqueuer   Enqueuer
	annotator  Annotator
	now        func() time.Time
}

func NewPdfHandler(
	log *slog.Logger,
	uploadDir string,
	maxSize int64,
	documents PdfDocumentsRepository,
	parsedData ParsedDataRepository,
	financial FinancialRepository,
	enqueuer Enqueuer,
	annotator Annotator,
) *PdfHandler {
	return &PdfHandler{
		log: log,
		policy: uploadPolicy{
			dir:       uploadDir,
			maxSize:   maxSize,
			extension: ".pdf",
			mimeType:  "application/pdf",
		},
		documents:  documents,
		parsedData: parsedData,
		financial:  financial,
		enqueuer:   enqueuer,
		annotator:  annotator,
		now:        time.Now,
	}
}

type GetPdfResultResponse struct {
	DocumentID string `json:"documentId"`
	PageCount  int    `json:"pageCount"`
	Text       string `json:"text"`
}

type ParsedText struct {
	Text      string `json:"text"`
	PageCount int    `json:"pageCount"`
}

type GetLatestPdfResponse struct {
	DocumentID  string                     `json:"documentId"`
	Status      domain.Status              `json:"status"`
	UploadedAt  time.Time                  `json:"uploadedAt"`
	CompletedAt *time.Time                 `json:"completedAt"`
	Parsed      *ParsedText                `json:"parsed"`
	Financial   *domain.FinancialStatement `json:"financial"`
}

type AnnotateRequest struct {
	DocumentID     string     `json:"documentId"`
	CompanyName    string     `json:"companyName"`
	EngagementName string     `json:"engagementName"`
	Assets         []LineItem `json:"assets"`
	Liabilities    []LineItem `json:"liabilities"`
}

type LineItem struct {
	Name   string `json:"name"`
	Amount Amount `json:"amount"`
}

// Amount accepts a JSON number or a string such as "$1,250.00". Unparsable
// strings and null are zero.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		a.Decimal = decimal.Zero
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid amount %s: %w", raw, err)
		}

		a.Decimal = domain.ParseAmount(s)
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid amount %s", raw)
	}

	a.Decimal = d

	return nil
}

func (h *PdfHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	upload, err := h.policy.store(w, r)
	if err != nil {
		writeUploadError(w, r, h.log, err)
		return
	}

	doc := &domain.PdfDocument{Document: upload.document(h.now().UTC())}

	if err := h.documents.CreatePdfDocument(ctx, doc); err != nil {
		upload.discard(h.log)
		writeLookupError(w, r, h.log, err, "")
		return
	}

	err = h.enqueuer.Enqueue(ctx, domain.JobTypePdfIngest, &domain.IngestPayload{
		DocumentID: doc.ID,
		FilePath:   doc.StoredPath,
	}, pipeline.PdfIngestJobOptions)
	if err != nil {
		h.log.ErrorContext(ctx, "failed to enqueue pdf processing",
			slog.String("document_id", doc.ID),
			slog.String("err", err.Error()),
		)

		if err := h.documents.DeletePdfDocument(ctx, doc.ID); err != nil {
			h.log.ErrorContext(ctx, "failed to delete pdf document", slog.String("err", err.Error()))
		}
		upload.discard(h.log)

		writeError(w, http.StatusInternalServerError, "failed to enqueue pdf processing")
		return
	}

	h.log.InfoContext(ctx, "pdf document uploaded",
		slog.String("document_id", doc.ID),
		slog.String("original_name", doc.OriginalName),
		slog.Int64("size_bytes", doc.SizeBytes),
	)

	writeJSON(w, http.StatusAccepted, uploadResponse{
		ID:         doc.ID,
		Status:     doc.Status,
		UploadedAt: doc.UploadedAt,
	})
}

func (h *PdfHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := documentID(w, chi.URLParam(r, "id"), "pdf document not found")
	if !ok {
		return
	}

	doc, err := h.documents.PdfDocumentByID(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, h.log, err, "pdf document not found")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (h *PdfHandler) Result(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.completedDocument(w, r)
	if !ok {
		return
	}

	data, err := h.parsedData.ParsedData(r.Context(), doc.ID)
	if err != nil {
		writeLookupError(w, r, h.log, err, "parsed data not found")
		return
	}

	writeJSON(w, http.StatusOK, GetPdfResultResponse{
		DocumentID: doc.ID,
		PageCount:  data.PageCount,
		Text:       data.ParsedText,
	})
}

func (h *PdfHandler) Financial(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.completedDocument(w, r)
	if !ok {
		return
	}

	statement, err := h.financial.BalanceSheetByDocumentID(r.Context(), doc.ID)
	if err != nil {
		writeLookupError(w, r, h.log, err, "balance sheet data not found for this document")
		return
	}

	writeJSON(w, http.StatusOK, statement)
}

// Latest returns the most recently uploaded completed document together with
// whatever parsed and structured data it has.
func (h *PdfHandler) Latest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.documents.LatestCompletedPdfDocument(ctx)
	if err != nil {
		writeLookupError(w, r, h.log, err, "no processed pdf found")
		return
	}

	resp := GetLatestPdfResponse{
		DocumentID:  doc.ID,
		Status:      doc.Status,
		UploadedAt:  doc.UploadedAt,
		CompletedAt: doc.CompletedAt,
	}

	data, err := h.parsedData.ParsedData(ctx, doc.ID)
	switch {
	case err == nil:
		resp.Parsed = &ParsedText{Text: data.ParsedText, PageCount: data.PageCount}
	case !errors.Is(err, domain.ErrNotFound):
		writeLookupError(w, r, h.log, err, "")
		return
	}

	resp.Financial, err = h.financial.BalanceSheetByDocumentID(ctx, doc.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		writeLookupError(w, r, h.log, err, "")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PdfHandler) Annotate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AnnotateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAnnotateBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	req.DocumentID = strings.TrimSpace(req.DocumentID)
	if req.DocumentID == "" {
		writeError(w, http.StatusBadRequest, "documentId is required")
		return
	}

	id, ok := documentID(w, req.DocumentID, "pdf document not found for annotation")
	if !ok {
		return
	}
	req.DocumentID = id

	pdf, err := h.annotator.Annotate(ctx, &pipeline.AnnotateRequest{
		DocumentID:     req.DocumentID,
		CompanyName:    req.CompanyName,
		EngagementName: req.EngagementName,
		Assets:         lineItems(req.Assets),
		Liabilities:    lineItems(req.Liabilities),
	})
	if err != nil {
		writeLookupError(w, r, h.log, err, "pdf document not found for annotation")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="annotated-%s.pdf"`, req.DocumentID))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Header().Set("X-Document-Id", req.DocumentID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// completedDocument writes the error response itself and reports false when
// the document is unknown or not COMPLETED yet.
func (h *PdfHandler) completedDocument(w http.ResponseWriter, r *http.Request) (*domain.PdfDocument, bool) {
	id, ok := documentID(w, chi.URLParam(r, "id"), "pdf document not found")
	if !ok {
		return nil, false
	}

	doc, err := h.documents.PdfDocumentByID(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, h.log, err, "pdf document not found")
		return nil, false
	}

	if doc.Status != domain.StatusCompleted {
		writeError(w, http.StatusConflict, "pdf processing not completed")
		return nil, false
	}

	return doc, true
}

func lineItems(items []LineItem) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.LineItem{Name: item.Name, Amount: item.Amount.Decimal})
	}

	return out
}
