package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kurochkinivan/document_ingest/internal/domain"
)

type AnnotateRequest struct {
	DocumentID     string
	CompanyName    string
	EngagementName string
	Assets         []domain.LineItem
	Liabilities    []domain.LineItem
}

// Annotator replaces the balance sheet of a completed PDF with edited line
// items and renders the result as a new PDF.
type Annotator struct {
	log        *slog.Logger
	documents  PdfDocumentFinder
	reconciler StatementReconciler
	generator  ReportGenerator
}

func NewAnnotator(
	log *slog.Logger,
	documents PdfDocumentFinder,
	reconciler StatementReconciler,
	generator ReportGenerator,
) *Annotator {
	return &Annotator{
		log:        log,
		documents:  documents,
		reconciler: reconciler,
		generator:  generator,
	}
}

// Annotate returns domain.ErrNotFound for unknown documents and
// domain.ErrNotCompleted for documents still being processed or failed.
func (a *Annotator) Annotate(ctx context.Context, req *AnnotateRequest) ([]byte, error) {
	doc, err := a.documents.PdfDocumentByID(ctx, req.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pdf document: %w", err)
	}

	if doc.Status != domain.StatusCompleted {
		return nil, domain.ErrNotCompleted
	}

	company := firstNonEmpty(req.CompanyName, doc.OriginalName, domain.DefaultCompanyName)
	engagement := firstNonEmpty(req.EngagementName, domain.DefaultEngagementName)

	// Totals are always recomputed from the submitted items.
	statement, err := a.reconciler.Reconcile(ctx, doc.ID, &domain.Statement{
		CompanyName:    company,
		EngagementName: engagement,
		Assets:         req.Assets,
		Liabilities:    req.Liabilities,
	}, ReconcileOptions{WriteParsedText: true})
	if err != nil {
		return nil, err
	}

	pdf, err := a.generator.GenerateStatement(statement)
	if err != nil {
		return nil, fmt.Errorf("failed to render statement: %w", err)
	}

	a.log.InfoContext(ctx, "document annotated",
		slog.String("document_id", doc.ID),
		slog.Int("bytes", len(pdf)),
	)

	return pdf, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}
