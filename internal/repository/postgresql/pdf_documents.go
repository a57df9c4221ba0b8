package postgresql

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/document_ingest/internal/domain"
)

const TablePdfDocuments = "pdf_documents"

type PdfDocumentsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewPdfDocumentsRepository(pool *pgxpool.Pool) *PdfDocumentsRepository {
	return &PdfDocumentsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PdfDocumentsRepository) CreatePdfDocument(ctx context.Context, doc *domain.PdfDocument) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TablePdfDocuments).
		Columns(documentColumns...).
		Values(documentValues(&doc.Document)...).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *PdfDocumentsRepository) PdfDocumentByID(ctx context.Context, id string) (*domain.PdfDocument, error) {
	return r.one(ctx, r.qb.
		Select(documentColumns...).
		From(TablePdfDocuments).
		Where(sq.Eq{"id": id}),
	)
}

// LatestCompletedPdfDocument returns the most recently uploaded completed
// document.
func (r *PdfDocumentsRepository) LatestCompletedPdfDocument(ctx context.Context) (*domain.PdfDocument, error) {
	return r.one(ctx, r.qb.
		Select(documentColumns...).
		From(TablePdfDocuments).
		Where(sq.Eq{"status": domain.StatusCompleted}).
		OrderBy("uploaded_at DESC").
		Limit(1),
	)
}

func (r *PdfDocumentsRepository) one(ctx context.Context, query sq.SelectBuilder) (*domain.PdfDocument, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	doc, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.PdfDocument])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return doc, nil
}

func (r *PdfDocumentsRepository) ClaimPdfDocument(ctx context.Context, id string) (bool, error) {
	return claimDocument(ctx, extractDB(ctx, r.pool), r.qb, TablePdfDocuments, id)
}

func (r *PdfDocumentsRepository) CompletePdfDocument(ctx context.Context, id string, completedAt time.Time) error {
	return r.finish(ctx, id, map[string]any{
		"status":       domain.StatusCompleted,
		"completed_at": completedAt,
		"error_reason": nil,
	})
}

func (r *PdfDocumentsRepository) FailPdfDocument(ctx context.Context, id, reason string) error {
	return r.finish(ctx, id, map[string]any{
		"status":       domain.StatusFailed,
		"error_reason": reason,
	})
}

func (r *PdfDocumentsRepository) finish(ctx context.Context, id string, set map[string]any) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TablePdfDocuments).
		SetMap(set).
		Where(sq.Eq{
			"id":     id,
			"status": domain.StatusProcessing,
		}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *PdfDocumentsRepository) DeletePdfDocument(ctx context.Context, id string) error {
	return deleteDocument(ctx, extractDB(ctx, r.pool), r.qb, TablePdfDocuments, id)
}
