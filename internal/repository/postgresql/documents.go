package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/kurochkinivan/document_ingest/internal/domain"
)

var documentColumns = []string{
	"id",
	"original_name",
	"stored_path",
	"mime_type",
	"size_bytes",
	"status",
	"uploaded_at",
	"completed_at",
	"error_reason",
}

func documentValues(doc *domain.Document) []any {
	return []any{
		doc.ID,
		doc.OriginalName,
		doc.StoredPath,
		doc.MimeType,
		doc.SizeBytes,
		doc.Status,
		doc.UploadedAt,
		doc.CompletedAt,
		doc.ErrorReason,
	}
}

// claimDocument moves a PENDING document to PROCESSING. It reports false when
// the document is in any other state.
func claimDocument(ctx context.Context, db DBTX, qb sq.StatementBuilderType, table, id string) (bool, error) {
	sql, args, err := qb.
		Update(table).
		Set("status", domain.StatusProcessing).
		Where(sq.Eq{
			"id":     id,
			"status": domain.StatusPending,
		}).
		ToSql()
	if err != nil {
		return false, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return false, executeQueryError(err)
	}

	return tag.RowsAffected() == 1, nil
}

func deleteDocument(ctx context.Context, db DBTX, qb sq.StatementBuilderType, table, id string) error {
	sql, args, err := qb.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}
