package postgresql

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/document_ingest/internal/domain"
)

const TableCsvFiles = "csv_files"

var csvFileColumns = []string{
	"total_rows",
	"valid_rows",
	"invalid_rows",
	"webhook_status",
	"webhook_attempts",
	"next_webhook_at",
	"last_webhook_error",
}

type CsvFilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewCsvFilesRepository(pool *pgxpool.Pool) *CsvFilesRepository {
	return &CsvFilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CsvFilesRepository) CreateCsvFile(ctx context.Context, file *domain.CsvFile) error {
	db := extractDB(ctx, r.pool)

	values := append(documentValues(&file.Document),
		file.TotalRows,
		file.ValidRows,
		file.InvalidRows,
		file.WebhookStatus,
		file.WebhookAttempts,
		file.NextWebhookAt,
		file.LastWebhookError,
	)

	sql, args, err := r.qb.
		Insert(TableCsvFiles).
		Columns(append(documentColumns, csvFileColumns...)...).
		Values(values...).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *CsvFilesRepository) CsvFileByID(ctx context.Context, id string) (*domain.CsvFile, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(append(documentColumns, csvFileColumns...)...).
		From(TableCsvFiles).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	file, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.CsvFile])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return file, nil
}

func (r *CsvFilesRepository) ClaimCsvFile(ctx context.Context, id string) (bool, error) {
	return claimDocument(ctx, extractDB(ctx, r.pool), r.qb, TableCsvFiles, id)
}

func (r *CsvFilesRepository) CompleteCsvFile(ctx context.Context, id string, counts domain.RowCounts, completedAt time.Time) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableCsvFiles).
		SetMap(map[string]any{
			"status":       domain.StatusCompleted,
			"total_rows":   counts.Total,
			"valid_rows":   counts.Valid,
			"invalid_rows": counts.Invalid,
			"completed_at": completedAt,
			"error_reason": nil,
		}).
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

// FailCsvFile marks the file FAILED. No webhook will be delivered for it, so
// the webhook state fails with the same reason.
func (r *CsvFilesRepository) FailCsvFile(ctx context.Context, id, reason string) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableCsvFiles).
		SetMap(map[string]any{
			"status":             domain.StatusFailed,
			"error_reason":       reason,
			"webhook_status":     domain.WebhookStatusFailed,
			"last_webhook_error": reason,
		}).
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

func (r *CsvFilesRepository) UpdateWebhookState(ctx context.Context, id string, state domain.WebhookState) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableCsvFiles).
		SetMap(map[string]any{
			"webhook_status":     state.Status,
			"webhook_attempts":   state.Attempts,
			"next_webhook_at":    state.NextAttemptAt,
			"last_webhook_error": state.LastError,
		}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *CsvFilesRepository) DeleteCsvFile(ctx context.Context, id string) error {
	return deleteDocument(ctx, extractDB(ctx, r.pool), r.qb, TableCsvFiles, id)
}
