package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/document_ingest/internal/domain"
)

const (
	TableValidRecords   = "valid_records"
	TableInvalidRecords = "invalid_records"
)

type RecordsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewRecordsRepository(pool *pgxpool.Pool) *RecordsRepository {
	return &RecordsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *RecordsRepository) SaveValidRecords(ctx context.Context, records ...*domain.ValidRecord) error {
	if len(records) == 0 {
		return nil
	}

	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableValidRecords}, []string{
		"file_id",
		"email",
		"age",
	}, pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
		return []any{
			records[i].FileID,
			records[i].Email,
			records[i].Age,
		}, nil
	}))
	if err != nil {
		return fmt.Errorf("failed to save valid records: %w", err)
	}

	if copied != int64(len(records)) {
		return copyRowsError(TableValidRecords, copied, len(records))
	}

	return nil
}

func (r *RecordsRepository) SaveInvalidRecords(ctx context.Context, records ...*domain.InvalidRecord) error {
	if len(records) == 0 {
		return nil
	}

	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableInvalidRecords}, []string{
		"file_id",
		"raw_data",
		"error_reason",
	}, pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
		return []any{
			records[i].FileID,
			records[i].RawData,
			records[i].ErrorReason,
		}, nil
	}))
	if err != nil {
		return fmt.Errorf("failed to save invalid records: %w", err)
	}

	if copied != int64(len(records)) {
		return copyRowsError(TableInvalidRecords, copied, len(records))
	}

	return nil
}

// DeleteRecords removes rows left by an interrupted run of the same file.
func (r *RecordsRepository) DeleteRecords(ctx context.Context, fileID string) error {
	db := extractDB(ctx, r.pool)

	for _, table := range []string{TableValidRecords, TableInvalidRecords} {
		sql, args, err := r.qb.
			Delete(table).
			Where(sq.Eq{"file_id": fileID}).
			ToSql()
		if err != nil {
			return createQueryError(err)
		}

		if _, err := db.Exec(ctx, sql, args...); err != nil {
			return executeQueryError(err)
		}
	}

	return nil
}

func (r *RecordsRepository) ValidRecordsByFileID(
	ctx context.Context,
	fileID string,
	limit, offset uint64,
) ([]*domain.ValidRecord, int, error) {
	total, err := r.countRecords(ctx, TableValidRecords, fileID)
	if err != nil {
		return nil, -1, err
	}

	sql, args, err := r.qb.
		Select(
			"file_id",
			"email",
			"age",
		).
		From(TableValidRecords).
		Where(sq.Eq{"file_id": fileID}).
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := extractDB(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.ValidRecord])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return records, total, nil
}

func (r *RecordsRepository) InvalidRecordsByFileID(
	ctx context.Context,
	fileID string,
	limit, offset uint64,
) ([]*domain.InvalidRecord, int, error) {
	total, err := r.countRecords(ctx, TableInvalidRecords, fileID)
	if err != nil {
		return nil, -1, err
	}

	sql, args, err := r.qb.
		Select(
			"file_id",
			"raw_data",
			"error_reason",
		).
		From(TableInvalidRecords).
		Where(sq.Eq{"file_id": fileID}).
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := extractDB(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.InvalidRecord])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return records, total, nil
}

func (r *RecordsRepository) countRecords(ctx context.Context, table, fileID string) (int, error) {
	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"file_id": fileID}).
		ToSql()
	if err != nil {
		return -1, createQueryError(err)
	}

	var total int
	if err := extractDB(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return -1, scanRowError(err)
	}

	return total, nil
}
