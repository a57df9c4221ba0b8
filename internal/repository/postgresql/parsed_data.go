package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/document_ingest/internal/domain"
)

const TableParsedData = "pdf_parsed_data"

type ParsedDataRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewParsedDataRepository(pool *pgxpool.Pool) *ParsedDataRepository {
	return &ParsedDataRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ParsedDataRepository) UpsertParsedData(ctx context.Context, data *domain.ParsedData) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableParsedData).
		Columns(
			"document_id",
			"parsed_text",
			"page_count",
		).
		Values(
			data.DocumentID,
			data.ParsedText,
			data.PageCount,
		).
		Suffix(`ON CONFLICT (document_id) DO UPDATE SET
			parsed_text = EXCLUDED.parsed_text,
			page_count = EXCLUDED.page_count
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *ParsedDataRepository) ParsedData(ctx context.Context, documentID string) (*domain.ParsedData, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"document_id",
			"parsed_text",
			"page_count",
			"created_at",
		).
		From(TableParsedData).
		Where(sq.Eq{"document_id": documentID}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	data, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.ParsedData])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return data, nil
}
