package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	TableCompanies         = "companies"
	TableEngagements       = "engagements"
	TableCategories        = "categories"
	TableCategoryItems     = "category_items"
	TableBalanceSheets     = "balance_sheets"
	TableBalanceSheetItems = "balance_sheet_items"
)

type FinancialRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewFinancialRepository(pool *pgxpool.Pool) *FinancialRepository {
	return &FinancialRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *FinancialRepository) UpsertCompany(ctx context.Context, name string) (int64, error) {
	return r.upsertID(ctx, r.qb.
		Insert(TableCompanies).
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id"),
	)
}

func (r *FinancialRepository) UpsertEngagement(ctx context.Context, companyID int64, name string) (int64, error) {
	return r.upsertID(ctx, r.qb.
		Insert(TableEngagements).
		Columns("company_id", "name").
		Values(companyID, name).
		Suffix("ON CONFLICT (company_id, name) DO UPDATE SET name = EXCLUDED.name RETURNING id"),
	)
}

func (r *FinancialRepository) UpsertCategory(ctx context.Context, name string) (int64, error) {
	return r.upsertID(ctx, r.qb.
		Insert(TableCategories).
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id"),
	)
}

func (r *FinancialRepository) UpsertCategoryItem(ctx context.Context, categoryID int64, name string) (int64, error) {
	return r.upsertID(ctx, r.qb.
		Insert(TableCategoryItems).
		Columns("category_id", "name").
		Values(categoryID, name).
		Suffix("ON CONFLICT (category_id, name) DO UPDATE SET name = EXCLUDED.name RETURNING id"),
	)
}

// UpsertBalanceSheet creates or replaces the balance sheet of a document.
func (r *FinancialRepository) UpsertBalanceSheet(
	ctx context.Context,
	documentID string,
	engagementID int64,
	totals domain.Totals,
) (int64, error) {
	return r.upsertID(ctx, r.qb.
		Insert(TableBalanceSheets).
		Columns(
			"document_id",
			"engagement_id",
			"total_asset_amount",
			"total_liability_amount",
		).
		Values(
			documentID,
			engagementID,
			totals.Assets.StringFixed(domain.AmountPlaces),
			totals.Liabilities.StringFixed(domain.AmountPlaces),
		).
		Suffix(`ON CONFLICT (document_id) DO UPDATE SET
			engagement_id = EXCLUDED.engagement_id,
			total_asset_amount = EXCLUDED.total_asset_amount,
			total_liability_amount = EXCLUDED.total_liability_amount
			RETURNING id
		`),
	)
}

func (r *FinancialRepository) UpsertBalanceSheetItem(
	ctx context.Context,
	balanceSheetID, categoryID, categoryItemID int64,
	amount decimal.Decimal,
) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableBalanceSheetItems).
		Columns(
			"balance_sheet_id",
			"category_id",
			"category_item_id",
			"amount",
		).
		Values(
			balanceSheetID,
			categoryID,
			categoryItemID,
			amount.StringFixed(domain.AmountPlaces),
		).
		Suffix(`ON CONFLICT (balance_sheet_id, category_item_id) DO UPDATE SET
			category_id = EXCLUDED.category_id,
			amount = EXCLUDED.amount
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

// DeleteStaleBalanceSheetItems removes the sheet's items of one category whose
// category item is not in keep. An empty keep clears the category.
func (r *FinancialRepository) DeleteStaleBalanceSheetItems(
	ctx context.Context,
	balanceSheetID, categoryID int64,
	keep []int64,
) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableBalanceSheetItems).
		Where(sq.Eq{
			"balance_sheet_id": balanceSheetID,
			"category_id":      categoryID,
		}).
		Where(sq.NotEq{"category_item_id": keep}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}

func (r *FinancialRepository) upsertID(ctx context.Context, query sq.InsertBuilder) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	var id int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, scanRowError(err)
	}

	return id, nil
}

type balanceSheetRow struct {
	ID                   int64  `db:"id"`
	CompanyID            int64  `db:"company_id"`
	CompanyName          string `db:"company_name"`
	EngagementID         int64  `db:"engagement_id"`
	EngagementName       string `db:"engagement_name"`
	TotalAssetAmount     string `db:"total_asset_amount"`
	TotalLiabilityAmount string `db:"total_liability_amount"`
}

type balanceSheetItemRow struct {
	Category string `db:"category"`
	Name     string `db:"name"`
	Amount   string `db:"amount"`
}

// BalanceSheetByDocumentID returns domain.ErrNotFound when the document has no
// structured data.
func (r *FinancialRepository) BalanceSheetByDocumentID(ctx context.Context, documentID string) (*domain.FinancialStatement, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"bs.id AS id",
			"c.id AS company_id",
			"c.name AS company_name",
			"e.id AS engagement_id",
			"e.name AS engagement_name",
			"bs.total_asset_amount::text AS total_asset_amount",
			"bs.total_liability_amount::text AS total_liability_amount",
		).
		From(TableBalanceSheets + " bs").
		Join(TableEngagements + " e ON e.id = bs.engagement_id").
		Join(TableCompanies + " c ON c.id = e.company_id").
		Where(sq.Eq{"bs.document_id": documentID}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	sheet, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[balanceSheetRow])
	if err != nil {
		return nil, collectRowsError(err)
	}

	sql, args, err = r.qb.
		Select(
			"cat.name AS category",
			"ci.name AS name",
			"bsi.amount::text AS amount",
		).
		From(TableBalanceSheetItems + " bsi").
		Join(TableCategoryItems + " ci ON ci.id = bsi.category_item_id").
		Join(TableCategories + " cat ON cat.id = bsi.category_id").
		Where(sq.Eq{"bsi.balance_sheet_id": sheet.ID}).
		OrderBy("bsi.id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err = db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[balanceSheetItemRow])
	if err != nil {
		return nil, collectRowsError(err)
	}

	statement := &domain.FinancialStatement{
		DocumentID: documentID,
		Company:    domain.Company{ID: sheet.CompanyID, Name: sheet.CompanyName},
		Engagement: domain.Engagement{ID: sheet.EngagementID, CompanyID: sheet.CompanyID, Name: sheet.EngagementName},
		Categories: map[string][]domain.LineItem{
			domain.CategoryAssets:      {},
			domain.CategoryLiabilities: {},
		},
	}

	if statement.Totals.Assets, err = decimal.NewFromString(sheet.TotalAssetAmount); err != nil {
		return nil, fmt.Errorf("failed to parse total assets: %w", err)
	}
	if statement.Totals.Liabilities, err = decimal.NewFromString(sheet.TotalLiabilityAmount); err != nil {
		return nil, fmt.Errorf("failed to parse total liabilities: %w", err)
	}

	for _, item := range items {
		amount, err := decimal.NewFromString(item.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount of %q: %w", item.Name, err)
		}

		statement.Categories[item.Category] = append(statement.Categories[item.Category], domain.LineItem{
			Name:   item.Name,
			Amount: amount,
		})
	}

	return statement, nil
}
