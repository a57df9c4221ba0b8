package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/document_ingest/internal/domain"
)

type ReconcileOptions struct {
	// WriteParsedText replaces the document's parsed text with the rendered
	// statement.
	WriteParsedText bool
}

// Reconciler makes the stored balance sheet of a document match a statement
// exactly. Items missing from the statement are deleted.
type Reconciler struct {
	log        *slog.Logger
	financial  FinancialStore
	parsedData ParsedDataStore
	transactor Transactor
}

func NewReconciler(
	log *slog.Logger,
	financial FinancialStore,
	parsedData ParsedDataStore,
	transactor Transactor,
) *Reconciler {
	return &Reconciler{
		log:        log,
		financial:  financial,
		parsedData: parsedData,
		transactor: transactor,
	}
}

// Reconcile stores the normalized statement in one transaction and returns it.
func (r *Reconciler) Reconcile(
	ctx context.Context,
	documentID string,
	statement *domain.Statement,
	opts ReconcileOptions,
) (*domain.Statement, error) {
	normalized := statement.Normalize()
	if normalized.CompanyName == "" {
		normalized.CompanyName = domain.DefaultCompanyName
	}
	if normalized.EngagementName == "" {
		normalized.EngagementName = domain.DefaultEngagementName
	}

	err := r.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		companyID, err := r.financial.UpsertCompany(ctx, normalized.CompanyName)
		if err != nil {
			return fmt.Errorf("failed to upsert company: %w", err)
		}

		engagementID, err := r.financial.UpsertEngagement(ctx, companyID, normalized.EngagementName)
		if err != nil {
			return fmt.Errorf("failed to upsert engagement: %w", err)
		}

		assetsID, err := r.financial.UpsertCategory(ctx, domain.CategoryAssets)
		if err != nil {
			return fmt.Errorf("failed to upsert category %q: %w", domain.CategoryAssets, err)
		}

		liabilitiesID, err := r.financial.UpsertCategory(ctx, domain.CategoryLiabilities)
		if err != nil {
			return fmt.Errorf("failed to upsert category %q: %w", domain.CategoryLiabilities, err)
		}

		sheetID, err := r.financial.UpsertBalanceSheet(ctx, documentID, engagementID, *normalized.Totals)
		if err != nil {
			return fmt.Errorf("failed to upsert balance sheet: %w", err)
		}

		if err := r.syncItems(ctx, sheetID, assetsID, normalized.Assets); err != nil {
			return err
		}

		if err := r.syncItems(ctx, sheetID, liabilitiesID, normalized.Liabilities); err != nil {
			return err
		}

		if opts.WriteParsedText {
			return r.writeParsedText(ctx, documentID, normalized)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile balance sheet: %w", err)
	}

	r.log.DebugContext(ctx, "balance sheet reconciled",
		slog.String("document_id", documentID),
		slog.Int("assets", len(normalized.Assets)),
		slog.Int("liabilities", len(normalized.Liabilities)),
	)

	return normalized, nil
}

func (r *Reconciler) syncItems(ctx context.Context, sheetID, categoryID int64, items []domain.LineItem) error {
	keep := make([]int64, 0, len(items))

	for _, item := range items {
		itemID, err := r.financial.UpsertCategoryItem(ctx, categoryID, item.Name)
		if err != nil {
			return fmt.Errorf("failed to upsert category item %q: %w", item.Name, err)
		}

		if err := r.financial.UpsertBalanceSheetItem(ctx, sheetID, categoryID, itemID, item.Amount); err != nil {
			return fmt.Errorf("failed to upsert balance sheet item %q: %w", item.Name, err)
		}

		keep = append(keep, itemID)
	}

	if _, err := r.financial.DeleteStaleBalanceSheetItems(ctx, sheetID, categoryID, keep); err != nil {
		return fmt.Errorf("failed to delete stale balance sheet items: %w", err)
	}

	return nil
}

func (r *Reconciler) writeParsedText(ctx context.Context, documentID string, statement *domain.Statement) error {
	pageCount := 1

	existing, err := r.parsedData.ParsedData(ctx, documentID)
	switch {
	case err == nil:
		if existing.PageCount > 0 {
			pageCount = existing.PageCount
		}
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("failed to get parsed data: %w", err)
	}

	err = r.parsedData.UpsertParsedData(ctx, &domain.ParsedData{
		DocumentID: documentID,
		ParsedText: statement.Text(),
		PageCount:  pageCount,
	})
	if err != nil {
		return fmt.Errorf("failed to write parsed text: %w", err)
	}

	return nil
}
