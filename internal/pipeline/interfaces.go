package pipeline

import (
	"context"
	"time"

	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/kurochkinivan/document_ingest/internal/queue"
	"github.com/shopspring/decimal"
)

type CsvFileFinder interface {
	CsvFileByID(ctx context.Context, id string) (*domain.CsvFile, error)
}

type PdfDocumentFinder interface {
	PdfDocumentByID(ctx context.Context, id string) (*domain.PdfDocument, error)
}

type CsvFileStore interface {
	CsvFileFinder
	ClaimCsvFile(ctx context.Context, id string) (bool, error)
	CompleteCsvFile(ctx context.Context, id string, counts domain.RowCounts, completedAt time.Time) error
	FailCsvFile(ctx context.Context, id, reason string) error
	UpdateWebhookState(ctx context.Context, id string, state domain.WebhookState) error
}

type RecordsSaver interface {
	SaveValidRecords(ctx context.Context, records ...*domain.ValidRecord) error
	SaveInvalidRecords(ctx context.Context, records ...*domain.InvalidRecord) error
	DeleteRecords(ctx context.Context, fileID string) error
}

type PdfDocumentStore interface {
	PdfDocumentFinder
	ClaimPdfDocument(ctx context.Context, id string) (bool, error)
	CompletePdfDocument(ctx context.Context, id string, completedAt time.Time) error
	FailPdfDocument(ctx context.Context, id, reason string) error
}

type ParsedDataStore interface {
	UpsertParsedData(ctx context.Context, data *domain.ParsedData) error
	ParsedData(ctx context.Context, documentID string) (*domain.ParsedData, error)
}

type FinancialStore interface {
	UpsertCompany(ctx context.Context, name string) (int64, error)
	UpsertEngagement(ctx context.Context, companyID int64, name string) (int64, error)
	UpsertCategory(ctx context.Context, name string) (int64, error)
	UpsertCategoryItem(ctx context.Context, categoryID int64, name string) (int64, error)
	UpsertBalanceSheet(ctx context.Context, documentID string, engagementID int64, totals domain.Totals) (int64, error)
	UpsertBalanceSheetItem(ctx context.Context, balanceSheetID, categoryID, categoryItemID int64, amount decimal.Decimal) error
	DeleteStaleBalanceSheetItems(ctx context.Context, balanceSheetID, categoryID int64, keep []int64) (int64, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Enqueuer interface {
	Enqueue(ctx context.Context, jobType string, payload any, opts queue.Options) error
}

type TextExtractor interface {
	Extract(ctx context.Context, path string) (*domain.ExtractedText, error)
}

type Notifier interface {
	Notify(ctx context.Context, url string, notification *domain.WebhookNotification) error
}

type ReportGenerator interface {
	GenerateStatement(statement *domain.Statement) ([]byte, error)
}

type StatementReconciler interface {
	Reconcile(ctx context.Context, documentID string, statement *domain.Statement, opts ReconcileOptions) (*domain.Statement, error)
}
