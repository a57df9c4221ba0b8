package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrNotCompleted = errors.New("document is not completed")
)

// Document holds the fields shared by every uploaded file kind.
type Document struct {
	ID           string     `db:"id"            json:"id"`
	OriginalName string     `db:"original_name" json:"originalName"`
	StoredPath   string     `db:"stored_path"   json:"-"`
	MimeType     string     `db:"mime_type"     json:"mimeType"`
	SizeBytes    int64      `db:"size_bytes"    json:"sizeBytes"`
	Status       Status     `db:"status"        json:"status"`
	UploadedAt   time.Time  `db:"uploaded_at"   json:"uploadedAt"`
	CompletedAt  *time.Time `db:"completed_at"  json:"completedAt"`
	ErrorReason  *string    `db:"error_reason"  json:"errorReason"`
}

type CsvFile struct {
	Document

	TotalRows        int           `db:"total_rows"         json:"totalRows"`
	ValidRows        int           `db:"valid_rows"         json:"validRows"`
	InvalidRows      int           `db:"invalid_rows"       json:"invalidRows"`
	WebhookStatus    WebhookStatus `db:"webhook_status"     json:"webhookStatus"`
	WebhookAttempts  int           `db:"webhook_attempts"   json:"webhookAttempts"`
	NextWebhookAt    *time.Time    `db:"next_webhook_at"    json:"nextWebhookAt"`
	LastWebhookError *string       `db:"last_webhook_error" json:"lastWebhookError"`
}

type PdfDocument struct {
	Document
}

// RowCounts is the outcome of a completed CSV ingestion.
type RowCounts struct {
	Total   int
	Valid   int
	Invalid int
}

// WebhookState is written after every delivery attempt.
type WebhookState struct {
	Status        WebhookStatus
	Attempts      int
	NextAttemptAt *time.Time
	LastError     *string
}
