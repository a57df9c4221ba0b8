package domain

import "time"

// WebhookNotification is the body posted to the webhook endpoint once a CSV
// file is ingested.
type WebhookNotification struct {
	DocumentID    string     `json:"documentId"`
	RowsProcessed int        `json:"rowsProcessed"`
	ValidRows     int        `json:"validRows"`
	InvalidRows   int        `json:"invalidRows"`
	CompletedAt   *time.Time `json:"completedAt"`
}
