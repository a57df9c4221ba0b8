package domain

import "time"

// ParsedData is the plain text extracted from a PDF document.
type ParsedData struct {
	DocumentID string    `db:"document_id" json:"documentId"`
	ParsedText string    `db:"parsed_text" json:"text"`
	PageCount  int       `db:"page_count"  json:"pageCount"`
	CreatedAt  time.Time `db:"created_at"  json:"-"`
}

// ExtractedText is what a text extractor returns for a PDF file.
type ExtractedText struct {
	Text      string
	PageCount int
}
