package domain

const (
	JobTypeCsvIngest       = "csv-file-processing"
	JobTypePdfIngest       = "pdf-processing"
	JobTypeWebhookDelivery = "csv-webhook"
)

// IngestPayload is carried by both CSV and PDF ingest jobs.
type IngestPayload struct {
	DocumentID string `json:"documentId"`
	FilePath   string `json:"filePath"`
}

type WebhookPayload struct {
	DocumentID string `json:"documentId"`
	Attempt    int    `json:"attempt"`
}

const ingestPayloadSchema = `{
	"type": "object",
	"required": ["documentId", "filePath"],
	"properties": {
		"documentId": {"type": "string", "minLength": 1},
		"filePath": {"type": "string", "minLength": 1}
	}
}`

const webhookPayloadSchema = `{
	"type": "object",
	"required": ["documentId", "attempt"],
	"properties": {
		"documentId": {"type": "string", "minLength": 1},
		"attempt": {"type": "integer", "minimum": 1}
	}
}`

// JobSchemas maps every job type to the JSON schema of its payload.
func JobSchemas() map[string]string {
	return map[string]string{
		JobTypeCsvIngest:       ingestPayloadSchema,
		JobTypePdfIngest:       ingestPayloadSchema,
		JobTypeWebhookDelivery: webhookPayloadSchema,
	}
}
