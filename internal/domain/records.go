package domain

// CsvRow is one decoded line of an uploaded CSV file. Fields are kept raw so
// that rejected rows can be stored exactly as received.
type CsvRow struct {
	Email string `csv:"email"`
	Age   string `csv:"age"`
}

type ValidRecord struct {
	FileID string  `db:"file_id" json:"fileId"`
	Email  string  `db:"email"   json:"email"`
	Age    float64 `db:"age"     json:"age"`
}

type InvalidRecord struct {
	FileID      string            `db:"file_id"      json:"fileId"`
	RawData     map[string]string `db:"raw_data"     json:"rawData"`
	ErrorReason string            `db:"error_reason" json:"errorReason"`
}
