package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kurochkinivan/document_ingest/internal/domain"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	return fmt.Errorf("failed to execute query: %w", err)
}

// scanRowError maps pgx.ErrNoRows to domain.ErrNotFound.
func scanRowError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	return fmt.Errorf("failed to scan row: %w", err)
}

func collectRowsError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	return fmt.Errorf("failed to collect rows: %w", err)
}

func copyRowsError(table string, copied int64, expected int) error {
	return fmt.Errorf("failed to copy into %s: copied %d rows, expected %d", table, copied, expected)
}
