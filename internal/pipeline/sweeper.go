package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/document_ingest/internal/domain"
)

// Sweeper periodically removes uploads that no job will read again: files of
// settled documents whose cleanup failed and files with no document at all.
// Uploads are named after their document id.
type Sweeper struct {
	log          *slog.Logger
	uploadDir    string
	scanInterval time.Duration
	gracePeriod  time.Duration
	csvFiles     CsvFileFinder
	pdfDocuments PdfDocumentFinder
	now          func() time.Time
}

func NewSweeper(
	log *slog.Logger,
	uploadDir string,
	scanInterval time.Duration,
	gracePeriod time.Duration,
	csvFiles CsvFileFinder,
	pdfDocuments PdfDocumentFinder,
) *Sweeper {
	return &Sweeper{
		log:          log,
		uploadDir:    uploadDir,
		scanInterval: scanInterval,
		gracePeriod:  gracePeriod,
		csvFiles:     csvFiles,
		pdfDocuments: pdfDocuments,
		now:          time.Now,
	}
}

func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "sweep cycle started")

			removed, err := s.Sweep(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to sweep uploads", slog.String("err", err.Error()))
				continue
			}

			if removed > 0 {
				s.log.InfoContext(ctx, "removed stale uploads", slog.Int("count", removed))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Sweep runs one pass over the upload directory and returns how many files
// it removed.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %q: %w", s.uploadDir, err)
	}

	var removed int
	for _, entry := range entries {
		stale, err := s.isStale(ctx, entry)
		if err != nil {
			s.log.ErrorContext(ctx, "failed to check upload, skipping",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}

		if !stale {
			continue
		}

		if err := os.Remove(filepath.Join(s.uploadDir, entry.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.log.WarnContext(ctx, "failed to remove stale upload",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}

		removed++
	}

	return removed, nil
}

func (s *Sweeper) isStale(ctx context.Context, entry os.DirEntry) (bool, error) {
	if !entry.Type().IsRegular() {
		return false, nil
	}

	name := entry.Name()
	ext := strings.ToLower(filepath.Ext(name))
	id := strings.TrimSuffix(name, filepath.Ext(name))

	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	var (
		status domain.Status
		err    error
	)

	switch ext {
	case ".csv":
		var file *domain.CsvFile
		if file, err = s.csvFiles.CsvFileByID(ctx, id); err == nil {
			status = file.Status
		}
	case ".pdf":
		var doc *domain.PdfDocument
		if doc, err = s.pdfDocuments.PdfDocumentByID(ctx, id); err == nil {
			status = doc.Status
		}
	default:
		return false, nil
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		// The upload handler writes the file before the record.
		info, err := entry.Info()
		if err != nil {
			return false, fmt.Errorf("failed to stat upload: %w", err)
		}
		return s.now().Sub(info.ModTime()) > s.gracePeriod, nil
	case err != nil:
		return false, err
	default:
		return status.Terminal(), nil
	}
}
