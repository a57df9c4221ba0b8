package pdftext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Glyphs further apart than this share of the font size belong to
// different words.
const wordGap = 0.15

var ErrMalformedPDF = errors.New("malformed pdf")

// Extractor reads the page count with pdfcpu and the text, row by row, with
// ledongthuc/pdf.
type Extractor struct {
	conf *model.Configuration
}

func New() *Extractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Extractor{conf: conf}
}

func (e *Extractor) Extract(ctx context.Context, path string) (*domain.ExtractedText, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pageCount, err := e.pageCount(path)
	if err != nil {
		return nil, err
	}

	text, err := extractText(path)
	if err != nil {
		return nil, err
	}

	return &domain.ExtractedText{
		Text:      text,
		PageCount: pageCount,
	}, nil
}

func (e *Extractor) pageCount(path string) (_ int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	count, err := api.PageCount(f, e.conf)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count pages: %w", ErrMalformedPDF, err)
	}

	return count, nil
}

func extractText(path string) (_ string, err error) {
	// The reader panics on some broken cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMalformedPDF, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedPDF, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	lines := make([]string, 0, reader.NumPage()*32)

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}

		// Rows come back bottom-up.
		slices.SortStableFunc(rows, func(a, b *pdf.Row) int {
			switch {
			case a.Position > b.Position:
				return -1
			case a.Position < b.Position:
				return 1
			default:
				return 0
			}
		})

		for _, row := range rows {
			if line := rowText(row.Content); line != "" {
				lines = append(lines, line)
			}
		}
	}

	return strings.Join(lines, "\n"), nil
}

// rowText joins the glyphs of one row, inserting a space wherever two
// consecutive glyphs are visibly apart.
func rowText(content pdf.TextHorizontal) string {
	glyphs := slices.Clone(content)
	slices.SortStableFunc(glyphs, func(a, b pdf.Text) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		default:
			return 0
		}
	})

	var b strings.Builder
	for i, g := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			if g.X-(prev.X+prev.W) > g.FontSize*wordGap && !strings.HasSuffix(b.String(), " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
