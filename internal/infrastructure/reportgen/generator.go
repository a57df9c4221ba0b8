package reportgen

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	titleStyle    = props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}
	subtitleStyle = props.Text{Size: 11, Align: align.Center}
	sectionStyle  = props.Text{Size: 12, Style: fontstyle.Bold, Top: 2}
	itemStyle     = props.Text{Size: 10, Left: 4}
	amountStyle   = props.Text{Size: 10, Align: align.Right}
	totalStyle    = props.Text{Size: 10, Style: fontstyle.Bold}
	totalAmount   = props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
)

// Generator renders balance sheets as single-column A4 statements.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateStatement(statement *domain.Statement) ([]byte, error) {
	if statement.Totals == nil {
		statement = statement.Normalize()
	}

	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithTitle(statement.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		text.NewRow(10, statement.CompanyName, titleStyle),
		text.NewRow(8, statement.EngagementName, subtitleStyle),
		line.NewRow(6),
	)

	addSection(m, domain.CategoryAssets, statement.Assets, statement.Totals.Assets)
	addSection(m, domain.CategoryLiabilities, statement.Liabilities, statement.Totals.Liabilities)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate statement pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func addSection(m core.Maroto, title string, items []domain.LineItem, total decimal.Decimal) {
	m.AddRows(text.NewRow(9, title, sectionStyle))

	for _, item := range items {
		m.AddRow(6,
			text.NewCol(8, item.Name, itemStyle),
			text.NewCol(4, item.Amount.StringFixed(domain.AmountPlaces), amountStyle),
		)
	}

	m.AddRow(7,
		text.NewCol(8, "Total "+title, totalStyle),
		text.NewCol(4, total.StringFixed(domain.AmountPlaces), totalAmount),
	)
}
