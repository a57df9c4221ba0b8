package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CategoryAssets      = "Assets"
	CategoryLiabilities = "Liabilities & Equity"

	DefaultCompanyName    = "Financial Statement"
	DefaultEngagementName = "Balance Sheet"
)

// AmountPlaces is the scale every stored amount is rounded to.
const AmountPlaces = 2

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// ParseAmount keeps only digits, '.' and '-' and parses the rest.
// Anything unparsable is zero.
func ParseAmount(s string) decimal.Decimal {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}

	return d
}

type LineItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type Totals struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
}

// Statement is one balance sheet as supplied to reconciliation.
// Totals is nil when it has to be computed from the items.
type Statement struct {
	CompanyName    string
	EngagementName string
	Assets         []LineItem
	Liabilities    []LineItem
	Totals         *Totals
}

// Normalize trims names, drops unnamed items, rounds amounts and fills
// in totals. The receiver is not modified.
func (s *Statement) Normalize() *Statement {
	n := &Statement{
		CompanyName:    strings.TrimSpace(s.CompanyName),
		EngagementName: strings.TrimSpace(s.EngagementName),
		Assets:         normalizeItems(s.Assets),
		Liabilities:    normalizeItems(s.Liabilities),
	}

	if s.Totals != nil {
		n.Totals = &Totals{
			Assets:      s.Totals.Assets.Round(AmountPlaces),
			Liabilities: s.Totals.Liabilities.Round(AmountPlaces),
		}
	} else {
		n.Totals = &Totals{
			Assets:      sum(n.Assets),
			Liabilities: sum(n.Liabilities),
		}
	}

	return n
}

// Text renders the statement the way it is stored as parsed text.
func (s *Statement) Text() string {
	var b strings.Builder

	b.WriteString(s.CompanyName + "\n")
	b.WriteString(s.EngagementName + "\n")

	writeSection := func(title string, items []LineItem, total decimal.Decimal) {
		b.WriteString(title + "\n")
		for _, item := range items {
			b.WriteString(item.Name + ": " + item.Amount.StringFixed(AmountPlaces) + "\n")
		}
		b.WriteString("Total " + title + ": " + total.StringFixed(AmountPlaces) + "\n")
	}

	var totals Totals
	if s.Totals != nil {
		totals = *s.Totals
	}

	writeSection(CategoryAssets, s.Assets, totals.Assets)
	writeSection(CategoryLiabilities, s.Liabilities, totals.Liabilities)

	return strings.TrimSuffix(b.String(), "\n")
}

func normalizeItems(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}

		out = append(out, LineItem{
			Name:   name,
			Amount: item.Amount.Round(AmountPlaces),
		})
	}

	return out
}

func sum(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	return total.Round(AmountPlaces)
}

// FinancialStatement is the persisted view of a document's balance sheet.
type FinancialStatement struct {
	DocumentID string                `json:"documentId"`
	Company    Company               `json:"company"`
	Engagement Engagement            `json:"engagement"`
	Totals     Totals                `json:"totals"`
	Categories map[string][]LineItem `json:"categories"`
}

type Company struct {
	ID   int64  `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
}

type Engagement struct {
	ID        int64  `db:"id"         json:"id"`
	CompanyID int64  `db:"company_id" json:"companyId"`
	Name      string `db:"name"       json:"name"`
}
