package pipeline

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/shopspring/decimal"
)

var ErrStatementNotFound = errors.New("balance sheet sections not found")

var (
	amountPattern      = regexp.MustCompile(`^\(?-?[$€£]?-?\d[\d,]*(\.\d+)?\)?$`)
	balanceSheetHeader = regexp.MustCompile(`(?i)balance\s+sheet`)
)

// ParseStatement derives a balance sheet from extracted PDF text. The assets
// section starts at the first line beginning with "Assets" and runs up to the
// first following line that mentions liabilities, which opens the second
// section. Totals found in the text are kept; missing ones are the item sums.
func ParseStatement(text string) (*domain.Statement, error) {
	lines := splitLines(text)

	assetsAt, liabilitiesAt := -1, -1
	for i, line := range lines {
		lower := strings.ToLower(line)

		if assetsAt < 0 {
			if strings.HasPrefix(lower, "assets") {
				assetsAt = i
			}
			continue
		}

		if strings.Contains(lower, "liabilities") {
			liabilitiesAt = i
			break
		}
	}

	if assetsAt < 0 || liabilitiesAt < 0 {
		return nil, ErrStatementNotFound
	}

	assets, assetsTotal := parseSection(lines[assetsAt+1 : liabilitiesAt])
	liabilities, liabilitiesTotal := parseSection(lines[liabilitiesAt+1:])

	if len(assets) == 0 && len(liabilities) == 0 {
		return nil, ErrStatementNotFound
	}

	statement := &domain.Statement{
		CompanyName:    domain.DefaultCompanyName,
		EngagementName: domain.DefaultEngagementName,
		Assets:         assets,
		Liabilities:    liabilities,
		Totals: &domain.Totals{
			Assets:      sectionTotal(assetsTotal, assets),
			Liabilities: sectionTotal(liabilitiesTotal, liabilities),
		},
	}

	if assetsAt > 0 {
		statement.CompanyName = lines[0]
	}

	for _, line := range lines[:assetsAt] {
		if balanceSheetHeader.MatchString(line) {
			statement.EngagementName = line
			break
		}
	}

	return statement, nil
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

func parseSection(lines []string) ([]domain.LineItem, *decimal.Decimal) {
	var (
		items       []domain.LineItem
		total       *decimal.Decimal
		pendingName string
		expectTotal bool
	)

	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "total") {
			pendingName = ""
			expectTotal = false

			if _, amount, ok := splitAmount(line); ok {
				t := domain.ParseAmount(amount)
				total = &t
			} else {
				expectTotal = true
			}
			continue
		}

		if isAmount(line) {
			switch {
			case expectTotal:
				t := domain.ParseAmount(line)
				total = &t
			case pendingName != "":
				items = append(items, domain.LineItem{Name: pendingName, Amount: domain.ParseAmount(line)})
			}

			pendingName = ""
			expectTotal = false
			continue
		}

		if name, amount, ok := splitAmount(line); ok {
			items = append(items, domain.LineItem{Name: name, Amount: domain.ParseAmount(amount)})
			pendingName = ""
			continue
		}

		pendingName = line
	}

	return items, total
}

// splitAmount splits "Cash 1,200.00" into its name and trailing amount.
func splitAmount(line string) (name, amount string, ok bool) {
	idx := strings.LastIndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return "", "", false
	}

	amount = line[idx+1:]
	if !isAmount(amount) {
		return "", "", false
	}

	name = strings.TrimRight(strings.TrimSpace(line[:idx]), " :$€£-")
	if name == "" {
		return "", "", false
	}

	return name, amount, true
}

func isAmount(s string) bool {
	return amountPattern.MatchString(strings.ReplaceAll(s, " ", ""))
}

func sectionTotal(parsed *decimal.Decimal, items []domain.LineItem) decimal.Decimal {
	if parsed != nil {
		return *parsed
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	return total
}
