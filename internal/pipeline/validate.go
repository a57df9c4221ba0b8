package pipeline

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/kurochkinivan/document_ingest/internal/domain"
)

const (
	ReasonInvalidEmail = "Invalid email format"
	ReasonInvalidAge   = "Age must be a positive number"
)

// whitespace is the character class of ECMAScript white space and line
// terminators. Upload clients validate with those rules, so rows are judged
// the same way here.
const whitespace = `\t\n\x{000B}\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var emailPattern = regexp.MustCompile(`^[^@` + whitespace + `]+@[^@` + whitespace + `]+\.[^@` + whitespace + `]+$`)

// RowVerdict is the outcome of ValidateRow. Reason is empty for valid rows.
type RowVerdict struct {
	Email  string
	Age    float64
	Reason string
}

func (v RowVerdict) Valid() bool {
	return v.Reason == ""
}

// ValidateRow checks the email first, so a row with both fields broken is
// reported as an email error.
func ValidateRow(row domain.CsvRow) RowVerdict {
	email := trimSpace(row.Email)
	if !emailPattern.MatchString(email) {
		return RowVerdict{Reason: ReasonInvalidEmail}
	}

	age := parseNumber(row.Age)
	if math.IsNaN(age) || math.IsInf(age, 0) || age <= 0 {
		return RowVerdict{Reason: ReasonInvalidAge}
	}

	return RowVerdict{Email: email, Age: age}
}

func isSpace(r rune) bool {
	return r == '\uFEFF' || (unicode.IsSpace(r) && r != '\u0085')
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// parseNumber reads s as a numeric literal: decimal with optional sign and
// exponent, or an unsigned 0x, 0o or 0b integer. Blank input is 0 and
// anything else is NaN.
func parseNumber(s string) float64 {
	s = trimSpace(s)
	if s == "" {
		return 0
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	// ParseFloat also takes hex floats, Inf and NaN spellings; none of
	// them are valid here.
	if strings.ContainsAny(s, "xXpPiInN_") {
		return math.NaN()
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}

	return n
}
