package core

// currency.go converts Brazilian-formatted money strings to numbers and back.
//
// Spreadsheet cells arrive in whatever shape the editor typed them:
//   - "R$ 1.234,56" (thousands dot, decimal comma)
//   - "10,50" (decimal comma only)
//   - "10.5" (decimal dot)
//
// A lone dot is always read as a decimal separator, so "1.234" is 1.234.

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol prefixes formatted amounts.
const CurrencySymbol = "R$"

// decimalPattern is the plain decimal notation accepted after cleaning.
// strconv alone would also take hex floats and underscore separators.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseCurrency returns the value of a money cell in reais.
// Unparseable or empty input yields 0; it never fails.
func ParseCurrency(s string) float64 {
	if s == "" {
		return 0
	}

	clean := strings.Map(func(r rune) rune {
		if r == 'R' || r == '$' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	hasComma := strings.Contains(clean, ",")
	hasDot := strings.Contains(clean, ".")

	switch {
	case hasComma && hasDot:
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	case hasComma:
		clean = strings.Replace(clean, ",", ".", 1)
	}

	if !decimalPattern.MatchString(clean) {
		return 0
	}

	f, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// FormatCurrency renders v as pt-BR reais, e.g. "R$ 1.234,56".
func FormatCurrency(v float64) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	if v < 0 {
		return "-" + CurrencySymbol + " " + p.Sprintf("%v", number.Decimal(-v, number.Scale(2)))
	}
	return CurrencySymbol + " " + p.Sprintf("%v", number.Decimal(v, number.Scale(2)))
}
