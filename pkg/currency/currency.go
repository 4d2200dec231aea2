// Package currency formats amounts as Brazilian Real text.
package currency

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	// Symbol is the prefix printed before every amount.
	Symbol = "R$"

	// brlPattern groups thousands with "." and keeps two decimals after ",".
	brlPattern = "#.###,##"
)

// Zero is what Format returns for missing or unreadable input.
var Zero = Symbol + " 0,00"

// Format renders amount as "R$ 1.234,50". NaN and infinities render as Zero.
func Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Zero
	}
	return Symbol + " " + humanize.FormatFloat(brlPattern, amount)
}

// FormatString parses raw the way form fields arrive and formats it.
// Empty or non-numeric input yields Zero.
func FormatString(raw string) string {
	amount, ok := Parse(raw)
	if !ok {
		return Zero
	}
	return Format(amount)
}

// Parse reads a numeric form value. It accepts plain decimals ("1234.5"),
// pt-BR notation ("1.234,50") and an optional "R$" prefix.
func Parse(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, Symbol))
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if !strings.Contains(s, ",") {
			return 0, false
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
		v, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
