// Package numwords spells numbers out in Brazilian Portuguese.
//
// Legal documents repeat every amount in words after the numeral. Cardinal
// is unit-agnostic and is what day counts and percentages use; Monetary
// appends the currency units and is reserved for amounts of money.
package numwords

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AnTengye/contractstudio/pkg/currency"
)

// Currency unit names.
const (
	UnitSingular     = "real"
	UnitPlural       = "reais"
	SubunitSingular  = "centavo"
	SubunitPlural    = "centavos"
	percentSuffix    = "por cento"
	decimalSeparator = "vírgula"
)

var units = [...]string{
	"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
	"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove",
}

var tens = [...]string{
	"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa",
}

var hundreds = [...]string{
	"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos",
	"seiscentos", "setecentos", "oitocentos", "novecentos",
}

// scales[i] names the i-th group of three digits (index 1 is thousands).
var scales = [...]struct{ one, many string }{
	{"", ""},
	{"mil", "mil"},
	{"milhão", "milhões"},
	{"bilhão", "bilhões"},
	{"trilhão", "trilhões"},
	{"quatrilhão", "quatrilhões"},
	{"quintilhão", "quintilhões"},
}

// Cardinal returns the words for |n|, space-joined: 21 -> "vinte e um",
// 1500 -> "mil e quinhentos".
func Cardinal(n int64) string {
	var mag uint64
	if n < 0 {
		mag = uint64(-(n + 1)) + 1
	} else {
		mag = uint64(n)
	}
	return cardinal(mag)
}

func cardinal(n uint64) string {
	if n == 0 {
		return units[0]
	}

	var groups []int
	for v := n; v > 0; v /= 1000 {
		groups = append(groups, int(v%1000))
	}

	type part struct {
		words string
		value int
	}
	var parts []part
	for scale := len(groups) - 1; scale >= 0; scale-- {
		g := groups[scale]
		if g == 0 {
			continue
		}
		var w string
		switch {
		case scale == 0:
			w = groupWords(g)
		case scale == 1 && g == 1:
			w = scales[1].one
		case scale == 1:
			w = groupWords(g) + " " + scales[1].many
		case g == 1:
			w = "um " + scales[scale].one
		default:
			w = groupWords(g) + " " + scales[scale].many
		}
		parts = append(parts, part{words: w, value: g})
	}

	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			// A group below a hundred or a round hundred takes "e" when it is
			// the last one and a comma when more groups follow it, so
			// 1_001_001 reads "um milhão, mil e um".
			short := p.value < 100 || p.value%100 == 0
			switch {
			case short && i == len(parts)-1:
				b.WriteString(" e ")
			case short:
				b.WriteString(", ")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString(p.words)
	}
	return b.String()
}

// groupWords spells 1..999.
func groupWords(g int) string {
	if g == 100 {
		return "cem"
	}
	var parts []string
	if h := g / 100; h > 0 {
		parts = append(parts, hundreds[h])
	}
	r := g % 100
	switch {
	case r == 0:
	case r < 20:
		parts = append(parts, units[r])
	default:
		parts = append(parts, tens[r/10])
		if u := r % 10; u > 0 {
			parts = append(parts, units[u])
		}
	}
	return strings.Join(parts, " e ")
}

// Monetary spells an amount of money as " (dois reais e cinquenta centavos)",
// ready to follow a formatted currency value. The integer part is truncated
// and always present; cents are appended only when non-zero. NaN and
// infinities yield "".
func Monetary(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}
	amount = math.Abs(amount)

	whole := math.Trunc(amount)
	cents := int64(math.Round((amount - whole) * 100))
	if cents >= 100 {
		whole++
		cents -= 100
	}
	if whole >= math.MaxUint64 {
		return ""
	}
	n := uint64(whole)

	var b strings.Builder
	b.WriteString(" (")
	b.WriteString(cardinal(n))
	switch {
	case n == 1:
		b.WriteString(" " + UnitSingular)
	case n >= 1_000_000 && n%1_000_000 == 0:
		b.WriteString(" de " + UnitPlural)
	default:
		b.WriteString(" " + UnitPlural)
	}
	if cents > 0 {
		b.WriteString(" e ")
		b.WriteString(cardinal(uint64(cents)))
		if cents == 1 {
			b.WriteString(" " + SubunitSingular)
		} else {
			b.WriteString(" " + SubunitPlural)
		}
	}
	b.WriteString(")")
	return b.String()
}

// MonetaryString is Monetary for a raw form value; unreadable input yields "".
func MonetaryString(raw string) string {
	amount, ok := currency.Parse(raw)
	if !ok {
		return ""
	}
	return Monetary(amount)
}

// Spelled returns "30 (trinta)".
func Spelled(n int64) string {
	return strconv.FormatInt(n, 10) + " (" + Cardinal(n) + ")"
}

// Days spells a day count from a raw form value: "30 (trinta) dias".
// Unreadable input yields "".
func Days(raw string) string {
	v, ok := currency.Parse(raw)
	if !ok {
		return ""
	}
	n := int64(math.Trunc(v))
	if n == 1 || n == -1 {
		return Spelled(n) + " dia"
	}
	return Spelled(n) + " dias"
}

// Percent spells a percentage from a raw form value: "20% (vinte por cento)",
// "12,5% (doze vírgula cinco por cento)". Unreadable input yields "".
func Percent(raw string) string {
	v, ok := currency.Parse(raw)
	if !ok {
		return ""
	}
	return PercentOf(v)
}

// PercentOf is Percent for an already parsed value.
func PercentOf(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	digits := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	intDigits, fracDigits, _ := strings.Cut(digits, ".")
	whole, err := strconv.ParseUint(intDigits, 10, 64)
	if err != nil {
		return ""
	}

	numeral := intDigits
	words := cardinal(whole)
	if fracDigits != "" {
		frac, err := strconv.ParseUint(fracDigits, 10, 64)
		if err != nil {
			return ""
		}
		numeral += "," + fracDigits
		words += " " + decimalSeparator + " " + cardinal(frac)
	}
	if v < 0 {
		numeral = "-" + numeral
	}
	return numeral + "% (" + words + " " + percentSuffix + ")"
}

// Capitalize upper-cases the first letter of s, skipping leading spaces and
// punctuation such as the opening parenthesis of Monetary output.
func Capitalize(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			return s[:i] + string(unicode.ToUpper(r)) + s[i+utf8.RuneLen(r):]
		}
	}
	return s
}
