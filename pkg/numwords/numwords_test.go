package numwords

import (
	"math"
	"testing"
)

func TestCardinal(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "zero"},
		{1, "um"},
		{14, "quatorze"},
		{21, "vinte e um"},
		{100, "cem"},
		{101, "cento e um"},
		{250, "duzentos e cinquenta"},
		{999, "novecentos e noventa e nove"},
		{1000, "mil"},
		{1001, "mil e um"},
		{1500, "mil e quinhentos"},
		{1234, "mil duzentos e trinta e quatro"},
		{2000, "dois mil"},
		{100000, "cem mil"},
		{1000000, "um milhão"},
		{1200000, "um milhão e duzentos mil"},
		{2345678, "dois milhões trezentos e quarenta e cinco mil seiscentos e setenta e oito"},
		{1001001, "um milhão, mil e um"},
		{1200001, "um milhão, duzentos mil e um"},
		{5020300, "cinco milhões, vinte mil e trezentos"},
		{1001234, "um milhão, mil duzentos e trinta e quatro"},
		{3000000000, "três bilhões"},
		{-45, "quarenta e cinco"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := Cardinal(tt.n); got != tt.expected {
				t.Errorf("Cardinal(%d): expected %q, got %q", tt.n, tt.expected, got)
			}
		})
	}
}

func TestCardinalNeverHyphenates(t *testing.T) {
	for n := int64(0); n < 2000; n++ {
		for _, r := range Cardinal(n) {
			if r == '-' {
				t.Fatalf("Cardinal(%d) contains a hyphen: %q", n, Cardinal(n))
			}
		}
	}
}

func TestMonetary(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"singular real", 1, " (um real)"},
		{"reais and cents", 2.50, " (dois reais e cinquenta centavos)"},
		{"single cent", 10.01, " (dez reais e um centavo)"},
		{"only cents", 0.75, " (zero reais e setenta e cinco centavos)"},
		{"thousands", 1234.5, " (mil duzentos e trinta e quatro reais e cinquenta centavos)"},
		{"whole million", 2000000, " (dois milhões de reais)"},
		{"rounding carries", 4.999, " (cinco reais)"},
		{"NaN", math.NaN(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Monetary(tt.amount); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestMonetaryString(t *testing.T) {
	if got := MonetaryString("1500"); got != " (mil e quinhentos reais)" {
		t.Errorf("Unexpected words: %q", got)
	}
	if got := MonetaryString(""); got != "" {
		t.Errorf("Expected empty string for blank input, got %q", got)
	}
	if got := MonetaryString("n/a"); got != "" {
		t.Errorf("Expected empty string for invalid input, got %q", got)
	}
}

func TestDays(t *testing.T) {
	if got := Days("30"); got != "30 (trinta) dias" {
		t.Errorf("Unexpected days: %q", got)
	}
	if got := Days("1"); got != "1 (um) dia" {
		t.Errorf("Unexpected days: %q", got)
	}
	if got := Days(""); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"20", "20% (vinte por cento)"},
		{"50", "50% (cinquenta por cento)"},
		{"12.5", "12,5% (doze vírgula cinco por cento)"},
		{"100", "100% (cem por cento)"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Percent(tt.raw); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize(" (dois reais)"); got != " (Dois reais)" {
		t.Errorf("Unexpected capitalization: %q", got)
	}
	if got := Capitalize("ótimo"); got != "Ótimo" {
		t.Errorf("Unexpected capitalization: %q", got)
	}
	if got := Capitalize(""); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
