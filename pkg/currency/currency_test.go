package currency

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"thousands with one decimal", 1234.5, "R$ 1.234,50"},
		{"zero", 0, "R$ 0,00"},
		{"small", 2.5, "R$ 2,50"},
		{"millions", 1234567.891, "R$ 1.234.567,89"},
		{"exact hundreds", 300, "R$ 300,00"},
		{"NaN", math.NaN(), "R$ 0,00"},
		{"infinity", math.Inf(1), "R$ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.amount); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"1234.5", "R$ 1.234,50"},
		{"1.234,50", "R$ 1.234,50"},
		{"R$ 99,90", "R$ 99,90"},
		{"  15000 ", "R$ 15.000,00"},
		{"", "R$ 0,00"},
		{"abc", "R$ 0,00"},
		{"NaN", "R$ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := FormatString(tt.raw); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	if _, ok := Parse("   "); ok {
		t.Error("Expected blank input to be rejected")
	}
	v, ok := Parse("2.500,75")
	if !ok {
		t.Fatal("Expected pt-BR notation to parse")
	}
	if v != 2500.75 {
		t.Errorf("Expected 2500.75, got %v", v)
	}
}
