package core

import (
	"math"
	"testing"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"R$ 10,50", 10.5},
		{"", 0},
		{"abc", 0},
		{"1.200,00", 1200},
		{"R$ 1.234.567,89", 1234567.89},
		{"10.5", 10.5},
		{"1.234", 1.234},
		{"12", 12},
		{"R$ 5,00", 5},
		{" 7,25 ", 7.25},
		{"-3,50", -3.5},
		{"1,2,3", 0},
		{"10,50 cada", 0},
		{"sob consulta", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"R$", 0},
		{"0x1p4", 0},
		{"0x10", 0},
		{"1_000", 0},
		{"R$ 1_000,50", 0},
		{".5", 0.5},
		{"1e3", 1000},
	}

	for _, tt := range tests {
		got := ParseCurrency(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{10.5, "R$ 10,50"},
		{1234.56, "R$ 1.234,56"},
		{1234567.891, "R$ 1.234.567,89"},
		{-2.5, "-R$ 2,50"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.99, 10.5, 1234.56, 98765.43} {
		if got := ParseCurrency(FormatCurrency(v)); math.Abs(got-v) > 1e-9 {
			t.Errorf("ParseCurrency(FormatCurrency(%v)) = %v", v, got)
		}
	}
}
