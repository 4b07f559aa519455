package format

import "testing"

func TestResult(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"negative zero", -0.0, "0"},
		{"integer", 4, "4"},
		{"negative integer", -12, "-12"},
		{"large integer below threshold", 999999999, "999999999"},
		{"threshold", 1e9, "1e+9"},
		{"large", 1234567890, "1.23457e+9"},
		{"large negative", -1234567890, "-1.23457e+9"},
		{"tiny", 0.00001234, "1.234e-5"},
		{"lower threshold is fixed", 0.0001, "0.0001"},
		{"repeating", 10.0 / 3.0, "3.33333333"},
		{"nine digits given", 3.333333333, "3.33333333"},
		{"half", 0.5, "0.5"},
		{"no trailing zeros", 2.25, "2.25"},
		{"rounds into exponent", 999999999.9999, "1e+9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Result(tt.in); got != tt.want {
				t.Errorf("Result(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestScientific(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1e9, "1e+9"},
		{1.5e12, "1.5e+12"},
		{123456789012, "1.23457e+11"},
		{2e-7, "2e-7"},
		{-3.14159265e-6, "-3.14159e-6"},
	}

	for _, tt := range tests {
		if got := Scientific(tt.in); got != tt.want {
			t.Errorf("Scientific(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-12, "-12"},
		{0.5, "0.5"},
		{1234567.25, "1234567.25"},
		{0.00001, "0.00001"},
		{1e-300, "1e-300"},
		{-2.5e-7, "-2.5e-7"},
		{1e15, "1e+15"},
		{123456789012345678, "1.2345678901234568e+17"},
	}

	for _, tt := range tests {
		if got := Number(tt.in); got != tt.want {
			t.Errorf("Number(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
