package util

import "testing"

func TestRoundTo2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "zero", value: 0, expected: 0},
		{name: "already two decimals", value: 123.45, expected: 123.45},
		{name: "rounds down", value: 33.333333, expected: 33.33},
		{name: "rounds up", value: 66.666666, expected: 66.67},
		{name: "half rounds away from zero", value: 0.125, expected: 0.13},
		{name: "negative half rounds away from zero", value: -0.125, expected: -0.13},
		{name: "three decimals round up", value: 10.346, expected: 10.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RoundTo2(tt.value); got != tt.expected {
				t.Fatalf("RoundTo2(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}
