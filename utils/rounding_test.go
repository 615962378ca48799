package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestScaleHalfUp(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		digits int32
		want   string
	}{
		{"tie rounds away from zero", "2.345", 2, "2.35"},
		{"tie rounds away from zero when negative", "-2.345", 2, "-2.35"},
		{"below tie rounds down", "2.344", 2, "2.34"},
		{"above tie rounds up", "2.346", 2, "2.35"},
		{"four digit intermediate", "1.50005", 4, "1.5001"},
		{"no-op when already at scale", "247.50", 2, "247.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleHalfUp(dec(tt.value), tt.digits)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDivHalfUp(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"quantity factor", "150", "100", "1.5"},
		{"per-minute rate", "300", "30", "10"},
		{"repeating decimal cut at four digits", "100", "3", "33.3333"},
		{"tie at fifth digit rounds up", "0.00005", "1", "0.0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DivHalfUp(dec(tt.a), dec(tt.b))
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}
