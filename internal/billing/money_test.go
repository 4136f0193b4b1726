package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{"ptbr thousands and decimal", "1.234,56", 123456},
		{"currency prefix", "R$ 50,00", 5000},
		{"plain dot decimal", "1234.56", 123456},
		{"dot as thousands", "1.234", 123400},
		{"bare integer", "5", 500},
		{"single decimal digit", "10,5", 1050},
		{"negative", "-10,50", -1050},
		{"spaces", "  2.500,00 ", 250000},
		{"garbage", "abc", 0},
		{"empty", "", 0},
		{"only symbols", "R$ ", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.raw))
		})
	}
}

func TestFormatAmountRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 123456, -1050, 999999999} {
		assert.Equal(t, cents, ParseAmount(FormatAmount(cents)), "cents=%d", cents)
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        float64
	}{
		{"integer percent", "ISS 5%", 5},
		{"comma decimal", "Imposto 11,33%", 11.33},
		{"dot decimal", "PIS 1.65%", 1.65},
		{"first match wins", "ICMS 7% sobre 100%", 7},
		{"no percent", "Aluguel escritorio", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParsePercent(tt.description), 0.0001)
		})
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, int64(11), RoundCents(10.5))
	assert.Equal(t, int64(10), RoundCents(10.4))
	assert.Equal(t, int64(-11), RoundCents(-10.5))
	assert.Equal(t, int64(0), RoundCents(0))
}
