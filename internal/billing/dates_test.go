package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"iso", "2024-06-15", "2024-06-15", true},
		{"ptbr day first", "15/06/2024", "2024-06-15", true},
		{"rfc3339", "2024-06-15T10:30:00Z", "2024-06-15", true},
		{"timestamp without zone", "2024-06-15T10:30:00", "2024-06-15", true},
		{"padded", "  2024-06-15  ", "2024-06-15", true},
		{"garbage", "15-06-2024", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseDate(tt.raw)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, FormatDate(parsed))
				assert.Equal(t, 0, parsed.Hour())
			}
		})
	}
}

func TestMonthKeyOrdering(t *testing.T) {
	jan := MonthKey{Year: 2024, Month: time.January}
	dec23 := MonthKey{Year: 2023, Month: time.December}

	assert.True(t, dec23.Before(jan))
	assert.True(t, jan.After(dec23))
	assert.Equal(t, 1, MonthsBetween(dec23, jan))
	assert.Equal(t, -13, MonthsBetween(jan, MonthKey{Year: 2022, Month: time.December}))
}

func TestMonthKeyEnd(t *testing.T) {
	end := MonthKey{Year: 2024, Month: time.February}.End()
	assert.Equal(t, 29, end.Day()) // leap year
	assert.Equal(t, 23, end.Hour())

	end = MonthKey{Year: 2024, Month: time.December}.End()
	assert.Equal(t, 31, end.Day())
	assert.Equal(t, time.December, end.Month())
}
