package billing

import (
	"testing"
	"time"

	adjustmentdomain "github.com/revendahq/revenda/internal/adjustment/domain"
	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
	"github.com/stretchr/testify/assert"
)

func adjustment(effectiveDate, newValue string, createdAt string) adjustmentdomain.Adjustment {
	created, ok := ParseDate(createdAt)
	if !ok {
		panic("bad test date: " + createdAt)
	}
	return adjustmentdomain.Adjustment{
		EffectiveDate: effectiveDate,
		NewValue:      newValue,
		CreatedAt:     created,
	}
}

func TestEffectiveValueSequencing(t *testing.T) {
	adjustments := []adjustmentdomain.Adjustment{
		adjustment("2024-06-01", "150.00", "2024-05-20"),
		adjustment("2024-03-01", "100.00", "2024-02-20"),
	}

	tests := []struct {
		name   string
		target MonthKey
		want   int64
	}{
		{"before any adjustment", month(2024, time.January), 20000},
		{"after first", month(2024, time.April), 10000},
		{"after second", month(2024, time.July), 15000},
		{"month of first", month(2024, time.March), 10000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveValue("200.00", contractdomain.CadenceMonthly, adjustments, tt.target)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffectiveValueDuplicateDateKeepsLatest(t *testing.T) {
	adjustments := []adjustmentdomain.Adjustment{
		adjustment("2024-03-01", "100.00", "2024-02-20"),
		adjustment("2024-03-01", "120.00", "2024-02-25"),
	}
	got := EffectiveValue("200.00", contractdomain.CadenceMonthly, adjustments, month(2024, time.April))
	assert.Equal(t, int64(12000), got)
}

func TestEffectiveValueCadenceGranularity(t *testing.T) {
	// Effective mid-month: a semestral occurrence in the same month already
	// picks it up, because comparison happens at month granularity.
	adjustments := []adjustmentdomain.Adjustment{
		adjustment("2024-03-15", "300.00", "2024-03-01"),
	}

	got := EffectiveValue("200.00", contractdomain.CadenceSemiannual, adjustments, month(2024, time.March))
	assert.Equal(t, int64(30000), got)

	got = EffectiveValue("200.00", contractdomain.CadenceSemiannual, adjustments, month(2024, time.February))
	assert.Equal(t, int64(20000), got)
}

func TestEffectiveValueSkipsUnparseableDates(t *testing.T) {
	adjustments := []adjustmentdomain.Adjustment{
		adjustment("not-a-date", "999.00", "2024-01-01"),
	}
	got := EffectiveValue("200.00", contractdomain.CadenceMonthly, adjustments, month(2024, time.June))
	assert.Equal(t, int64(20000), got)
}

func TestEffectiveValuePtBRDates(t *testing.T) {
	adjustments := []adjustmentdomain.Adjustment{
		adjustment("01/03/2024", "1.250,00", "2024-02-20"),
	}
	got := EffectiveValue("200.00", contractdomain.CadenceMonthly, adjustments, month(2024, time.April))
	assert.Equal(t, int64(125000), got)
}
