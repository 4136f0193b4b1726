package billing

import (
	"testing"
	"time"

	adjustmentdomain "github.com/revendahq/revenda/internal/adjustment/domain"
	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
	overridedomain "github.com/revendahq/revenda/internal/override/domain"
	"github.com/stretchr/testify/assert"
)

func monthlyContract(startDate string, trialDays int) contractdomain.Contract {
	return contractdomain.Contract{
		MonthlyValue: "500.00",
		PlanCadence:  contractdomain.CadenceMonthly,
		TrialDays:    trialDays,
		StartDate:    startDate,
	}
}

func TestMonthlyRevenueTrialGating(t *testing.T) {
	in := RevenueInput{Contract: monthlyContract("2024-01-10", 30)}

	assert.Equal(t, int64(0), MonthlyRevenue(in, month(2024, time.January)))
	assert.Equal(t, int64(50000), MonthlyRevenue(in, month(2024, time.February)))
	assert.Equal(t, int64(50000), MonthlyRevenue(in, month(2024, time.March)))
}

func TestMonthlyRevenueTerminationCutoff(t *testing.T) {
	in := RevenueInput{
		Contract: monthlyContract("2023-01-01", 0),
		History: []contractdomain.ContractStatusEntry{
			statusEntry(contractdomain.StatusEntryTermination, "2024-06-15"),
		},
	}

	assert.Equal(t, int64(50000), MonthlyRevenue(in, month(2024, time.June)))
	assert.Equal(t, int64(0), MonthlyRevenue(in, month(2024, time.July)))
}

func TestMonthlyRevenueReactivationGap(t *testing.T) {
	in := RevenueInput{
		Contract: monthlyContract("2023-01-01", 0),
		History: []contractdomain.ContractStatusEntry{
			statusEntry(contractdomain.StatusEntryTermination, "2024-06-15"),
			statusEntry(contractdomain.StatusEntryReactivation, "2024-09-01"),
		},
	}

	assert.Equal(t, int64(0), MonthlyRevenue(in, month(2024, time.July)))
	assert.Equal(t, int64(0), MonthlyRevenue(in, month(2024, time.August)))
	assert.Equal(t, int64(50000), MonthlyRevenue(in, month(2024, time.September)))
	assert.Equal(t, int64(50000), MonthlyRevenue(in, month(2024, time.October)))
}

func TestMonthlyRevenueLegacyDateColumns(t *testing.T) {
	// Rows imported without status history fall back to the raw columns.
	contract := monthlyContract("2023-01-01", 0)
	contract.TerminationDate = "2024-06-15"
	in := RevenueInput{Contract: contract}

	assert.Equal(t, int64(50000), MonthlyRevenue(in, month(2024, time.June)))
	assert.Equal(t, int64(0), MonthlyRevenue(in, month(2024, time.July)))

	contract.ReactivationDate = "01/09/2024"
	in.Contract = contract
	assert.Equal(t, int64(0), MonthlyRevenue(in, month(2024, time.August)))
	assert.Equal(t, int64(50000), MonthlyRevenue(in, month(2024, time.September)))
}

func TestMonthlyRevenueAnnualSingleFire(t *testing.T) {
	contract := contractdomain.Contract{
		MonthlyValue: "6.000,00",
		PlanCadence:  contractdomain.CadenceAnnual,
		StartDate:    "2024-03-01",
	}
	in := RevenueInput{Contract: contract}

	for m := time.January; m <= time.December; m++ {
		want := int64(0)
		if m == time.March {
			want = 600000
		}
		assert.Equal(t, want, MonthlyRevenue(in, month(2025, m)), "month %s", m)
	}
}

func TestMonthlyRevenueAdjustmentApplied(t *testing.T) {
	in := RevenueInput{
		Contract: monthlyContract("2024-01-01", 0),
		Adjustments: []adjustmentdomain.Adjustment{
			adjustment("2024-06-01", "750.00", "2024-05-20"),
		},
	}

	assert.Equal(t, int64(50000), MonthlyRevenue(in, month(2024, time.May)))
	assert.Equal(t, int64(75000), MonthlyRevenue(in, month(2024, time.June)))
}

func TestMonthlyRevenueOverrideWins(t *testing.T) {
	in := RevenueInput{
		Contract: monthlyContract("2024-01-01", 0),
		Overrides: []overridedomain.RevenueOverride{
			{Year: 2024, Month: 6, AmountCents: 12345},
		},
	}

	assert.Equal(t, int64(50000), MonthlyRevenue(in, month(2024, time.May)))
	assert.Equal(t, int64(12345), MonthlyRevenue(in, month(2024, time.June)))
	// An override pins the value until a later one replaces it.
	assert.Equal(t, int64(12345), MonthlyRevenue(in, month(2024, time.July)))

	in.Overrides = append(in.Overrides, overridedomain.RevenueOverride{Year: 2024, Month: 8, AmountCents: 20000})
	assert.Equal(t, int64(20000), MonthlyRevenue(in, month(2024, time.August)))
}

func TestMonthlyRevenueOverrideDoesNotResurrectGatedMonth(t *testing.T) {
	in := RevenueInput{
		Contract: monthlyContract("2024-01-10", 30),
		Overrides: []overridedomain.RevenueOverride{
			{Year: 2024, Month: 1, AmountCents: 99999},
		},
	}
	assert.Equal(t, int64(0), MonthlyRevenue(in, month(2024, time.January)))
}

func TestMonthlyRevenueUnparseableStartNeverBills(t *testing.T) {
	in := RevenueInput{Contract: monthlyContract("soon", 0)}
	for m := time.January; m <= time.December; m++ {
		assert.Equal(t, int64(0), MonthlyRevenue(in, month(2024, m)))
	}
}

func TestMonthlyRevenueIdempotent(t *testing.T) {
	in := RevenueInput{
		Contract: monthlyContract("2024-01-10", 30),
		Adjustments: []adjustmentdomain.Adjustment{
			adjustment("2024-06-01", "750.00", "2024-05-20"),
		},
		Overrides: []overridedomain.RevenueOverride{
			{Year: 2024, Month: 9, AmountCents: 12345},
		},
	}

	first := MonthlyRevenue(in, month(2024, time.October))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, MonthlyRevenue(in, month(2024, time.October)))
	}
}

func TestDistributeMonthly(t *testing.T) {
	assert.Equal(t, int64(10000), DistributeMonthly(10000, contractdomain.CadenceMonthly))
	assert.Equal(t, int64(10000), DistributeMonthly(60000, contractdomain.CadenceSemiannual))
	assert.Equal(t, int64(5000), DistributeMonthly(60000, contractdomain.CadenceAnnual))
}
