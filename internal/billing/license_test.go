package billing

import (
	"testing"
	"time"

	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
	plandomain "github.com/revendahq/revenda/internal/plan/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmployeeRange(t *testing.T) {
	tests := []struct {
		raw      string
		min, max int
		ok       bool
	}{
		{"1-50", 1, 50, true},
		{" 51 - 100 ", 51, 100, true},
		{"100", 0, 0, false},
		{"50-1", 0, 0, false},
		{"a-b", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		min, max, ok := ParseEmployeeRange(tt.raw)
		require.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		assert.Equal(t, tt.min, min)
		assert.Equal(t, tt.max, max)
	}
}

func plan(name, employeeRange string, allowedCNPJs int, licenseCostCents int64, exemptionMonths int) plandomain.Plan {
	return plandomain.Plan{
		Name:                   name,
		EmployeeRange:          employeeRange,
		AllowedCNPJs:           allowedCNPJs,
		LicenseCostCents:       licenseCostCents,
		LicenseExemptionMonths: exemptionMonths,
		IsActive:               true,
	}
}

func TestAllocateLicensePicksCheapestInRange(t *testing.T) {
	plans := []plandomain.Plan{
		plan("starter", "1-50", 1, 10000, 0),
		plan("growth", "1-100", 1, 15000, 0),
	}

	quote := AllocateLicense(30, 1, plans, nil)
	require.True(t, quote.Found)
	assert.Equal(t, "starter", quote.PlanName)
	assert.Equal(t, int64(10000), quote.TotalCents)
	assert.True(t, quote.InRange)
}

func TestAllocateLicenseFallsBackWhenOutOfRange(t *testing.T) {
	plans := []plandomain.Plan{
		plan("starter", "1-50", 1, 10000, 0),
		plan("growth", "51-100", 1, 15000, 0),
	}

	quote := AllocateLicense(500, 1, plans, nil)
	require.True(t, quote.Found)
	assert.Equal(t, "starter", quote.PlanName)
	assert.False(t, quote.InRange)
}

func TestAllocateLicenseCNPJAddon(t *testing.T) {
	plans := []plandomain.Plan{plan("starter", "1-50", 2, 10000, 0)}
	addons := []plandomain.PlanAddon{{
		Name:             "extra cnpj",
		UnitType:         plandomain.AddonUnitCNPJ,
		PricingType:      plandomain.AddonPricingPerUnit,
		LicenseCostCents: 2000,
		IsActive:         true,
	}}

	quote := AllocateLicense(30, 5, plans, addons)
	require.True(t, quote.Found)
	assert.Equal(t, 3, quote.ExtraCNPJs)
	assert.Equal(t, int64(10000+3*2000), quote.TotalCents)
}

func TestAllocateLicenseEmployeePackaging(t *testing.T) {
	plans := []plandomain.Plan{plan("growth", "1-100", 1, 10000, 0)}
	addons := []plandomain.PlanAddon{{
		Name:             "employee pack",
		UnitType:         plandomain.AddonUnitEmployee,
		PricingType:      plandomain.AddonPricingPackage,
		LicenseCostCents: 5000,
		PackageIncrement: 100,
		IsActive:         true,
	}}

	// 150 employees: 50 over the range, ceil(50/100) = 1 package.
	quote := AllocateLicense(150, 1, plans, addons)
	assert.Equal(t, int64(15000), quote.TotalCents)

	// 301 employees: 201 over, ceil(201/100) = 3 packages.
	quote = AllocateLicense(301, 1, plans, addons)
	assert.Equal(t, int64(25000), quote.TotalCents)
}

func TestAllocateLicenseDefaultPackageIncrement(t *testing.T) {
	plans := []plandomain.Plan{plan("growth", "1-100", 1, 10000, 0)}
	addons := []plandomain.PlanAddon{{
		Name:             "employee pack",
		UnitType:         plandomain.AddonUnitEmployee,
		LicenseCostCents: 5000,
		IsActive:         true,
	}}

	quote := AllocateLicense(250, 1, plans, addons)
	assert.Equal(t, int64(10000+2*5000), quote.TotalCents)
}

func TestAllocateLicenseTieBreakOnExtraCNPJs(t *testing.T) {
	// Same total cost; the plan needing no extra CNPJs must always win.
	plans := []plandomain.Plan{
		plan("loose", "1-50", 1, 10000, 0),
		plan("roomy", "1-50", 3, 14000, 0),
	}
	addons := []plandomain.PlanAddon{{
		Name:             "extra cnpj",
		UnitType:         plandomain.AddonUnitCNPJ,
		LicenseCostCents: 2000,
		IsActive:         true,
	}}

	// loose: 10000 + 2*2000 = 14000, extraCNPJs 2; roomy: 14000, extraCNPJs 0.
	for i := 0; i < 10; i++ {
		quote := AllocateLicense(30, 3, plans, addons)
		assert.Equal(t, "roomy", quote.PlanName)
	}
}

func TestAllocateLicenseStableOnFullTie(t *testing.T) {
	// Identical candidates: the first in catalog order wins, every time.
	plans := []plandomain.Plan{
		plan("a", "1-50", 1, 12000, 0),
		plan("b", "1-50", 1, 12000, 0),
	}
	quote := AllocateLicense(30, 1, plans, nil)
	assert.Equal(t, "a", quote.PlanName)
}

func TestAllocateLicenseNoActivePlans(t *testing.T) {
	inactive := plan("old", "1-50", 1, 10000, 0)
	inactive.IsActive = false

	quote := AllocateLicense(30, 1, []plandomain.Plan{inactive}, nil)
	assert.False(t, quote.Found)
	assert.Equal(t, int64(0), quote.TotalCents)
}

func TestMonthlyLicenseCostExemptionExpiry(t *testing.T) {
	contract := contractdomain.Contract{StartDate: "2024-01-01"}
	quote := LicenseQuote{TotalCents: 10000, ExemptionMonths: 3, Found: true}

	assert.Equal(t, int64(0), MonthlyLicenseCost(contract, nil, quote, month(2024, time.January)))
	assert.Equal(t, int64(0), MonthlyLicenseCost(contract, nil, quote, month(2024, time.February)))
	assert.Equal(t, int64(0), MonthlyLicenseCost(contract, nil, quote, month(2024, time.March)))
	assert.Equal(t, int64(10000), MonthlyLicenseCost(contract, nil, quote, month(2024, time.April)))
	assert.Equal(t, int64(10000), MonthlyLicenseCost(contract, nil, quote, month(2025, time.April)))
}

func TestMonthlyLicenseCostInactiveSuppression(t *testing.T) {
	contract := contractdomain.Contract{StartDate: "2024-01-01"}
	history := []contractdomain.ContractStatusEntry{
		statusEntry(contractdomain.StatusEntryTermination, "2024-06-15"),
	}
	quote := LicenseQuote{TotalCents: 10000, Found: true}

	assert.Equal(t, int64(10000), MonthlyLicenseCost(contract, history, quote, month(2024, time.June)))
	assert.Equal(t, int64(0), MonthlyLicenseCost(contract, history, quote, month(2024, time.July)))
}

func TestMonthlyLicenseCostBeforeStart(t *testing.T) {
	contract := contractdomain.Contract{StartDate: "2024-06-01"}
	quote := LicenseQuote{TotalCents: 10000, Found: true}

	assert.Equal(t, int64(0), MonthlyLicenseCost(contract, nil, quote, month(2024, time.May)))
	assert.Equal(t, int64(10000), MonthlyLicenseCost(contract, nil, quote, month(2024, time.June)))
}

func TestMonthlyLicenseCostNoQuote(t *testing.T) {
	contract := contractdomain.Contract{StartDate: "2024-01-01"}
	assert.Equal(t, int64(0), MonthlyLicenseCost(contract, nil, LicenseQuote{}, month(2024, time.June)))
}
