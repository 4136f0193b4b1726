package billing

import (
	"strconv"
	"strings"

	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
	plandomain "github.com/revendahq/revenda/internal/plan/domain"
)

// ParseEmployeeRange splits the stored "min-max" form. A malformed range
// never matches a contract.
func ParseEmployeeRange(raw string) (min, max int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(raw), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	max, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || max < min {
		return 0, 0, false
	}
	return min, max, true
}

// LicenseQuote is the outcome of matching a contract against the plan
// catalog. Found is false when no active plan exists at all; the quote then
// carries zero cost and no exemption.
type LicenseQuote struct {
	PlanName        string `json:"plan_name,omitempty"`
	TotalCents      int64  `json:"total_cents"`
	ExemptionMonths int    `json:"exemption_months"`
	InRange         bool   `json:"in_range"`
	ExtraCNPJs      int    `json:"extra_cnpjs"`
	Found           bool   `json:"found"`
}

type licenseCandidate struct {
	plan       plandomain.Plan
	totalCents int64
	inRange    bool
	extraCNPJs int
}

// AllocateLicense scores every active plan against the contract's employee
// and CNPJ counts and returns the cheapest quote. In-range plans are
// preferred; only when none covers the employee count does the search fall
// back to all candidates. Ties break on fewer extra CNPJs, then on the lower
// base license cost.
func AllocateLicense(employeeCount, cnpjCount int, plans []plandomain.Plan, addons []plandomain.PlanAddon) LicenseQuote {
	var cnpjAddon, employeeAddon *plandomain.PlanAddon
	for i := range addons {
		if !addons[i].IsActive {
			continue
		}
		switch addons[i].UnitType {
		case plandomain.AddonUnitCNPJ:
			if cnpjAddon == nil {
				cnpjAddon = &addons[i]
			}
		case plandomain.AddonUnitEmployee:
			if employeeAddon == nil {
				employeeAddon = &addons[i]
			}
		}
	}

	var candidates []licenseCandidate
	for _, plan := range plans {
		if !plan.IsActive {
			continue
		}

		rangeMin, rangeMax, rangeOK := ParseEmployeeRange(plan.EmployeeRange)
		inRange := rangeOK && employeeCount >= rangeMin && employeeCount <= rangeMax

		extraCNPJs := cnpjCount - plan.AllowedCNPJs
		if extraCNPJs < 0 {
			extraCNPJs = 0
		}
		var cnpjExtraCents int64
		if cnpjAddon != nil {
			cnpjExtraCents = int64(extraCNPJs) * cnpjAddon.LicenseCostCents
		}

		var employeeExtraCents int64
		if rangeOK && employeeCount > rangeMax && employeeAddon != nil {
			increment := employeeAddon.PackageIncrement
			if increment <= 0 {
				increment = 100
			}
			units := (employeeCount - rangeMax + increment - 1) / increment
			employeeExtraCents = int64(units) * employeeAddon.LicenseCostCents
		}

		candidates = append(candidates, licenseCandidate{
			plan:       plan,
			totalCents: plan.LicenseCostCents + cnpjExtraCents + employeeExtraCents,
			inRange:    inRange,
			extraCNPJs: extraCNPJs,
		})
	}
	if len(candidates) == 0 {
		return LicenseQuote{}
	}

	pool := candidates
	inRangeOnly := make([]licenseCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.inRange {
			inRangeOnly = append(inRangeOnly, c)
		}
	}
	if len(inRangeOnly) > 0 {
		pool = inRangeOnly
	}

	best := pool[0]
	for _, c := range pool[1:] {
		if cheaper(c, best) {
			best = c
		}
	}

	return LicenseQuote{
		PlanName:        best.plan.Name,
		TotalCents:      best.totalCents,
		ExemptionMonths: best.plan.LicenseExemptionMonths,
		InRange:         best.inRange,
		ExtraCNPJs:      best.extraCNPJs,
		Found:           true,
	}
}

func cheaper(a, b licenseCandidate) bool {
	if a.totalCents != b.totalCents {
		return a.totalCents < b.totalCents
	}
	if a.extraCNPJs != b.extraCNPJs {
		return a.extraCNPJs < b.extraCNPJs
	}
	return a.plan.LicenseCostCents < b.plan.LicenseCostCents
}

// MonthlyLicenseCost is the license fee the reseller owes upstream for the
// contract in the target month. The fee accrues monthly regardless of the
// revenue cadence, starts after the plan's exemption holiday counted from
// the contract start month, and stops during inactive windows.
func MonthlyLicenseCost(contract contractdomain.Contract, history []contractdomain.ContractStatusEntry, quote LicenseQuote, target MonthKey) int64 {
	if !quote.Found || quote.TotalCents <= 0 {
		return 0
	}

	startDate, ok := ParseDate(contract.StartDate)
	if !ok {
		return 0
	}

	monthsSinceStart := MonthsBetween(MonthOf(startDate), target)
	if monthsSinceStart < 0 || monthsSinceStart < quote.ExemptionMonths {
		return 0
	}

	if SuppressedByStatus(contract, history, target) {
		return 0
	}
	return quote.TotalCents
}
