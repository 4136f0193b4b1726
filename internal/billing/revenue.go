package billing

import (
	"time"

	adjustmentdomain "github.com/revendahq/revenda/internal/adjustment/domain"
	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
	overridedomain "github.com/revendahq/revenda/internal/override/domain"
)

// BankSlipFeeCents is the flat boleto fee charged per contract in every
// month it bills.
const BankSlipFeeCents int64 = 380

// RevenueInput bundles everything the revenue projection reads for one
// contract. Callers fetch the rows; the engine does no I/O.
type RevenueInput struct {
	Contract    contractdomain.Contract
	History     []contractdomain.ContractStatusEntry
	Adjustments []adjustmentdomain.Adjustment
	Overrides   []overridedomain.RevenueOverride
}

// MonthlyRevenue computes what the contract actually bills in the target
// month, in centavos. Semestral and annual contracts return the full
// occurrence amount in their billing month and 0 elsewhere; DistributeMonthly
// is the display-side smoothing. Any malformed input degrades to 0.
func MonthlyRevenue(in RevenueInput, target MonthKey) int64 {
	startDate, ok := ParseDate(in.Contract.StartDate)
	if !ok {
		return 0
	}

	if SuppressedByStatus(in.Contract, in.History, target) {
		return 0
	}

	if !IsBillingMonth(startDate, in.Contract.TrialDays, in.Contract.PlanCadence, target) {
		return 0
	}

	base := EffectiveValue(in.Contract.MonthlyValue, in.Contract.PlanCadence, in.Adjustments, target)

	if override, ok := latestOverride(in.Overrides, target); ok {
		return override
	}
	return base
}

// latestOverride finds the most recent override at or before the target
// month. An override pins the billed amount from its month onward until a
// later override replaces it.
func latestOverride(overrides []overridedomain.RevenueOverride, target MonthKey) (int64, bool) {
	best := MonthKey{}
	var amount int64
	found := false
	for _, o := range overrides {
		if o.Month < 1 || o.Month > 12 {
			continue
		}
		key := MonthKey{Year: o.Year, Month: time.Month(o.Month)}
		if key.After(target) {
			continue
		}
		if !found || key.After(best) || key == best {
			best = key
			amount = o.AmountCents
			found = true
		}
	}
	return amount, found
}

// SuppressedByStatus reports whether the target month falls in an inactive
// window. The status history is authoritative when present; legacy rows
// without history fall back to the termination/reactivation date columns.
// Either way the termination month itself still bills.
func SuppressedByStatus(contract contractdomain.Contract, history []contractdomain.ContractStatusEntry, target MonthKey) bool {
	if len(history) > 0 {
		return InactiveForMonth(history, target)
	}

	termination, ok := ParseDate(contract.TerminationDate)
	if !ok {
		return false
	}
	if !target.After(MonthOf(termination)) {
		return false
	}

	reactivation, ok := ParseDate(contract.ReactivationDate)
	if ok && !reactivation.Before(termination) && !MonthOf(reactivation).After(target) {
		return false
	}
	return true
}

// DistributeMonthly converts an occurrence amount into its per-month display
// share: semestral occurrences spread over 6 months, annual over 12. This is
// presentation smoothing only and never feeds back into totals.
func DistributeMonthly(amount int64, cadence contractdomain.Cadence) int64 {
	switch cadence {
	case contractdomain.CadenceSemiannual:
		return amount / 6
	case contractdomain.CadenceAnnual:
		return amount / 12
	default:
		return amount
	}
}
