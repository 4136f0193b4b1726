package billing

import (
	"time"

	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
)

// BillingStart is the first date billing becomes possible: contract start
// plus the trial period in calendar days.
func BillingStart(startDate time.Time, trialDays int) time.Time {
	if trialDays <= 0 {
		return startDate
	}
	return startDate.AddDate(0, 0, trialDays)
}

// IsBillingMonth reports whether the target month is a billing occurrence for
// the cadence. Semiannual and annual contracts fire on the billing start
// month and every 6th (or 12th) month after it.
func IsBillingMonth(startDate time.Time, trialDays int, cadence contractdomain.Cadence, target MonthKey) bool {
	first := MonthOf(BillingStart(startDate, trialDays))
	delta := MonthsBetween(first, target)
	if delta < 0 {
		return false
	}

	switch cadence {
	case contractdomain.CadenceSemiannual:
		return delta%6 == 0
	case contractdomain.CadenceAnnual:
		return delta%12 == 0
	default:
		return true
	}
}

// TrialState describes the trial window relative to a reference date. This is
// presentation-only detail (badge and countdown on the contract screen); the
// projection itself only uses the billing gate above.
type TrialState struct {
	InTrial        bool `json:"in_trial"`
	RemainingDays  int  `json:"remaining_days"`
	LastTrialMonth bool `json:"last_trial_month"`
}

// TrialStateAt computes the trial window status as of a reference date.
func TrialStateAt(startDate time.Time, trialDays int, at time.Time) TrialState {
	billingStart := BillingStart(startDate, trialDays)
	if !at.Before(billingStart) {
		return TrialState{}
	}

	remaining := int(billingStart.Sub(at).Hours() / 24)
	return TrialState{
		InTrial:        true,
		RemainingDays:  remaining,
		LastTrialMonth: MonthOf(at) == MonthOf(billingStart),
	}
}
