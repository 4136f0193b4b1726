package billing

import (
	"sort"
	"time"

	adjustmentdomain "github.com/revendahq/revenda/internal/adjustment/domain"
	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
)

type appliedAdjustment struct {
	effective time.Time
	created   time.Time
	newValue  string
}

// EffectiveValue resolves the contract's value in centavos for the target
// month after applying recorded adjustments. Monthly contracts compare the
// effective date against the month-end boundary; semestral and annual
// contracts compare at month granularity, so an adjustment effective any day
// of the billing month already applies to that occurrence. Adjustments whose
// effective date does not parse are skipped, and two entries with the same
// effective date collapse to the latest recorded one.
func EffectiveValue(baseValue string, cadence contractdomain.Cadence, adjustments []adjustmentdomain.Adjustment, target MonthKey) int64 {
	latest := make(map[time.Time]appliedAdjustment, len(adjustments))
	for _, adj := range adjustments {
		effective, ok := ParseDate(adj.EffectiveDate)
		if !ok {
			continue
		}
		if cadence == contractdomain.CadenceMonthly {
			if effective.After(target.End()) {
				continue
			}
		} else if MonthOf(effective).After(target) {
			continue
		}

		current, seen := latest[effective]
		if !seen || adj.CreatedAt.After(current.created) {
			latest[effective] = appliedAdjustment{
				effective: effective,
				created:   adj.CreatedAt,
				newValue:  adj.NewValue,
			}
		}
	}
	if len(latest) == 0 {
		return ParseAmount(baseValue)
	}

	applied := make([]appliedAdjustment, 0, len(latest))
	for _, adj := range latest {
		applied = append(applied, adj)
	}
	sort.Slice(applied, func(i, j int) bool {
		return applied[i].effective.Before(applied[j].effective)
	})

	return ParseAmount(applied[len(applied)-1].newValue)
}
