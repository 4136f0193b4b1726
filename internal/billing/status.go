package billing

import (
	"sort"

	contractdomain "github.com/revendahq/revenda/internal/contract/domain"
)

// InactiveForMonth replays the termination/reactivation log and reports
// whether the contract sits in an inactive window for the target month. A
// termination takes effect the month after its status date, so the month a
// contract terminates in still bills; a reactivation takes effect in its own
// month. Events are walked in date order with terminations sorting before
// reactivations on the same day; the store guards against consecutive
// duplicates but the resolver does not depend on that, the last applicable
// event simply wins. No history means active.
func InactiveForMonth(entries []contractdomain.ContractStatusEntry, target MonthKey) bool {
	if len(entries) == 0 {
		return false
	}

	sorted := make([]contractdomain.ContractStatusEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].StatusDate.Equal(sorted[j].StatusDate) {
			return sorted[i].StatusDate.Before(sorted[j].StatusDate)
		}
		return sorted[i].StatusType == contractdomain.StatusEntryTermination &&
			sorted[j].StatusType == contractdomain.StatusEntryReactivation
	})

	inactive := false
	for _, entry := range sorted {
		eventMonth := MonthOf(entry.StatusDate)
		if entry.StatusType == contractdomain.StatusEntryTermination {
			if !eventMonth.Before(target) {
				continue
			}
		} else if eventMonth.After(target) {
			continue
		}
		inactive = entry.StatusType == contractdomain.StatusEntryTermination
	}
	return inactive
}
