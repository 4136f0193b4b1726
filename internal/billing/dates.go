// Package billing is the projection engine for resold contracts: given raw
// contract, adjustment, plan and override records it computes what a contract
// bills (or costs) in any calendar month. Every function here is pure and
// deterministic; malformed upstream data degrades to zero instead of erroring.
package billing

import (
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// Upstream rows mix ISO dates, pt-BR day-first dates and full timestamps.
var dateLayouts = []string{
	isoDate,
	"02/01/2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate normalizes the date formats found in the store. The boolean is
// false when no layout matches; callers treat such contracts as never billing.
func ParseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a date in the canonical stored form.
func FormatDate(t time.Time) string {
	return t.UTC().Format(isoDate)
}

// MonthKey addresses one calendar month cell of a projection.
type MonthKey struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Index is a total ordering over months; differences are month distances.
func (k MonthKey) Index() int {
	return k.Year*12 + int(k.Month) - 1
}

func (k MonthKey) Before(other MonthKey) bool { return k.Index() < other.Index() }
func (k MonthKey) After(other MonthKey) bool  { return k.Index() > other.Index() }

// End returns the last day of the month at 23:59:59 UTC. Status changes are
// evaluated against this boundary, so a mid-month termination still bills its
// own month.
func (k MonthKey) End() time.Time {
	firstOfNext := time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.Add(-time.Second)
}

// MonthsBetween returns to minus from in whole months.
func MonthsBetween(from, to MonthKey) int {
	return to.Index() - from.Index()
}
