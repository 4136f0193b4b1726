// Package domain defines the financial report shapes: five derived views
// over the contract portfolio for one calendar year.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/revendahq/revenda/internal/billing"
)

// ViewType identifies one of the five derived report views.
type ViewType string

const (
	ViewRevenue        ViewType = "revenue"
	ViewLicenseCost    ViewType = "license_cost"
	ViewTax            ViewType = "tax"
	ViewBankSlip       ViewType = "bank_slip"
	ViewCostAllocation ViewType = "cost_allocation"
)

// ViewKind is the sign convention of a view. All series carry positive
// magnitudes; expense views are flipped by the presentation layer.
type ViewKind string

const (
	KindRevenue ViewKind = "revenue"
	KindExpense ViewKind = "expense"
)

// Kind returns the sign convention for a view type.
func (v ViewType) Kind() ViewKind {
	if v == ViewRevenue {
		return KindRevenue
	}
	return KindExpense
}

// ContractSeries is one contract's 12-month series within a view, in
// centavos, January first.
type ContractSeries struct {
	ContractID     string    `json:"contract_id"`
	ContractNumber string    `json:"contract_number"`
	CompanyName    string    `json:"company_name"`
	Months         [12]int64 `json:"months"`
	TotalCents     int64     `json:"total_cents"`
}

// View is one derived view: per-contract series plus monthly and annual
// totals.
type View struct {
	Type             ViewType         `json:"type"`
	Kind             ViewKind         `json:"kind"`
	Contracts        []ContractSeries `json:"contracts"`
	MonthlyTotals    [12]int64        `json:"monthly_totals"`
	AnnualTotalCents int64            `json:"annual_total_cents"`
}

// FinancialReport is the full projection for a year.
type FinancialReport struct {
	Year        int       `json:"year"`
	TaxPercent  float64   `json:"tax_percent"`
	Views       []View    `json:"views"`
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ContractProjection is the single-contract slice of the report, plus the
// trial and license context the contract screen shows.
type ContractProjection struct {
	ContractID   string               `json:"contract_id"`
	Year         int                  `json:"year"`
	Revenue      [12]int64            `json:"revenue"`
	Distributed  [12]int64            `json:"distributed"`
	LicenseCost  [12]int64            `json:"license_cost"`
	LicenseQuote billing.LicenseQuote `json:"license_quote"`
	TrialState   billing.TrialState   `json:"trial_state"`
}

type Service interface {
	Financial(ctx context.Context, year int) (FinancialReport, error)
	ContractProjection(ctx context.Context, contractID string, year int) (ContractProjection, error)
}

var (
	ErrInvalidYear = errors.New("invalid_year")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
