package domain

import (
	"context"
	"errors"
)

type CreatePlanRequest struct {
	Name                   string `json:"name"`
	EmployeeRange          string `json:"employee_range"`
	MonthlyPrice           string `json:"monthly_price"`
	SemestralPrice         string `json:"semestral_price"`
	AnnualPrice            string `json:"annual_price"`
	AllowedCNPJs           int    `json:"allowed_cnpjs"`
	LicenseCost            string `json:"license_cost"`
	LicenseExemptionMonths int    `json:"license_exemption_months"`
}

type UpdatePlanRequest struct {
	ID                     string
	Name                   *string `json:"name"`
	EmployeeRange          *string `json:"employee_range"`
	MonthlyPrice           *string `json:"monthly_price"`
	SemestralPrice         *string `json:"semestral_price"`
	AnnualPrice            *string `json:"annual_price"`
	AllowedCNPJs           *int    `json:"allowed_cnpjs"`
	LicenseCost            *string `json:"license_cost"`
	LicenseExemptionMonths *int    `json:"license_exemption_months"`
	IsActive               *bool   `json:"is_active"`
}

type CreateAddonRequest struct {
	Name             string         `json:"name"`
	UnitType         string         `json:"unit_type"`
	PricingType      string         `json:"pricing_type"`
	PricePerUnit     string         `json:"price_per_unit"`
	LicenseCost      string         `json:"license_cost"`
	PackageIncrement int            `json:"package_increment"`
	PackageRanges    []PackageRange `json:"package_ranges"`
}

type Service interface {
	Create(context.Context, CreatePlanRequest) (Plan, error)
	GetByID(context.Context, string) (Plan, error)
	List(context.Context, bool) ([]Plan, error)
	Update(context.Context, UpdatePlanRequest) (Plan, error)
	CreateAddon(context.Context, CreateAddonRequest) (PlanAddon, error)
	ListAddons(context.Context, bool) ([]PlanAddon, error)
}

var (
	ErrInvalidID              = errors.New("invalid_id")
	ErrInvalidName            = errors.New("invalid_name")
	ErrInvalidEmployeeRange   = errors.New("invalid_employee_range")
	ErrInvalidExemptionMonths = errors.New("invalid_exemption_months")
	ErrInvalidUnitType        = errors.New("invalid_unit_type")
	ErrInvalidPricingType     = errors.New("invalid_pricing_type")
	ErrNotFound               = errors.New("not_found")
)
