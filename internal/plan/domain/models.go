// Package domain contains persistence models for pricing plans and addons.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Plan is an upstream pricing tier. The employee range is persisted in the
// source's "min-max" form and parsed at the edge; a malformed range simply
// never matches.
type Plan struct {
	ID   snowflake.ID `gorm:"primaryKey" json:"id"`
	Name string       `gorm:"not null" json:"name"`

	EmployeeRange string `gorm:"not null" json:"employee_range"`

	MonthlyPriceCents   int64 `gorm:"not null;default:0" json:"monthly_price_cents"`
	SemestralPriceCents int64 `gorm:"not null;default:0" json:"semestral_price_cents"`
	AnnualPriceCents    int64 `gorm:"not null;default:0" json:"annual_price_cents"`

	AllowedCNPJs           int   `gorm:"column:allowed_cnpjs;not null;default:1" json:"allowed_cnpjs"`
	LicenseCostCents       int64 `gorm:"not null;default:0" json:"license_cost_cents"`
	LicenseExemptionMonths int   `gorm:"not null;default:0" json:"license_exemption_months"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Plan) TableName() string { return "plans" }

// AddonUnitType is what an addon charges for.
type AddonUnitType string

const (
	AddonUnitEmployee AddonUnitType = "employee"
	AddonUnitCNPJ     AddonUnitType = "cnpj"
)

// AddonPricingType is how an addon's units are counted.
type AddonPricingType string

const (
	AddonPricingPerUnit AddonPricingType = "per_unit"
	AddonPricingPackage AddonPricingType = "package"
)

// PackageRange is one bracket of a package-priced addon.
type PackageRange struct {
	Min   int   `json:"min"`
	Max   int   `json:"max"`
	Price int64 `json:"price"`
}

// PlanAddon is an extra recurring cost unit layered on top of a plan.
type PlanAddon struct {
	ID   snowflake.ID `gorm:"primaryKey" json:"id"`
	Name string       `gorm:"not null" json:"name"`

	UnitType    AddonUnitType    `gorm:"type:text;not null" json:"unit_type"`
	PricingType AddonPricingType `gorm:"type:text;not null" json:"pricing_type"`

	PricePerUnitCents int64          `gorm:"not null;default:0" json:"price_per_unit_cents"`
	LicenseCostCents  int64          `gorm:"not null;default:0" json:"license_cost_cents"`
	PackageIncrement  int            `gorm:"not null;default:0" json:"package_increment"`
	PackageRanges     datatypes.JSON `gorm:"type:jsonb" json:"package_ranges,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (PlanAddon) TableName() string { return "plan_addons" }
