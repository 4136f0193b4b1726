// Package domain contains persistence models for the reseller's own fixed
// cost structure: sections, categories and monthly cost records.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// CategoryTax is the category name whose cost descriptions carry embedded
// tax percentages ("ISS 5%"). Rows in this category feed the tax view and
// are excluded from fixed-cost allocation.
const CategoryTax = "tax"

// FinancialSection groups categories on the financial report.
type FinancialSection struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null;uniqueIndex" json:"name"`
	SortOrder int          `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (FinancialSection) TableName() string { return "financial_sections" }

// FinancialCategory is a named bucket within a section.
type FinancialCategory struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	SectionID snowflake.ID `gorm:"not null;index" json:"section_id"`
	Name      string       `gorm:"not null" json:"name"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (FinancialCategory) TableName() string { return "financial_categories" }

// CompanyCost is one recurring monthly cost row.
type CompanyCost struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Category    string       `gorm:"not null;index" json:"category"`
	Description string       `gorm:"not null" json:"description"`

	MonthlyCostCents int64 `gorm:"not null" json:"monthly_cost_cents"`
	IsActive         bool  `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (CompanyCost) TableName() string { return "company_costs" }
