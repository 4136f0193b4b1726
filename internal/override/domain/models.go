// Package domain contains the revenue override model: a manual per-month
// replacement of a contract's projected billing amount.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// RevenueOverride pins a contract's billed amount for one calendar month.
// One row per (contract, year, month); writes upsert.
type RevenueOverride struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	ContractID snowflake.ID `gorm:"not null;uniqueIndex:idx_override_month" json:"contract_id"`
	Year       int          `gorm:"not null;uniqueIndex:idx_override_month" json:"year"`
	Month      int          `gorm:"not null;uniqueIndex:idx_override_month" json:"month"`

	AmountCents int64 `gorm:"not null" json:"amount_cents"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (RevenueOverride) TableName() string { return "revenue_overrides" }
