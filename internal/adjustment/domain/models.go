// Package domain contains persistence models for contract value adjustments.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// AdjustmentType discriminates how the adjustment value is expressed.
type AdjustmentType string

const (
	AdjustmentTypeValue      AdjustmentType = "value"
	AdjustmentTypePercentage AdjustmentType = "percentage"
)

// Adjustment records a renegotiation of a contract's recurring value. The
// projection engine only reads NewValue and EffectiveDate; PreviousValue and
// AdjustmentValue are kept for the audit trail.
type Adjustment struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	ContractID snowflake.ID `gorm:"not null;index" json:"contract_id"`

	AdjustmentType  AdjustmentType `gorm:"type:text;not null" json:"adjustment_type"`
	AdjustmentValue string         `gorm:"not null" json:"adjustment_value"`
	PreviousValue   string         `gorm:"not null" json:"previous_value"`
	NewValue        string         `gorm:"not null" json:"new_value"`

	EffectiveDate string    `gorm:"not null" json:"effective_date"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Adjustment) TableName() string { return "contract_adjustments" }
