// Package domain contains persistence models for resold contracts and their
// status history.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Cadence is the billing frequency of a contract.
type Cadence string

const (
	CadenceMonthly    Cadence = "monthly"
	CadenceSemiannual Cadence = "semiannual"
	CadenceAnnual     Cadence = "annual"
)

// ParseCadence normalizes stored cadence values. Legacy rows use the
// pt-BR spelling "semestral" for the six-month cycle.
func ParseCadence(raw string) (Cadence, bool) {
	switch Cadence(raw) {
	case CadenceMonthly:
		return CadenceMonthly, true
	case CadenceSemiannual, Cadence("semestral"):
		return CadenceSemiannual, true
	case CadenceAnnual, Cadence("anual"):
		return CadenceAnnual, true
	default:
		return "", false
	}
}

// ContractStatus represents lifecycle states for a contract.
type ContractStatus string

const (
	ContractStatusActive   ContractStatus = "ACTIVE"
	ContractStatusInactive ContractStatus = "INACTIVE"
)

// Contract captures a sold subscription of the upstream HR product.
//
// Monetary and date fields that originate from free-text data entry are kept
// as raw strings; the billing engine normalizes them and degrades to zero on
// garbage instead of failing the row.
type Contract struct {
	ID     snowflake.ID `gorm:"primaryKey" json:"id"`
	Number string       `gorm:"not null;uniqueIndex" json:"number"`

	CompanyName string `gorm:"not null" json:"company_name"`
	CNPJ        string `gorm:"column:cnpj" json:"cnpj,omitempty"`
	City        string `gorm:"" json:"city,omitempty"`
	State       string `gorm:"" json:"state,omitempty"`

	MonthlyValue  string  `gorm:"not null" json:"monthly_value"`
	PlanCadence   Cadence `gorm:"type:text;not null" json:"plan_cadence"`
	TrialDays     int     `gorm:"not null;default:0" json:"trial_days"`
	EmployeeCount int     `gorm:"not null" json:"employee_count"`
	CNPJCount     int     `gorm:"column:cnpj_count;not null" json:"cnpj_count"`

	StartDate        string `gorm:"not null" json:"start_date"`
	RenewalDate      string `gorm:"" json:"renewal_date,omitempty"`
	TerminationDate  string `gorm:"" json:"termination_date,omitempty"`
	ReactivationDate string `gorm:"" json:"reactivation_date,omitempty"`

	Status    ContractStatus    `gorm:"type:text;not null" json:"status"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Contract) TableName() string { return "contracts" }

// StatusEntryType discriminates status history events.
type StatusEntryType string

const (
	StatusEntryTermination  StatusEntryType = "termination"
	StatusEntryReactivation StatusEntryType = "reactivation"
)

// ContractStatusEntry is an append-only termination/reactivation event.
// Entries for one contract alternate between the two types; the engine still
// tolerates historical rows that break that rule.
type ContractStatusEntry struct {
	ID         snowflake.ID    `gorm:"primaryKey" json:"id"`
	ContractID snowflake.ID    `gorm:"not null;index" json:"contract_id"`
	StatusDate time.Time       `gorm:"not null" json:"status_date"`
	StatusType StatusEntryType `gorm:"type:text;not null" json:"status_type"`
	Status     ContractStatus  `gorm:"type:text;not null" json:"status"`
	CreatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (ContractStatusEntry) TableName() string { return "contract_status_entries" }
