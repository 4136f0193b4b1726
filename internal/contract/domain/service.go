package domain

import (
	"context"
	"errors"

	"github.com/revendahq/revenda/pkg/db/pagination"
)

type CreateContractRequest struct {
	CompanyName      string `json:"company_name"`
	CNPJ             string `json:"cnpj"`
	City             string `json:"city"`
	State            string `json:"state"`
	MonthlyValue     string `json:"monthly_value"`
	PlanCadence      string `json:"plan_cadence"`
	TrialDays        int    `json:"trial_days"`
	EmployeeCount    int    `json:"employee_count"`
	CNPJCount        int    `json:"cnpj_count"`
	StartDate        string `json:"start_date"`
	RenewalDate      string `json:"renewal_date"`
}

type UpdateContractRequest struct {
	ID            string
	CompanyName   *string `json:"company_name"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	MonthlyValue  *string `json:"monthly_value"`
	TrialDays     *int    `json:"trial_days"`
	EmployeeCount *int    `json:"employee_count"`
	CNPJCount     *int    `json:"cnpj_count"`
	RenewalDate   *string `json:"renewal_date"`
}

type ListContractRequest struct {
	PageToken string
	PageSize  int
	Status    string
	Cadence   string
	State     string
}

type ListContractResponse struct {
	pagination.PageInfo
	Contracts []Contract `json:"contracts"`
}

type TerminateContractRequest struct {
	ID              string
	TerminationDate string `json:"termination_date"`
}

type ReactivateContractRequest struct {
	ID               string
	ReactivationDate string `json:"reactivation_date"`
}

type Service interface {
	Create(context.Context, CreateContractRequest) (Contract, error)
	GetByID(context.Context, string) (Contract, error)
	List(context.Context, ListContractRequest) (ListContractResponse, error)
	Update(context.Context, UpdateContractRequest) (Contract, error)
	Terminate(context.Context, TerminateContractRequest) (Contract, error)
	Reactivate(context.Context, ReactivateContractRequest) (Contract, error)
	StatusHistory(context.Context, string) ([]ContractStatusEntry, error)
}

var (
	ErrInvalidID            = errors.New("invalid_id")
	ErrInvalidCompanyName   = errors.New("invalid_company_name")
	ErrInvalidCadence       = errors.New("invalid_cadence")
	ErrInvalidStartDate     = errors.New("invalid_start_date")
	ErrInvalidStatusDate    = errors.New("invalid_status_date")
	ErrInvalidTrialDays     = errors.New("invalid_trial_days")
	ErrInvalidEmployeeCount = errors.New("invalid_employee_count")
	ErrInvalidCNPJCount     = errors.New("invalid_cnpj_count")
	ErrNotFound             = errors.New("not_found")
	ErrAlreadyInactive      = errors.New("contract_already_inactive")
	ErrAlreadyActive        = errors.New("contract_already_active")
	ErrDuplicateTransition  = errors.New("duplicate_status_transition")
)
