package domain

import (
	"context"
	"errors"
)

type CreateAdjustmentRequest struct {
	ContractID      string
	AdjustmentType  string `json:"adjustment_type"`
	AdjustmentValue string `json:"adjustment_value"`
	EffectiveDate   string `json:"effective_date"`
}

type Service interface {
	Create(context.Context, CreateAdjustmentRequest) (Adjustment, error)
	ListByContract(context.Context, string) ([]Adjustment, error)
}

var (
	ErrInvalidID              = errors.New("invalid_id")
	ErrInvalidAdjustmentType  = errors.New("invalid_adjustment_type")
	ErrInvalidAdjustmentValue = errors.New("invalid_adjustment_value")
	ErrInvalidEffectiveDate   = errors.New("invalid_effective_date")
	ErrContractNotFound       = errors.New("contract_not_found")
)
