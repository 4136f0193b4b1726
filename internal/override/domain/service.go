package domain

import (
	"context"
	"errors"
)

type UpsertOverrideRequest struct {
	ContractID string
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Value      string `json:"value"`
}

type Service interface {
	Upsert(context.Context, UpsertOverrideRequest) (RevenueOverride, error)
	ListByContract(context.Context, string) ([]RevenueOverride, error)
	Delete(ctx context.Context, contractID string, year, month int) error
}

var (
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidPeriod    = errors.New("invalid_period")
	ErrContractNotFound = errors.New("contract_not_found")
	ErrNotFound         = errors.New("not_found")
)
