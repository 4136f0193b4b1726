package domain

import (
	"context"
	"errors"
)

type CreateCostRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	MonthlyCost string `json:"monthly_cost"`
}

type UpdateCostRequest struct {
	ID          string
	Category    *string `json:"category"`
	Description *string `json:"description"`
	MonthlyCost *string `json:"monthly_cost"`
	IsActive    *bool   `json:"is_active"`
}

type CreateSectionRequest struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

type CreateCategoryRequest struct {
	SectionID string `json:"section_id"`
	Name      string `json:"name"`
}

type Service interface {
	CreateCost(context.Context, CreateCostRequest) (CompanyCost, error)
	ListCosts(context.Context, bool) ([]CompanyCost, error)
	UpdateCost(context.Context, UpdateCostRequest) (CompanyCost, error)
	CreateSection(context.Context, CreateSectionRequest) (FinancialSection, error)
	ListSections(context.Context) ([]FinancialSection, error)
	CreateCategory(context.Context, CreateCategoryRequest) (FinancialCategory, error)
	ListCategories(ctx context.Context, sectionID string) ([]FinancialCategory, error)
}

var (
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidCategory    = errors.New("invalid_category")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidName        = errors.New("invalid_name")
	ErrSectionNotFound    = errors.New("section_not_found")
	ErrNotFound           = errors.New("not_found")
	ErrDuplicateName      = errors.New("duplicate_name")
)
