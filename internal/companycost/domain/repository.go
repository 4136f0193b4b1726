package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Repository covers the cost rows, which need bespoke filters. Sections and
// categories are plain CRUD and go through the generic store.
type Repository interface {
	InsertCost(ctx context.Context, db *gorm.DB, cost *CompanyCost) error
	FindCostByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*CompanyCost, error)
	ListCosts(ctx context.Context, db *gorm.DB, activeOnly bool) ([]CompanyCost, error)
}
