package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Upsert(ctx context.Context, db *gorm.DB, override *RevenueOverride) error
	FindByPeriod(ctx context.Context, db *gorm.DB, contractID snowflake.ID, year, month int) (*RevenueOverride, error)
	ListByContract(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]RevenueOverride, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]RevenueOverride, error)
	Delete(ctx context.Context, db *gorm.DB, contractID snowflake.ID, year, month int) error
}
