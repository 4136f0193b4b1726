package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, adjustment *Adjustment) error
	ListByContract(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]Adjustment, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]Adjustment, error)
}
