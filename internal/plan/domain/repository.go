package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, plan *Plan) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Plan, error)
	List(ctx context.Context, db *gorm.DB, activeOnly bool) ([]Plan, error)
	InsertAddon(ctx context.Context, db *gorm.DB, addon *PlanAddon) error
	ListAddons(ctx context.Context, db *gorm.DB, activeOnly bool) ([]PlanAddon, error)
}
