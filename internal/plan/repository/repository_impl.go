package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/revendahq/revenda/internal/plan/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, plan *domain.Plan) error {
	return db.WithContext(ctx).Create(plan).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Plan, error) {
	var plan domain.Plan
	err := db.WithContext(ctx).
		Model(&domain.Plan{}).
		Where("id = ?", id).
		First(&plan).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, activeOnly bool) ([]domain.Plan, error) {
	var plans []domain.Plan
	stmt := db.WithContext(ctx).Model(&domain.Plan{})
	if activeOnly {
		stmt = stmt.Where("is_active = ?", true)
	}
	err := stmt.Order("license_cost_cents asc, name asc").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *repo) InsertAddon(ctx context.Context, db *gorm.DB, addon *domain.PlanAddon) error {
	return db.WithContext(ctx).Create(addon).Error
}

func (r *repo) ListAddons(ctx context.Context, db *gorm.DB, activeOnly bool) ([]domain.PlanAddon, error) {
	var addons []domain.PlanAddon
	stmt := db.WithContext(ctx).Model(&domain.PlanAddon{})
	if activeOnly {
		stmt = stmt.Where("is_active = ?", true)
	}
	err := stmt.Order("name asc").Find(&addons).Error
	if err != nil {
		return nil, err
	}
	return addons, nil
}
