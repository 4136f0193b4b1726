package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/revendahq/revenda/internal/companycost/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertCost(ctx context.Context, db *gorm.DB, cost *domain.CompanyCost) error {
	return db.WithContext(ctx).Create(cost).Error
}

func (r *repo) FindCostByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.CompanyCost, error) {
	var cost domain.CompanyCost
	err := db.WithContext(ctx).
		Model(&domain.CompanyCost{}).
		Where("id = ?", id).
		First(&cost).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &cost, nil
}

func (r *repo) ListCosts(ctx context.Context, db *gorm.DB, activeOnly bool) ([]domain.CompanyCost, error) {
	var costs []domain.CompanyCost
	stmt := db.WithContext(ctx).Model(&domain.CompanyCost{})
	if activeOnly {
		stmt = stmt.Where("is_active = ?", true)
	}
	err := stmt.Order("category asc, description asc").Find(&costs).Error
	if err != nil {
		return nil, err
	}
	return costs, nil
}
