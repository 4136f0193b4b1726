package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/revendahq/revenda/internal/adjustment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, adjustment *domain.Adjustment) error {
	return db.WithContext(ctx).Create(adjustment).Error
}

func (r *repo) ListByContract(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]domain.Adjustment, error) {
	var adjustments []domain.Adjustment
	err := db.WithContext(ctx).
		Model(&domain.Adjustment{}).
		Where("contract_id = ?", contractID).
		Order("effective_date asc, created_at asc").
		Find(&adjustments).Error
	if err != nil {
		return nil, err
	}
	return adjustments, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]domain.Adjustment, error) {
	var adjustments []domain.Adjustment
	err := db.WithContext(ctx).
		Model(&domain.Adjustment{}).
		Order("effective_date asc, created_at asc").
		Find(&adjustments).Error
	if err != nil {
		return nil, err
	}
	return adjustments, nil
}
