package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/revendahq/revenda/internal/override/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, override *domain.RevenueOverride) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "contract_id"}, {Name: "year"}, {Name: "month"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"amount_cents", "updated_at"}),
		}).
		Create(override).Error
}

func (r *repo) FindByPeriod(ctx context.Context, db *gorm.DB, contractID snowflake.ID, year, month int) (*domain.RevenueOverride, error) {
	var override domain.RevenueOverride
	err := db.WithContext(ctx).
		Model(&domain.RevenueOverride{}).
		Where("contract_id = ? AND year = ? AND month = ?", contractID, year, month).
		First(&override).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &override, nil
}

func (r *repo) ListByContract(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]domain.RevenueOverride, error) {
	var overrides []domain.RevenueOverride
	err := db.WithContext(ctx).
		Model(&domain.RevenueOverride{}).
		Where("contract_id = ?", contractID).
		Order("year asc, month asc").
		Find(&overrides).Error
	if err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]domain.RevenueOverride, error) {
	var overrides []domain.RevenueOverride
	err := db.WithContext(ctx).
		Model(&domain.RevenueOverride{}).
		Order("contract_id asc, year asc, month asc").
		Find(&overrides).Error
	if err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, contractID snowflake.ID, year, month int) error {
	result := db.WithContext(ctx).
		Where("contract_id = ? AND year = ? AND month = ?", contractID, year, month).
		Delete(&domain.RevenueOverride{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
