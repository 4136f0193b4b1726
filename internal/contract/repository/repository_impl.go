package repository

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/revendahq/revenda/internal/contract/domain"
	"github.com/revendahq/revenda/pkg/db/option"
	"github.com/revendahq/revenda/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, contract *domain.Contract) error {
	return db.WithContext(ctx).Create(contract).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Contract, error) {
	var contract domain.Contract
	err := db.WithContext(ctx).
		Model(&domain.Contract{}).
		Where("id = ?", id).
		First(&contract).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &contract, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter, page pagination.Pagination) ([]*domain.Contract, error) {
	var contracts []*domain.Contract
	stmt := db.WithContext(ctx).Model(&domain.Contract{})
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.Cadence != "" {
		stmt = stmt.Where("plan_cadence = ?", filter.Cadence)
	}
	if filter.State != "" {
		stmt = stmt.Where("state = ?", filter.State)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]*domain.Contract, error) {
	var contracts []*domain.Contract
	err := db.WithContext(ctx).
		Model(&domain.Contract{}).
		Order("number asc").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

// NextNumber allocates the next human-readable contract number. Numbers are
// sequential and zero padded to six digits.
func (r *repo) NextNumber(ctx context.Context, db *gorm.DB) (string, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Contract{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", count+1), nil
}

func (r *repo) AppendStatusEntry(ctx context.Context, db *gorm.DB, entry *domain.ContractStatusEntry) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *repo) StatusEntries(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]domain.ContractStatusEntry, error) {
	var entries []domain.ContractStatusEntry
	err := db.WithContext(ctx).
		Model(&domain.ContractStatusEntry{}).
		Where("contract_id = ?", contractID).
		Order("status_date asc, created_at asc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repo) AllStatusEntries(ctx context.Context, db *gorm.DB) ([]domain.ContractStatusEntry, error) {
	var entries []domain.ContractStatusEntry
	err := db.WithContext(ctx).
		Model(&domain.ContractStatusEntry{}).
		Order("contract_id asc, status_date asc, created_at asc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repo) LatestStatusEntry(ctx context.Context, db *gorm.DB, contractID snowflake.ID) (*domain.ContractStatusEntry, error) {
	var entry domain.ContractStatusEntry
	err := db.WithContext(ctx).
		Model(&domain.ContractStatusEntry{}).
		Where("contract_id = ?", contractID).
		Order("status_date desc, created_at desc").
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
