package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/revendahq/revenda/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListFilter struct {
	Status  ContractStatus
	Cadence Cadence
	State   string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, contract *Contract) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Contract, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter, page pagination.Pagination) ([]*Contract, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]*Contract, error)
	NextNumber(ctx context.Context, db *gorm.DB) (string, error)
	AppendStatusEntry(ctx context.Context, db *gorm.DB, entry *ContractStatusEntry) error
	StatusEntries(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]ContractStatusEntry, error)
	AllStatusEntries(ctx context.Context, db *gorm.DB) ([]ContractStatusEntry, error)
	LatestStatusEntry(ctx context.Context, db *gorm.DB, contractID snowflake.ID) (*ContractStatusEntry, error)
}
