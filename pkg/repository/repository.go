package repository

import (
	"context"

	"github.com/revendahq/revenda/pkg/db/option"
	"gorm.io/gorm"
)

// Store is a small generic query layer over gorm for catalog-style records
// that never need bespoke SQL, such as financial sections and categories.
// Domains with richer queries (contracts, overrides) declare their own
// repository interfaces instead.
type Store[T any] interface {
	// WithTrx rebinds the store to a transaction handle so reads and
	// writes join an enclosing gorm.DB.Transaction block.
	WithTrx(tx *gorm.DB) Store[T]
	Find(ctx context.Context, filter *T, opts ...option.QueryOption) ([]*T, error)
	FindOne(ctx context.Context, filter *T, opts ...option.QueryOption) (*T, error)
	Create(ctx context.Context, record *T) error
}
