package repository

import (
	"context"
	"errors"

	"github.com/revendahq/revenda/pkg/db/option"
	"gorm.io/gorm"
)

type gormStore[T any] struct {
	db *gorm.DB
}

// ProvideStore builds a Store for one record type on the shared connection.
func ProvideStore[T any](db *gorm.DB) Store[T] {
	return &gormStore[T]{db: db}
}

func (s *gormStore[T]) WithTrx(tx *gorm.DB) Store[T] {
	return &gormStore[T]{db: tx}
}

func (s *gormStore[T]) Find(ctx context.Context, filter *T, opts ...option.QueryOption) ([]*T, error) {
	stmt := s.db.WithContext(ctx).Where(filter)
	for _, opt := range opts {
		stmt = opt.Apply(stmt)
	}

	var records []*T
	if err := stmt.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindOne returns the matching record, or nil without error when nothing
// matches. Callers translate nil into their domain's not-found error.
func (s *gormStore[T]) FindOne(ctx context.Context, filter *T, opts ...option.QueryOption) (*T, error) {
	stmt := s.db.WithContext(ctx).Where(filter)
	for _, opt := range opts {
		stmt = opt.Apply(stmt)
	}

	var record T
	if err := stmt.First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (s *gormStore[T]) Create(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Create(record).Error
}
