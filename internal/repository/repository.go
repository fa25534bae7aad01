// Package repository is the only reader and writer of persisted records.
package repository

import (
	"context"
	"errors"

	"github.com/grantdesk/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository provides access to all records.
//
// A Repository is safe for concurrent use. It is bound to a transaction
// when created by Transaction.
type Repository struct {
	db          *gorm.DB
	phoneRegion string
}

type Option func(*Repository)

// WithPhoneRegion sets the region used for phone numbers that do
// not start with a country code.
func WithPhoneRegion(region string) Option {
	return func(r *Repository) {
		r.phoneRegion = region
	}
}

// New returns a Repository that uses db.
func New(db *gorm.DB, options ...Option) *Repository {
	r := &Repository{
		db:          db,
		phoneRegion: "US",
	}

	for _, o := range options {
		o(r)
	}

	return r
}

// WithTx returns a copy of the Repository that runs all queries on tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{
		db:          tx,
		phoneRegion: r.phoneRegion,
	}
}

// Transaction runs fn in a database transaction.
//
// The transaction is committed when fn returns nil and rolled back
// when it returns an error or panics.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// Ping verifies that the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// first loads the record matching the conditions.
//
// Not finding a record is not an error, found is false in that case.
func first[T any](ctx context.Context, db *gorm.DB, query string, args ...any) (record T, found bool, err error) {
	err = db.WithContext(ctx).Where(query, args...).First(&record).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return record, false, nil
	}

	if err != nil {
		return record, false, err
	}

	return record, true, nil
}

// create inserts a record without touching its associations.
func create(ctx context.Context, db *gorm.DB, record any) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(record).Error
}
