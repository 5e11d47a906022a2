// Package repository implements generic CRUD over one record type bound to
// one engine handle. Every operation runs in its own short transaction,
// commits before returning and never caches rows between calls; the store
// stays the single source of truth. Store-native failures are translated to
// the service error taxonomy before they cross this boundary.
package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository is bound at construction to an engine handle and a record type.
type Repository[T any] struct {
	db *gorm.DB
}

// New binds a repository to an engine handle.
func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// Add persists a new record. An explicitly set ID is kept as-is, which the
// export pipeline relies on to preserve cross-references.
func (r *Repository[T]) Add(ctx context.Context, record *T) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
	return Translate(err)
}

// Update applies a partial, set-based update to the row matching id. Zero
// matched rows is a successful no-op.
func (r *Repository[T]) Update(ctx context.Context, id uint, fields map[string]any) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(new(T)).Where("id = ?", id).Updates(fields).Error
	})
	return Translate(err)
}

// Delete removes the row matching id, or returns ErrNotFound when no row
// matches. Dependent rows go with it via the store's cascading foreign keys.
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(new(T), id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return Translate(err)
}

// GetAll returns every record, fully materialized, in id order.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	var records []T
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, Translate(err)
	}
	return records, nil
}

// GetOne returns the record matching id, or ErrNotFound.
func (r *Repository[T]) GetOne(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, Translate(err)
	}
	return &record, nil
}
