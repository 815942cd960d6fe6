// Package store exposes the collection-level operations the rest of the
// backend consumes: full-scan list, get, create, update, delete, and a
// change subscription that signals after every write so subscribers can
// refetch the full result set. There are no deltas and no cross-write
// transactions; two concurrent writers race with last-write-wins.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection names.
const (
	CollectionProducts   = "products"
	CollectionOrders     = "orders"
	CollectionCategories = "categories"
	CollectionCustomers  = "customers"
)

var ErrNotFound = errors.New("record not found")

// Events signals collection changes to subscribers (admin SSE streams).
var Events = NewHub()

// QueryOption narrows or orders a List call.
type QueryOption func(*gorm.DB) *gorm.DB

func Where(query any, args ...any) QueryOption {
	return func(db *gorm.DB) *gorm.DB { return db.Where(query, args...) }
}

func OrderBy(expr string) QueryOption {
	return func(db *gorm.DB) *gorm.DB { return db.Order(expr) }
}

// List returns the full collection, optionally filtered/ordered.
func List[T any](ctx context.Context, db *gorm.DB, opts ...QueryOption) ([]T, error) {
	q := db.WithContext(ctx)
	for _, opt := range opts {
		q = opt(q)
	}
	records := []T{}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Get fetches one record by id.
func Get[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) (*T, error) {
	var record T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Create inserts a record (createdAt/updatedAt are stamped by GORM) and
// notifies subscribers of the collection.
func Create[T any](ctx context.Context, db *gorm.DB, collection string, record *T) error {
	if err := db.WithContext(ctx).Create(record).Error; err != nil {
		return err
	}
	Events.Notify(collection)
	return nil
}

// Update applies a partial update by id (updatedAt is stamped by GORM)
// and notifies subscribers.
func Update[T any](ctx context.Context, db *gorm.DB, collection string, id uuid.UUID, fields map[string]any) error {
	var model T
	res := db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	Events.Notify(collection)
	return nil
}

// Save writes a full record back and notifies subscribers.
func Save[T any](ctx context.Context, db *gorm.DB, collection string, record *T) error {
	if err := db.WithContext(ctx).Save(record).Error; err != nil {
		return err
	}
	Events.Notify(collection)
	return nil
}

// Delete removes a record by id and notifies subscribers.
func Delete[T any](ctx context.Context, db *gorm.DB, collection string, id uuid.UUID) error {
	var model T
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	Events.Notify(collection)
	return nil
}
