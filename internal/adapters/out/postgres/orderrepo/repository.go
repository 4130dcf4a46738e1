package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOrderIsAlreadyPersisted is returned by Add for an order that already has an id.
var ErrOrderIsAlreadyPersisted = errs.NewValueIsInvalidErrorWithCause(
	"order", errors.New("order is already persisted"),
)

// GormOrderRepository implements OrderRepository using GORM.
// Atomicity of Add relies on the caller: run it on a transaction obtained
// from the unit of work.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the header, then one row per line item, and assigns the new id
// to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsPersisted() {
		return ErrOrderIsAlreadyPersisted
	}

	db := r.db.WithContext(ctx)

	header := headerFromDomain(aggregate)
	if err := db.Omit(clause.Associations).Create(&header).Error; err != nil {
		return errs.NewStoreFailureError("insert order", err)
	}

	for i, item := range lineItemsFromDomain(header.ID, aggregate.LineItems()) {
		if err := db.Create(&item).Error; err != nil {
			return errs.NewStoreFailureError(fmt.Sprintf("insert line item %d", i), err)
		}
	}

	return aggregate.AssignID(header.ID)
}

// Get retrieves an order with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order and locks its header row until the
// surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(db *gorm.DB, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := db.
		Preload("LineItems", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, errs.NewStoreFailureError("select order", err)
	}

	o, err := toDomain(dto)
	if err != nil {
		return nil, errs.NewStoreFailureError("read order", err)
	}
	return o, nil
}

// UpdateStatus writes the status column only.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return errs.NewStoreFailureError("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	return nil
}
