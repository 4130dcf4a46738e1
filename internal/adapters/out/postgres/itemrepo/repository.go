package itemrepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Add inserts the item and assigns the new id to it.
func (r *GormItemRepository) Add(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreFailureError("insert item", err)
	}

	return item.AssignID(dto.ID)
}

// Get retrieves a single item.
func (r *GormItemRepository) Get(ctx context.Context, id int64) (*catalog.Item, error) {
	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id)
		}
		return nil, errs.NewStoreFailureError("select item", err)
	}

	item, err := toDomain(dto)
	if err != nil {
		return nil, errs.NewStoreFailureError("read item", err)
	}
	return item, nil
}

// Update overwrites name and price. An unknown id yields errs.ObjectNotFoundError.
func (r *GormItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "price": dto.Price})
	if result.Error != nil {
		return errs.NewStoreFailureError("update item", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", dto.ID)
	}

	return nil
}

// Delete removes the item. Deleting an unknown id succeeds.
func (r *GormItemRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ItemDTO{}).Error; err != nil {
		return errs.NewStoreFailureError("delete item", err)
	}
	return nil
}
