// Package itemrepo persists the product catalog.
package itemrepo

import (
	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/kernel"
)

// ItemDTO is one catalog row.
type ItemDTO struct {
	ID    int64   `gorm:"primaryKey;autoIncrement"`
	Name  string  `gorm:"type:text;not null"`
	Price float64 `gorm:"not null"`
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(item *catalog.Item) ItemDTO {
	return ItemDTO{
		ID:    item.ID(),
		Name:  item.Name(),
		Price: item.Price().Amount(),
	}
}

func toDomain(dto ItemDTO) (*catalog.Item, error) {
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreItem(dto.ID, dto.Name, price)
}
