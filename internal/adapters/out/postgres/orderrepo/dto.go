// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderDTO represents the order header row. Line items live in their own table
// and are written one by one after the header, inside the same transaction.
type OrderDTO struct {
	ID           int64         `gorm:"primaryKey;autoIncrement"`
	CustomerName string        `gorm:"type:text;not null"`
	Status       string        `gorm:"type:text;not null;default:Pending"`
	LineItems    []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order headers.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is the snapshot of one purchased product.
// It never references the catalog, so catalog edits cannot change it.
type LineItemDTO struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	OrderID     int64   `gorm:"not null;index"`
	ProductName string  `gorm:"type:text;not null"`
	Price       float64 `gorm:"not null"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// headerFromDomain maps the order header. Line items are mapped separately by
// lineItemsFromDomain once the header id is known.
func headerFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		Status:       o.Status().String(),
	}
}

func lineItemsFromDomain(orderID int64, items []order.LineItem) []LineItemDTO {
	dtos := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, LineItemDTO{
			OrderID:     orderID,
			ProductName: item.ProductName(),
			Price:       item.Price().Amount(),
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate. A status outside the vocabulary or a
// negative price means the row was written by something other than this
// service and is reported as an error.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		price, priceErr := kernel.NewPrice(li.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewLineItem(li.ProductName, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, dto.CustomerName, status, items)
}
