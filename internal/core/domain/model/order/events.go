package order

import "time"

// CreatedEvent describes an order that was committed to the store.
type CreatedEvent struct {
	OrderID      int64
	CustomerName string
	Status       Status
	LineItems    []LineItem
	OccurredAt   time.Time
}

// NewCreatedEvent snapshots a persisted order.
func NewCreatedEvent(o *Order, at time.Time) CreatedEvent {
	return CreatedEvent{
		OrderID:      o.ID(),
		CustomerName: o.CustomerName(),
		Status:       o.Status(),
		LineItems:    o.LineItems(),
		OccurredAt:   at,
	}
}

// StatusChangedEvent describes a committed status change.
type StatusChangedEvent struct {
	OrderID    int64
	From       Status
	To         Status
	OccurredAt time.Time
}
