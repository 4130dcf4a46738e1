package queries

import (
	"errors"

	"kitchen/internal/pkg/guard"
)

var (
	ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
		"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
	)
)

// CountOrdersByStatusQuery summarizes the kitchen backlog.
//
// Example:
//
//	counts, err := handler.Handle(ctx, NewCountOrdersByStatusQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders waiting\n", counts[order.Pending])
type CountOrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewCountOrdersByStatusQuery creates a backlog summary query.
func NewCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}
