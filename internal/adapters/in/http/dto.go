package http

import (
	"errors"
	"fmt"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/pkg/errs"
)

// Wire names follow the public API, which predates this service and speaks Spanish.

// ProductPayload is one purchased product in a request or response.
type ProductPayload struct {
	Name  string   `json:"nombre"`
	Price *float64 `json:"precio"`
}

// CreateOrderRequest is the body of POST /api/pedido.
type CreateOrderRequest struct {
	CustomerName string           `json:"cliente"`
	Products     []ProductPayload `json:"productos"`
}

// CreateOrderResponse is returned after an order is stored.
type CreateOrderResponse struct {
	OrderID int64 `json:"pedidoId"`
}

// UpdateOrderStatusRequest is the body of PUT /api/pedido/:id.
type UpdateOrderStatusRequest struct {
	Status string `json:"estado"`
}

// OrderResponse is one entry of GET /api/pedidos.
type OrderResponse struct {
	ID           int64             `json:"id"`
	CustomerName string            `json:"cliente"`
	Status       string            `json:"estado"`
	Products     []ProductResponse `json:"productos"`
}

// ProductResponse is a line item snapshot.
type ProductResponse struct {
	Name  string  `json:"nombre"`
	Price float64 `json:"precio"`
}

// ItemRequest is the body of POST and PUT /api/productos.
type ItemRequest struct {
	Name  string   `json:"nombre"`
	Price *float64 `json:"precio"`
}

// ItemResponse is one entry of GET /api/productos.
type ItemResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"nombre"`
	Price float64 `json:"precio"`
}

// SuccessResponse acknowledges a write.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse carries the reason of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

var errPriceIsRequired = errs.NewValueIsRequiredError("price")

// orderLines converts the products of the request. A missing or null price is
// reported here because the command only sees plain numbers.
func (r CreateOrderRequest) orderLines() ([]commands.OrderLine, error) {
	lines := make([]commands.OrderLine, 0, len(r.Products))
	var lineErrs []error
	for i, p := range r.Products {
		if p.Price == nil {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", i, errPriceIsRequired))
			continue
		}
		lines = append(lines, commands.OrderLine{Name: p.Name, Price: *p.Price})
	}
	if len(lineErrs) > 0 {
		return nil, errors.Join(lineErrs...)
	}
	return lines, nil
}

func (r ItemRequest) price() (float64, error) {
	if r.Price == nil {
		return 0, errPriceIsRequired
	}
	return *r.Price, nil
}
