package http

import (
	"context"
	"log/slog"
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Use case contracts. The command and query handlers satisfy them; tests
// replace them with mocks.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int64, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error)
	}
	ListItemsHandler interface {
		Handle(ctx context.Context, query queries.ListItemsQuery) ([]queries.ListItemsQueryResponse, error)
	}
	CreateItemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateItemCommand) (int64, error)
	}
	UpdateItemHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateItemCommand) error
	}
	DeleteItemHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteItemCommand) error
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	ChangeOrderStatus ChangeOrderStatusHandler
	ListOrders        ListOrdersHandler
	ListItems         ListItemsHandler
	CreateItem        CreateItemHandler
	UpdateItem        UpdateItemHandler
	DeleteItem        DeleteItemHandler
}

// Server translates HTTP requests into commands and queries and shapes their
// results. It holds no business rules of its own.
type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
		logger:   logger.With("component", "http"),
	}
}

// CreateOrder handles POST /api/pedido.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, bodyError(err))
	}

	lines, err := req.orderLines()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerName, lines)
	if err != nil {
		return s.fail(c, err)
	}

	orderID, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.OrderCreated()
	return c.JSON(http.StatusOK, CreateOrderResponse{OrderID: orderID})
}

// ListOrders handles GET /api/pedidos - newest order first.
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		products := make([]ProductResponse, len(o.LineItems))
		for j, li := range o.LineItems {
			products[j] = ProductResponse{Name: li.ProductName, Price: li.Price}
		}
		response[i] = OrderResponse{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			Status:       o.Status.String(),
			Products:     products,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/pedido/:id.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req UpdateOrderStatusRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, bodyError(err))
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	s.metrics.StatusChanged(cmd.Status().String())
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// ListItems handles GET /api/productos.
func (s *Server) ListItems(c echo.Context) error {
	items, err := s.handlers.ListItems.Handle(c.Request().Context(), queries.NewListItemsQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]ItemResponse, len(items))
	for i, item := range items {
		response[i] = ItemResponse{ID: item.ID, Name: item.Name, Price: item.Price}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateItem handles POST /api/productos.
func (s *Server) CreateItem(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, bodyError(err))
	}

	price, err := req.price()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateItemCommand(req.Name, price)
	if err != nil {
		return s.fail(c, err)
	}

	if _, err = s.handlers.CreateItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// UpdateItem handles PUT /api/productos/:id.
func (s *Server) UpdateItem(c echo.Context) error {
	itemID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req ItemRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, bodyError(err))
	}

	price, err := req.price()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateItemCommand(itemID, req.Name, price)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.UpdateItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// DeleteItem handles DELETE /api/productos/:id. Unknown ids succeed.
func (s *Server) DeleteItem(c echo.Context) error {
	itemID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteItemCommand(itemID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.DeleteItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

func pathID(c echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}
