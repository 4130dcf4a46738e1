package cmd

import (
	"errors"
	"log/slog"

	httpadapter "kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/kafka/orderpublisher"
	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/ports"
	"kitchen/internal/jobs"
	"kitchen/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// EventPublisher is an order event publisher owning connections that must be
// released on shutdown.
type EventPublisher interface {
	ports.OrderEventPublisher
	Close() error
}

// NewEventPublisher returns a Kafka publisher, or a no-op one when no broker
// is configured.
func NewEventPublisher(config Config) EventPublisher {
	brokers := config.KafkaBrokers()
	if len(brokers) == 0 {
		return orderpublisher.NopPublisher{}
	}
	return orderpublisher.NewKafkaPublisher(brokers, config.KafkaOrderChangedTopic)
}

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  EventPublisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		metrics:    m,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) itemUoWFactory() commands.ItemUoWFactory {
	return FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	return commands.NewUpdateItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateDeleteItemCommandHandler() commands.DeleteItemCommandHandler {
	return commands.NewDeleteItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListItemsQueryHandler() queries.ListItemsQueryHandler {
	return queries.NewListItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.gormDB)
}

// CreateRouter builds the HTTP API with every use case wired in.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		ListItems:         c.CreateListItemsQueryHandler(),
		CreateItem:        c.CreateCreateItemCommandHandler(),
		UpdateItem:        c.CreateUpdateItemCommandHandler(),
		DeleteItem:        c.CreateDeleteItemCommandHandler(),
	}, c.metrics, c.logger)

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		StaticDir:        c.config.StaticDir,
		ValidateRequests: c.config.HTTPValidateRequests,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCountOrdersByStatusQueryHandler(),
		c.metrics,
		c.config.BacklogReportSchedule,
		c.logger,
	)
}

// Close releases the event publisher and the database pool.
func (c *CompositionRoot) Close() error {
	pubErr := c.publisher.Close()

	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return errors.Join(pubErr, err)
	}
	return errors.Join(pubErr, sqlDB.Close())
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}
