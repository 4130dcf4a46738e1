package queries_test

import (
	"context"
	"testing"

	"kitchen/internal/adapters/out/postgres/itemrepo"
	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/pgtest"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	pg        *pgtest.Database
	orderRepo *orderrepo.GormOrderRepository
	itemRepo  *itemrepo.GormItemRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.orderRepo = orderrepo.NewGormOrderRepository(pg.DB)
	suite.itemRepo = itemrepo.NewGormItemRepository(pg.DB)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *QueryHandlersTestSuite) TestListOrders_Empty() {
	orders, err := queries.NewListOrdersQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewListOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *QueryHandlersTestSuite) TestListOrders_NewestFirstWithLineItemsInOrder() {
	first := suite.addOrder("Ana", suite.line("Coffee", 3.5))
	second := suite.addOrder("Luis", suite.line("Tea", 2.25), suite.line("Muffin", 2.0), suite.line("Tea", 2.25))

	orders, err := queries.NewListOrdersQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewListOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)

	suite.Equal(second.ID(), orders[0].ID)
	suite.Equal("Luis", orders[0].CustomerName)
	suite.Equal(order.Pending, orders[0].Status)
	suite.Equal([]queries.ListOrdersLineItem{
		{ProductName: "Tea", Price: 2.25},
		{ProductName: "Muffin", Price: 2.0},
		{ProductName: "Tea", Price: 2.25},
	}, orders[0].LineItems)

	suite.Equal(first.ID(), orders[1].ID)
	suite.Equal([]queries.ListOrdersLineItem{{ProductName: "Coffee", Price: 3.5}}, orders[1].LineItems)
}

func (suite *QueryHandlersTestSuite) TestListOrders_OrderWithoutLineItemsHasEmptySlice() {
	suite.Require().NoError(suite.pg.DB.Exec(
		"INSERT INTO orders (customer_name) VALUES (?)", "Bare",
	).Error)

	orders, err := queries.NewListOrdersQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewListOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal("Bare", orders[0].CustomerName)
	suite.NotNil(orders[0].LineItems)
	suite.Empty(orders[0].LineItems)
}

func (suite *QueryHandlersTestSuite) TestListOrders_ReflectsCurrentStatus() {
	ctx := context.Background()
	o := suite.addOrder("Ana", suite.line("Coffee", 3.5))
	suite.Require().NoError(o.ChangeStatus(order.Ready))
	suite.Require().NoError(suite.orderRepo.UpdateStatus(ctx, o))

	orders, err := queries.NewListOrdersQueryHandler(suite.pg.DB).Handle(ctx, queries.NewListOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(order.Ready, orders[0].Status)
}

func (suite *QueryHandlersTestSuite) TestListOrders_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := queries.NewListOrdersQueryHandler(suite.pg.DB).Handle(ctx, queries.NewListOrdersQuery())

	suite.Require().Error(err)
	var storeErr *errs.StoreFailureError
	suite.ErrorAs(err, &storeErr)
}

func (suite *QueryHandlersTestSuite) TestListOrders_NotConstructedQuery() {
	_, err := queries.NewListOrdersQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.ListOrdersQuery{})

	suite.ErrorIs(err, queries.ErrListOrdersQueryIsNotConstructed)
}

func (suite *QueryHandlersTestSuite) TestListItems_AscendingByID() {
	ctx := context.Background()
	for _, name := range []string{"Coffee", "Tea", "Muffin"} {
		item, err := catalog.NewItem(name, kernel.MustNewPrice(1.5))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.itemRepo.Add(ctx, item))
	}

	items, err := queries.NewListItemsQueryHandler(suite.pg.DB).Handle(ctx, queries.NewListItemsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(items, 3)
	suite.Equal("Coffee", items[0].Name)
	suite.Equal("Tea", items[1].Name)
	suite.Equal("Muffin", items[2].Name)
	suite.Less(items[0].ID, items[1].ID)
	suite.Less(items[1].ID, items[2].ID)
	suite.InDelta(1.5, items[2].Price, 0)
}

func (suite *QueryHandlersTestSuite) TestListItems_Empty() {
	items, err := queries.NewListItemsQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewListItemsQuery())

	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *QueryHandlersTestSuite) TestCountOrdersByStatus() {
	ctx := context.Background()
	suite.addOrder("Ana", suite.line("Coffee", 3.5))
	suite.addOrder("Luis", suite.line("Tea", 2.0))
	ready := suite.addOrder("Marta", suite.line("Muffin", 2.0))
	suite.Require().NoError(ready.ChangeStatus(order.Ready))
	suite.Require().NoError(suite.orderRepo.UpdateStatus(ctx, ready))

	counts, err := queries.NewCountOrdersByStatusQueryHandler(suite.pg.DB).
		Handle(ctx, queries.NewCountOrdersByStatusQuery())

	suite.Require().NoError(err)
	suite.Equal(map[order.Status]int64{
		order.Pending:       2,
		order.InPreparation: 0,
		order.Ready:         1,
	}, counts)
}

func (suite *QueryHandlersTestSuite) TestCountOrdersByStatus_NoOrders() {
	counts, err := queries.NewCountOrdersByStatusQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewCountOrdersByStatusQuery())

	suite.Require().NoError(err)
	suite.Len(counts, len(order.Statuses()))
	for _, total := range counts {
		suite.Zero(total)
	}
}

func (suite *QueryHandlersTestSuite) line(name string, price float64) order.LineItem {
	li, err := order.NewLineItem(name, kernel.MustNewPrice(price))
	suite.Require().NoError(err)
	return li
}

func (suite *QueryHandlersTestSuite) addOrder(customer string, lines ...order.LineItem) *order.Order {
	o, err := order.NewOrder(customer, lines)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
