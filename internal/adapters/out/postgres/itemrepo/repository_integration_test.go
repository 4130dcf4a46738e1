package itemrepo_test

import (
	"context"
	"testing"

	"kitchen/internal/adapters/out/postgres/itemrepo"
	"kitchen/internal/adapters/out/postgres/pgtest"
	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *itemrepo.GormItemRepository
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.repository = itemrepo.NewGormItemRepository(suite.pg.DB)
}

func (suite *ItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *ItemRepositoryIntegrationTestSuite) TestAdd_AssignsID() {
	item := suite.newItem("Coffee", 3.5)

	suite.Require().NoError(suite.repository.Add(context.Background(), item))

	suite.Positive(item.ID())
	stored, err := suite.repository.Get(context.Background(), item.ID())
	suite.Require().NoError(err)
	suite.Equal("Coffee", stored.Name())
	suite.InDelta(3.5, stored.Price().Amount(), 0)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_OverwritesNameAndPrice() {
	ctx := context.Background()
	item := suite.newItem("Coffee", 3.5)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	updated, err := catalog.RestoreItem(item.ID(), "Espresso", kernel.MustNewPrice(2.75))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, updated))

	stored, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("Espresso", stored.Name())
	suite.InDelta(2.75, stored.Price().Amount(), 0)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_UnchangedValuesStillSucceed() {
	ctx := context.Background()
	item := suite.newItem("Coffee", 3.5)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(suite.repository.Update(ctx, item))
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_UnknownID_ReturnsNotFound() {
	ghost, err := catalog.RestoreItem(404, "Tea", kernel.MustNewPrice(1))
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), ghost)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestDelete_IsIdempotent() {
	ctx := context.Background()
	item := suite.newItem("Coffee", 3.5)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(suite.repository.Delete(ctx, item.ID()))
	suite.Require().NoError(suite.repository.Delete(ctx, item.ID()))
	suite.Require().NoError(suite.repository.Delete(ctx, 987654))

	_, err := suite.repository.Get(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ItemRepositoryIntegrationTestSuite) newItem(name string, price float64) *catalog.Item {
	item, err := catalog.NewItem(name, kernel.MustNewPrice(price))
	suite.Require().NoError(err)
	return item
}

func TestItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryIntegrationTestSuite))
}
