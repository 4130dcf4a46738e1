package commands_test

import (
	"errors"
	"math"
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateItemCommand_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		itemName string
		price    float64
		expected error
	}{
		{"empty name", "", 1, catalog.ErrNameIsRequired},
		{"negative price", "Tea", -0.01, errs.ErrValueIsOutOfRange},
		{"nan price", "Tea", math.NaN(), errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreateItemCommand(tc.itemName, tc.price)

			require.ErrorIs(t, err, tc.expected)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestCreateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateItemCommand("Coffee", 3.5)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(item *catalog.Item) bool {
			return item.Name() == "Coffee" && item.Price().Amount() == 3.5
		})).Run(func(args mock.Arguments) {
			_ = args.Get(1).(*catalog.Item).AssignID(12)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	id, err := commands.NewCreateItemCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle_WhitespaceNameRejected(t *testing.T) {
	cmd, err := commands.NewCreateItemCommand("   ", 1)
	require.NoError(t, err)
	factory := new(MockItemUoWFactory)

	_, err = commands.NewCreateItemCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, catalog.ErrNameIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateItemCommand(3, "Tea", 2.25)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Update", ctx, mock.MatchedBy(func(item *catalog.Item) bool {
			return item.ID() == 3 && item.Name() == "Tea" && item.Price().Amount() == 2.25
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	require.NoError(t, commands.NewUpdateItemCommandHandler(factory).Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestUpdateItemCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateItemCommand(77, "Tea", 2)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Update", ctx, mock.Anything).Return(errs.NewObjectNotFoundError("item", int64(77))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewUpdateItemCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewUpdateItemCommand_Invalid(t *testing.T) {
	_, err := commands.NewUpdateItemCommand(0, "", -1)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, catalog.ErrNameIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestDeleteItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteItemCommand(8)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	repo.On("Delete", ctx, int64(8)).Return(nil).Once()
	uow := new(MockUoW)
	uow.On("ItemRepository").Return(repo).Once()
	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	require.NoError(t, commands.NewDeleteItemCommandHandler(factory).Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestDeleteItemCommandHandler_Handle_StoreFailure(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteItemCommand(8)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	repo.On("Delete", ctx, int64(8)).Return(errs.NewStoreFailureError("delete item", errors.New("timeout"))).Once()
	uow := new(MockUoW)
	uow.On("ItemRepository").Return(repo).Once()
	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewDeleteItemCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStoreFailure)
}

func TestNewDeleteItemCommand_InvalidID(t *testing.T) {
	cmd, err := commands.NewDeleteItemCommand(0)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, cmd.Validate(), commands.ErrDeleteItemCommandIsNotConstructed)
}
