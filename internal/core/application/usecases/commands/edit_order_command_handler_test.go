package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
)

func TestEditOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()
	items := []commands.OrderItemInput{{ProductID: productID, Quantity: 3}}
	cmd, err := commands.NewEditOrderCommand(orderID, items, true)
	require.NoError(t, err)

	aggregate := orderFixture(t, orderID)

	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	settingsRepo := new(MockSettingsRepository)
	uow := new(MockOrderEntryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", mock.Anything).Return(storeSettingsFixture(t), nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetProduct", mock.Anything, productID).Return(productFixture(t, productID, "9.50"), nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderEntryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, aggregate.Items(), 1)
	assert.Equal(t, 3, aggregate.Items()[0].Quantity())
	assert.True(t, aggregate.Items()[0].BasePrice().Amount().Equal(mustPrice(t, "9.50").Amount()))
	assert.True(t, aggregate.IsExpress())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEditOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	items := []commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 1}}
	cmd, err := commands.NewEditOrderCommand(orderID, items, false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderEntryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(nil, errors.New("order not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderEntryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestNewEditOrderCommand(t *testing.T) {
	t.Run("returns error when items are empty", func(t *testing.T) {
		_, err := commands.NewEditOrderCommand(kernel.NewUUID(), nil, false)
		assert.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.EditOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrEditOrderCommandIsNotConstructed)
	})
}
