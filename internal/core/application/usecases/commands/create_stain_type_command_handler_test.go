package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
)

func TestCreateStainTypeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stainTypeID := kernel.NewUUID()
	cmd, err := commands.NewCreateStainTypeCommand(stainTypeID, "Ink", mustPrice(t, "1.50"))
	require.NoError(t, err)

	repo := new(MockCatalogRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(repo).Once(),
		repo.On("AddStainType", mock.Anything, mock.AnythingOfType("*catalog.StainType")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStainTypeCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateStainTypeCommand(t *testing.T) {
	t.Run("returns error when name is empty", func(t *testing.T) {
		_, err := commands.NewCreateStainTypeCommand(kernel.NewUUID(), "", mustPrice(t, "1.50"))
		assert.Error(t, err)
	})

	t.Run("rejects unconstructed surcharge", func(t *testing.T) {
		_, err := commands.NewCreateStainTypeCommand(kernel.NewUUID(), "Ink", kernel.Price{})
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateStainTypeCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateStainTypeCommandIsNotConstructed)
	})
}
