package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
)

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, "Ada Smith", "ada@example.com", "", "")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateCustomerCommand(t *testing.T) {
	t.Run("returns error when name is empty", func(t *testing.T) {
		_, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), "", "", "", "")
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateCustomerCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateCustomerCommandIsNotConstructed)
	})
}
