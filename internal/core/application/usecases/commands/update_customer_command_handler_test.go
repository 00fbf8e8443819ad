package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

func updateCustomerFixture(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()

	aggregate, err := customer.NewCustomer(id, "Ada Smith", "ada@example.com", "", "")
	require.NoError(t, err)
	return aggregate
}

func TestUpdateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewUpdateCustomerCommand(
		customerID, "Ada Jones", "ada.jones@example.com", "555-0101", "2 Low Street")
	require.NoError(t, err)

	aggregate := updateCustomerFixture(t, customerID)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, customerID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Ada Jones", aggregate.Name())
	assert.Equal(t, "ada.jones@example.com", aggregate.Email())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewUpdateCustomerCommand(customerID, "Ada Jones", "", "", "")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("customer", customerID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewUpdateCustomerCommand(t *testing.T) {
	t.Run("returns error when name is empty", func(t *testing.T) {
		_, err := commands.NewUpdateCustomerCommand(kernel.NewUUID(), "", "", "", "")
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.UpdateCustomerCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateCustomerCommandIsNotConstructed)
	})
}
