package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order entry.
// Resolves catalog reference prices and stain surcharges, captures them onto
// line items, and creates the order in "cleaning" status. The express fee is
// captured from store settings at entry time so later settings changes do not
// reprice existing orders.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, items, true)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderEntryUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order entry operations.
// Requires an OrderEntryUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderEntryUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Verifies the customer exists, builds line items with captured prices and
// persists the order. Uses a transaction so the catalog reads and the order
// insert see a consistent snapshot.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	storeSettings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return err
	}

	items, err := buildLineItems(ctx, uow.CatalogRepository(), cmd.Items())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		items,
		cmd.IsExpress(),
		storeSettings.ExpressFee(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildLineItems resolves each requested line against the catalog and captures
// the base price and stain surcharge current at entry time.
func buildLineItems(
	ctx context.Context,
	catalogRepo ports.CatalogRepository,
	inputs []OrderItemInput,
) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(inputs))
	for _, input := range inputs {
		product, err := catalogRepo.GetProduct(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}

		stainSurcharge := kernel.ZeroPrice()
		if input.StainTypeID != nil {
			stainType, err := catalogRepo.GetStainType(ctx, *input.StainTypeID)
			if err != nil {
				return nil, err
			}
			stainSurcharge = stainType.Surcharge()
		}

		item, err := order.NewLineItem(
			input.ProductID,
			product.Price(),
			input.CustomPrice,
			input.StainTypeID,
			stainSurcharge,
			input.Quantity,
			input.Note,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
