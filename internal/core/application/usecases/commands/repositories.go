// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// CatalogRepoFactory provides access to catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// SettingsRepoFactory provides access to settings repository within a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// CatalogUoW manages transactions for catalog maintenance operations.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// SettingsUoW manages transactions for settings-only operations.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	// SettingsUoWFactory creates new settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}

	// OrderEntryUoW manages transactions for order entry and editing.
	// Order entry reads the catalog and store settings to capture prices
	// onto line items, so it spans several repositories.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   catalogRepo := uow.CatalogRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... resolve prices, build the order
	//
	//   err = uow.Commit(ctx)
	OrderEntryUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		CatalogRepoFactory
		SettingsRepoFactory
	}

	// OrderEntryUoWFactory creates new unit of work instances for order entry.
	OrderEntryUoWFactory interface {
		Create() OrderEntryUoW
	}
)
