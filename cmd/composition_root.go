package cmd

import (
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pricing    services.PricingService
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:    services.NewPricingService(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderEntryUoWFactory = FuncOrderEntryUoWFactory(func() commands.OrderEntryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	var f commands.OrderEntryUoWFactory = FuncOrderEntryUoWFactory(func() commands.OrderEntryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStainTypeCommandHandler() commands.CreateStainTypeCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStainTypeCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveStoreSettingsCommandHandler() commands.SaveStoreSettingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveStoreSettingsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB, c.pricing)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.pricing)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderReceiptQueryHandler() queries.GetOrderReceiptQueryHandler {
	return queries.NewGetOrderReceiptQueryHandler(c.gormDB, c.pricing)
}

func (c *CompositionRoot) CreateGetDailyRevenueQueryHandler() queries.GetDailyRevenueQueryHandler {
	return queries.NewGetDailyRevenueQueryHandler(c.gormDB, c.pricing)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreSettingsQueryHandler() queries.GetStoreSettingsQueryHandler {
	return queries.NewGetStoreSettingsQueryHandler(c.gormDB)
}

// CreateOrderRepository returns an order repository outside any transaction,
// suitable for read-only background jobs.
func (c *CompositionRoot) CreateOrderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderEntryUoWFactory func() commands.OrderEntryUoW

func (f FuncOrderEntryUoWFactory) Create() commands.OrderEntryUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
