package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"laundry/cmd"
	laundryhttp "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres/catalogrepo"
	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/settingsrepo"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/jobs"
	"laundry/internal/pkg/errs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	seedDefaultSettings(&app)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetDailyRevenueQueryHandler(),
		app.CreateOrderRepository(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&customerrepo.CustomerDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.StainTypeDTO{},
		&settingsrepo.StoreSettingsDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// seedDefaultSettings writes a neutral settings row on first start so order
// entry works before the shop owner has opened the settings page.
func seedDefaultSettings(app *cmd.CompositionRoot) {
	ctx := context.Background()

	_, err := app.CreateGetStoreSettingsQueryHandler().Handle(ctx, queries.NewGetStoreSettingsQuery())
	if err == nil {
		return
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		log.Fatalf("Failed to read store settings: %v", err)
	}

	command, err := commands.NewSaveStoreSettingsCommand(
		"My Laundry", "", "", decimal.Zero, kernel.ZeroPrice())
	if err != nil {
		log.Fatalf("Failed to build default settings: %v", err)
	}

	handler := app.CreateSaveStoreSettingsCommandHandler()
	if err = handler.Handle(ctx, command); err != nil {
		log.Fatalf("Failed to seed default settings: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := laundryhttp.NewServer(
		laundryhttp.CommandHandlers{
			CreateOrder:       app.CreateCreateOrderCommandHandler(),
			EditOrder:         app.CreateEditOrderCommandHandler(),
			ChangeOrderStatus: app.CreateChangeOrderStatusCommandHandler(),
			DeleteOrder:       app.CreateDeleteOrderCommandHandler(),
			CreateCustomer:    app.CreateCreateCustomerCommandHandler(),
			UpdateCustomer:    app.CreateUpdateCustomerCommandHandler(),
			DeleteCustomer:    app.CreateDeleteCustomerCommandHandler(),
			CreateCategory:    app.CreateCreateCategoryCommandHandler(),
			CreateProduct:     app.CreateCreateProductCommandHandler(),
			UpdateProduct:     app.CreateUpdateProductCommandHandler(),
			DeleteProduct:     app.CreateDeleteProductCommandHandler(),
			CreateStainType:   app.CreateCreateStainTypeCommandHandler(),
			SaveStoreSettings: app.CreateSaveStoreSettingsCommandHandler(),
		},
		laundryhttp.QueryHandlers{
			GetOrders:        app.CreateGetOrdersQueryHandler(),
			GetOrder:         app.CreateGetOrderQueryHandler(),
			GetOrderReceipt:  app.CreateGetOrderReceiptQueryHandler(),
			GetDailyRevenue:  app.CreateGetDailyRevenueQueryHandler(),
			GetCustomers:     app.CreateGetCustomersQueryHandler(),
			GetCatalog:       app.CreateGetCatalogQueryHandler(),
			GetStoreSettings: app.CreateGetStoreSettingsQueryHandler(),
		},
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
