// Package http provides the Echo HTTP adapter exposing the back-office API.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	EditOrder         commands.EditOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	CreateCustomer    commands.CreateCustomerCommandHandler
	UpdateCustomer    commands.UpdateCustomerCommandHandler
	DeleteCustomer    commands.DeleteCustomerCommandHandler
	CreateCategory    commands.CreateCategoryCommandHandler
	CreateProduct     commands.CreateProductCommandHandler
	UpdateProduct     commands.UpdateProductCommandHandler
	DeleteProduct     commands.DeleteProductCommandHandler
	CreateStainType   commands.CreateStainTypeCommandHandler
	SaveStoreSettings commands.SaveStoreSettingsCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	GetOrders        queries.GetOrdersQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	GetOrderReceipt  queries.GetOrderReceiptQueryHandler
	GetDailyRevenue  queries.GetDailyRevenueQueryHandler
	GetCustomers     queries.GetCustomersQueryHandler
	GetCatalog       queries.GetCatalogQueryHandler
	GetStoreSettings queries.GetStoreSettingsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.EditOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/orders/:id/receipt", s.GetOrderReceipt)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.GetCustomers)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)
	api.GET("/catalog", s.GetCatalog)
	api.POST("/catalog/categories", s.CreateCategory)
	api.POST("/catalog/products", s.CreateProduct)
	api.PUT("/catalog/products/:id", s.UpdateProduct)
	api.DELETE("/catalog/products/:id", s.DeleteProduct)
	api.POST("/catalog/stain-types", s.CreateStainType)
	api.GET("/settings", s.GetStoreSettings)
	api.PUT("/settings", s.SaveStoreSettings)
	api.GET("/reports/daily-revenue", s.GetDailyRevenue)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - registers a new order in Cleaning status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items, err := toItemInputs(request.Items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items, request.IsExpress)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders with totals.
// An optional ?status= parameter filters by workflow status.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersQuery(statusFilter)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// EditOrder handles PUT /api/v1/orders/:id - replaces the order's items and express flag.
func (s *Server) EditOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request EditOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := toItemInputs(request.Items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewEditOrderCommand(orderID, items, request.IsExpress)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.EditOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status - moves the order
// through the workflow. Skipping a step returns 409.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ChangeOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	targetStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, targetStatus)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderReceipt handles GET /api/v1/orders/:id/receipt - the printable receipt.
func (s *Server) GetOrderReceipt(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderReceiptQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	receipt, err := s.queries.GetOrderReceipt.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReceiptResponse(receipt))
}

// GetOrder handles GET /api/v1/orders/:id - a single order with line detail
// and computed totals.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	detail, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes the order and its
// line items.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CreateCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(
		customerID, request.Name, request.Email, request.Phone, request.Address)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateCustomerResponse{ID: customerID.String()})
}

// GetCustomers handles GET /api/v1/customers - lists customers with order counts.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetCustomersQuery()

	customers, err := s.queries.GetCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponses(customers))
}

// UpdateCustomer handles PUT /api/v1/customers/:id - replaces the customer's
// contact details.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request UpdateCustomerRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		customerID, request.Name, request.Email, request.Phone, request.Address)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCatalog handles GET /api/v1/catalog - the full price list.
func (s *Server) GetCatalog(ctx echo.Context) error {
	query := queries.NewGetCatalogQuery()

	catalog, err := s.queries.GetCatalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCatalogResponse(catalog))
}

// CreateCategory handles POST /api/v1/catalog/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var request CreateCategoryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	categoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(categoryID, request.Name, request.Description)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.CreateCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateCategoryResponse{ID: categoryID.String()})
}

// CreateProduct handles POST /api/v1/catalog/products - adds a sellable
// catalog entry. The referenced category must already exist.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	categoryID, err := kernel.UUIDFromString(request.CategoryID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	price, err := kernel.NewPrice(request.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, request.Name, request.Description, categoryID, price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateProductResponse{ID: productID.String()})
}

// UpdateProduct handles PUT /api/v1/catalog/products/:id - changes a
// product's name, description and reference price. Existing orders keep the
// prices captured on their line items.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request UpdateProductRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewPrice(request.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(productID, request.Name, request.Description, price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/catalog/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateStainType handles POST /api/v1/catalog/stain-types.
func (s *Server) CreateStainType(ctx echo.Context) error {
	var request CreateStainTypeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	surcharge, err := kernel.NewPrice(request.Surcharge)
	if err != nil {
		return errorResponse(ctx, err)
	}

	stainTypeID := kernel.NewUUID()
	cmd, err := commands.NewCreateStainTypeCommand(stainTypeID, request.Name, surcharge)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.CreateStainType.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateStainTypeResponse{ID: stainTypeID.String()})
}

// GetStoreSettings handles GET /api/v1/settings.
func (s *Server) GetStoreSettings(ctx echo.Context) error {
	query := queries.NewGetStoreSettingsQuery()

	result, err := s.queries.GetStoreSettings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StoreSettingsResponse{
		StoreName:      result.StoreName,
		StoreAddress:   result.StoreAddress,
		StorePhone:     result.StorePhone,
		VATRatePercent: result.VATRatePercent,
		ExpressFee:     result.ExpressFee,
	})
}

// SaveStoreSettings handles PUT /api/v1/settings - upserts the single settings row.
func (s *Server) SaveStoreSettings(ctx echo.Context) error {
	var request StoreSettingsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	expressFee, err := kernel.NewPrice(request.ExpressFee)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSaveStoreSettingsCommand(
		request.StoreName, request.StoreAddress, request.StorePhone,
		request.VATRatePercent, expressFee)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.commands.SaveStoreSettings.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDailyRevenue handles GET /api/v1/reports/daily-revenue - completed-order
// revenue for one day. An optional ?day=YYYY-MM-DD parameter selects the day,
// defaulting to today.
func (s *Server) GetDailyRevenue(ctx echo.Context) error {
	day := time.Now()
	if raw := ctx.QueryParam("day"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(ctx, "Invalid day, expected YYYY-MM-DD")
		}
		day = parsed
	}

	query, err := queries.NewGetDailyRevenueQuery(day)
	if err != nil {
		return errorResponse(ctx, err)
	}

	revenue, err := s.queries.GetDailyRevenue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DailyRevenueResponse{
		Day:        revenue.Day.Format("2006-01-02"),
		OrderCount: revenue.OrderCount,
		Total:      revenue.Total,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors to HTTP status codes.
// Validation failures map to 400, missing objects to 404 and illegal
// workflow transitions to 409.
func errorResponse(ctx echo.Context, err error) error {
	var transitionErr *order.InvalidTransitionError
	switch {
	case errors.As(err, &transitionErr):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
