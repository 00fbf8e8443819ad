package http

import (
	"github.com/shopspring/decimal"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
)

// ErrorResponse is the JSON error body returned for all failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest describes one requested line in an order create/edit call.
// Prices are resolved from the catalog; customPrice overrides the catalog
// price for this line only.
type OrderItemRequest struct {
	ProductID   string           `json:"productId"`
	CustomPrice *decimal.Decimal `json:"customPrice,omitempty"`
	StainTypeID *string          `json:"stainTypeId,omitempty"`
	Quantity    int              `json:"quantity"`
	Note        string           `json:"note,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string             `json:"customerId"`
	IsExpress  bool               `json:"isExpress"`
	Items      []OrderItemRequest `json:"items"`
}

// CreateOrderResponse returns the identifier of the newly registered order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// EditOrderRequest is the body of PUT /api/v1/orders/:id.
// The item list replaces the existing lines wholesale.
type EditOrderRequest struct {
	IsExpress bool               `json:"isExpress"`
	Items     []OrderItemRequest `json:"items"`
}

// ChangeOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is one row of the order list view.
type OrderResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Status       string          `json:"status"`
	IsExpress    bool            `json:"isExpress"`
	ItemCount    int             `json:"itemCount"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
}

// ReceiptLineResponse is one line of a printable receipt.
type ReceiptLineResponse struct {
	ProductName    string          `json:"productName"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	StainSurcharge decimal.Decimal `json:"stainSurcharge"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
	Note           string          `json:"note,omitempty"`
}

// ReceiptResponse is the full printable receipt for a single order.
type ReceiptResponse struct {
	OrderID      string                `json:"orderId"`
	StoreName    string                `json:"storeName"`
	StoreAddress string                `json:"storeAddress"`
	StorePhone   string                `json:"storePhone"`
	CustomerName string                `json:"customerName"`
	IsExpress    bool                  `json:"isExpress"`
	Lines        []ReceiptLineResponse `json:"lines"`

	ItemsSubtotal  decimal.Decimal `json:"itemsSubtotal"`
	ExpressFee     decimal.Decimal `json:"expressFee"`
	PreTaxSubtotal decimal.Decimal `json:"preTaxSubtotal"`
	VATRatePercent decimal.Decimal `json:"vatRatePercent"`
	VATAmount      decimal.Decimal `json:"vatAmount"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
}

// OrderLineResponse is one line of the order detail view.
type OrderLineResponse struct {
	ProductID      string          `json:"productId"`
	ProductName    string          `json:"productName"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	StainSurcharge decimal.Decimal `json:"stainSurcharge"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
	Note           string          `json:"note,omitempty"`
}

// OrderDetailResponse is the body of GET /api/v1/orders/:id.
type OrderDetailResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customerId"`
	CustomerName string              `json:"customerName"`
	Status       string              `json:"status"`
	IsExpress    bool                `json:"isExpress"`
	Lines        []OrderLineResponse `json:"lines"`

	ItemsSubtotal  decimal.Decimal `json:"itemsSubtotal"`
	ExpressFee     decimal.Decimal `json:"expressFee"`
	PreTaxSubtotal decimal.Decimal `json:"preTaxSubtotal"`
	VATRatePercent decimal.Decimal `json:"vatRatePercent"`
	VATAmount      decimal.Decimal `json:"vatAmount"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
}

// CreateCustomerRequest is the body of POST /api/v1/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CreateCustomerResponse returns the identifier of the new customer.
type CreateCustomerResponse struct {
	ID string `json:"id"`
}

// CustomerResponse is one row of the customer list view.
type CustomerResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	OrderCount int    `json:"orderCount"`
}

// UpdateCustomerRequest is the body of PUT /api/v1/customers/:id.
// The full detail set is replaced; omitted optional fields come back blank.
type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CreateCategoryRequest is the body of POST /api/v1/catalog/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateCategoryResponse returns the identifier of the new category.
type CreateCategoryResponse struct {
	ID string `json:"id"`
}

// CreateProductRequest is the body of POST /api/v1/catalog/products.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"categoryId"`
	Price       decimal.Decimal `json:"price"`
}

// CreateProductResponse returns the identifier of the new product.
type CreateProductResponse struct {
	ID string `json:"id"`
}

// UpdateProductRequest is the body of PUT /api/v1/catalog/products/:id.
// Changing the price never reprices existing orders.
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// CreateStainTypeRequest is the body of POST /api/v1/catalog/stain-types.
type CreateStainTypeRequest struct {
	Name      string          `json:"name"`
	Surcharge decimal.Decimal `json:"surcharge"`
}

// CreateStainTypeResponse returns the identifier of the new stain type.
type CreateStainTypeResponse struct {
	ID string `json:"id"`
}

// CategoryResponse is one category row of the catalog listing.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ProductResponse is one product row of the catalog listing.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"categoryId"`
	Price       decimal.Decimal `json:"price"`
}

// StainTypeResponse is one stain type row of the catalog listing.
type StainTypeResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Surcharge decimal.Decimal `json:"surcharge"`
}

// CatalogResponse is the body of GET /api/v1/catalog.
type CatalogResponse struct {
	Categories []CategoryResponse  `json:"categories"`
	Products   []ProductResponse   `json:"products"`
	StainTypes []StainTypeResponse `json:"stainTypes"`
}

// StoreSettingsRequest is the body of PUT /api/v1/settings.
type StoreSettingsRequest struct {
	StoreName      string          `json:"storeName"`
	StoreAddress   string          `json:"storeAddress,omitempty"`
	StorePhone     string          `json:"storePhone,omitempty"`
	VATRatePercent decimal.Decimal `json:"vatRatePercent"`
	ExpressFee     decimal.Decimal `json:"expressFee"`
}

// StoreSettingsResponse is the body of GET /api/v1/settings.
type StoreSettingsResponse struct {
	StoreName      string          `json:"storeName"`
	StoreAddress   string          `json:"storeAddress"`
	StorePhone     string          `json:"storePhone"`
	VATRatePercent decimal.Decimal `json:"vatRatePercent"`
	ExpressFee     decimal.Decimal `json:"expressFee"`
}

// DailyRevenueResponse is the body of GET /api/v1/reports/daily-revenue.
type DailyRevenueResponse struct {
	Day        string          `json:"day"`
	OrderCount int             `json:"orderCount"`
	Total      decimal.Decimal `json:"total"`
}

// toItemInputs converts request lines to validated command inputs.
func toItemInputs(items []OrderItemRequest) ([]commands.OrderItemInput, error) {
	inputs := make([]commands.OrderItemInput, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}

		var customPrice *kernel.Price
		if item.CustomPrice != nil {
			price, priceErr := kernel.NewPrice(*item.CustomPrice)
			if priceErr != nil {
				return nil, priceErr
			}
			customPrice = &price
		}

		var stainTypeID *kernel.UUID
		if item.StainTypeID != nil {
			id, idErr := kernel.UUIDFromString(*item.StainTypeID)
			if idErr != nil {
				return nil, idErr
			}
			stainTypeID = &id
		}

		inputs = append(inputs, commands.OrderItemInput{
			ProductID:   productID,
			CustomPrice: customPrice,
			StainTypeID: stainTypeID,
			Quantity:    item.Quantity,
			Note:        item.Note,
		})
	}
	return inputs, nil
}

func toOrderResponses(results []queries.GetOrdersQueryResponse) []OrderResponse {
	response := make([]OrderResponse, len(results))
	for i, result := range results {
		response[i] = OrderResponse{
			ID:           result.ID.String(),
			CustomerID:   result.CustomerID.String(),
			CustomerName: result.CustomerName,
			Status:       result.Status.String(),
			IsExpress:    result.IsExpress,
			ItemCount:    result.ItemCount,
			GrandTotal:   result.GrandTotal,
		}
	}
	return response
}

func toReceiptResponse(receipt queries.GetOrderReceiptQueryResponse) ReceiptResponse {
	lines := make([]ReceiptLineResponse, len(receipt.Lines))
	for i, line := range receipt.Lines {
		lines[i] = ReceiptLineResponse{
			ProductName:    line.ProductName,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			StainSurcharge: line.StainSurcharge,
			LineTotal:      line.LineTotal,
			Note:           line.Note,
		}
	}

	return ReceiptResponse{
		OrderID:        receipt.OrderID.String(),
		StoreName:      receipt.StoreName,
		StoreAddress:   receipt.StoreAddress,
		StorePhone:     receipt.StorePhone,
		CustomerName:   receipt.CustomerName,
		IsExpress:      receipt.IsExpress,
		Lines:          lines,
		ItemsSubtotal:  receipt.ItemsSubtotal,
		ExpressFee:     receipt.ExpressFee,
		PreTaxSubtotal: receipt.PreTaxSubtotal,
		VATRatePercent: receipt.VATRatePercent,
		VATAmount:      receipt.VATAmount,
		GrandTotal:     receipt.GrandTotal,
	}
}

func toOrderDetailResponse(detail queries.GetOrderQueryResponse) OrderDetailResponse {
	lines := make([]OrderLineResponse, len(detail.Lines))
	for i, line := range detail.Lines {
		lines[i] = OrderLineResponse{
			ProductID:      line.ProductID.String(),
			ProductName:    line.ProductName,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			StainSurcharge: line.StainSurcharge,
			LineTotal:      line.LineTotal,
			Note:           line.Note,
		}
	}

	return OrderDetailResponse{
		ID:             detail.ID.String(),
		CustomerID:     detail.CustomerID.String(),
		CustomerName:   detail.CustomerName,
		Status:         detail.Status.String(),
		IsExpress:      detail.IsExpress,
		Lines:          lines,
		ItemsSubtotal:  detail.ItemsSubtotal,
		ExpressFee:     detail.ExpressFee,
		PreTaxSubtotal: detail.PreTaxSubtotal,
		VATRatePercent: detail.VATRatePercent,
		VATAmount:      detail.VATAmount,
		GrandTotal:     detail.GrandTotal,
	}
}

func toCatalogResponse(catalog queries.GetCatalogQueryResponse) CatalogResponse {
	categories := make([]CategoryResponse, len(catalog.Categories))
	for i, category := range catalog.Categories {
		categories[i] = CategoryResponse{
			ID:          category.ID.String(),
			Name:        category.Name,
			Description: category.Description,
		}
	}

	products := make([]ProductResponse, len(catalog.Products))
	for i, product := range catalog.Products {
		products[i] = ProductResponse{
			ID:          product.ID.String(),
			Name:        product.Name,
			Description: product.Description,
			CategoryID:  product.CategoryID.String(),
			Price:       product.Price,
		}
	}

	stainTypes := make([]StainTypeResponse, len(catalog.StainTypes))
	for i, stainType := range catalog.StainTypes {
		stainTypes[i] = StainTypeResponse{
			ID:        stainType.ID.String(),
			Name:      stainType.Name,
			Surcharge: stainType.Surcharge,
		}
	}

	return CatalogResponse{
		Categories: categories,
		Products:   products,
		StainTypes: stainTypes,
	}
}

func toCustomerResponses(results []queries.GetCustomersQueryResponse) []CustomerResponse {
	response := make([]CustomerResponse, len(results))
	for i, result := range results {
		response[i] = CustomerResponse{
			ID:         result.ID.String(),
			Name:       result.Name,
			Email:      result.Email,
			Phone:      result.Phone,
			Address:    result.Address,
			OrderCount: result.OrderCount,
		}
	}
	return response
}
