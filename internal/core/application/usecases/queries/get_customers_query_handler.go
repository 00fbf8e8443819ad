package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"laundry/internal/core/domain/model/kernel"
)

// GetCustomersQueryHandler retrieves the customer list from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer list queries.
// Requires a GORM database connection for query execution.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query to retrieve all customers with order counts.
// Results are sorted by customer name for consistent output.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.email,
			c.phone,
			c.address,
			COUNT(o.id)
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, c.name, c.email, c.phone, c.address
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]GetCustomersQueryResponse, 0)
	for rows.Next() {
		var resp GetCustomersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.Phone,
			&resp.Address,
			&resp.OrderCount,
		); err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = customerID

		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
