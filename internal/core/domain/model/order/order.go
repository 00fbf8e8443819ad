package order

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a laundry order in the system. It is the aggregate root
// that manages the order lifecycle from intake through cleaning to handover.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Must contain at least one valid line item
//   - Express fee must be a constructed, non-negative price
//   - Status transitions follow the Cleaning -> Ready -> Completed workflow
//   - Can only be created through NewOrder or RestoreOrder
//
// The aggregate holds the order's own pricing inputs (line items, express
// flag, express fee). The VAT rate lives in store configuration and is
// combined with these inputs by the caller when totals are computed.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer the order belongs to
	customerID kernel.UUID

	// items are the priced units in the order, never empty
	items []LineItem

	// isExpress marks expedited service
	isExpress bool

	// expressFee is the flat fee captured from store configuration
	expressFee kernel.Price

	// status represents the current state in the order workflow
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. New orders always start in
// the Cleaning status.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: The owning customer
//   - items: Line items, at least one, each created via NewLineItem
//   - isExpress: Whether expedited service was requested
//   - expressFee: The configured flat express fee at order-entry time
//
// Returns a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	isExpress bool,
	expressFee kernel.Price,
) (*Order, error) {
	order := &Order{
		status:        Cleaning,
		isExpress:     isExpress,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setExpressFee(expressFee),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored
// status. It applies the same validation as NewOrder plus a status check;
// it never re-runs transition rules, since the stored status is the
// outcome of transitions already applied.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	isExpress bool,
	expressFee kernel.Price,
	status Status,
) (*Order, error) {
	order, err := NewOrder(id, customerID, items, isExpress, expressFee)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the order's line items.
// The copy keeps the aggregate's internal state immutable from outside.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// IsExpress reports whether expedited service was requested.
func (o *Order) IsExpress() bool {
	return o.isExpress
}

// ExpressFee returns the flat express fee captured at order-entry time.
func (o *Order) ExpressFee() kernel.Price {
	return o.expressFee
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ReplaceItems swaps the order's line items for a new, validated set.
// Used by the edit flow; the set must not be empty.
func (o *Order) ReplaceItems(items []LineItem) error {
	return o.setItems(items)
}

// SetExpress updates the express flag and the fee captured for it.
// The fee is re-read from store configuration by the caller so a toggle
// picks up the currently configured amount.
func (o *Order) SetExpress(isExpress bool, expressFee kernel.Price) error {
	if err := o.setExpressFee(expressFee); err != nil {
		return err
	}

	o.isExpress = isExpress
	return nil
}

// ChangeStatus moves the order to the target status.
//
// The move is delegated to the status workflow: only adjacent steps are
// legal (forward progress or one-step rollback). On an illegal move the
// order is left untouched and an *InvalidTransitionError naming the
// attempted pair is returned.
//
// Example:
//
//	if next, ok := o.Status().Next(); ok {
//	    if err := o.ChangeStatus(next); err != nil {
//	        // Surface the rejected transition to the user
//	    }
//	}
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setExpressFee(expressFee kernel.Price) error {
	if err := expressFee.Validate(); err != nil {
		return err
	}
	o.expressFee = expressFee
	return nil
}
