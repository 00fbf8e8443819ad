// Package order provides domain entities and business logic for order
// management in the laundry back-office system. It implements the Order
// aggregate root with its line items, pricing inputs, and the status
// workflow state machine.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - LineItem: A priced unit within an order (base price, optional custom price,
//     stain-treatment surcharge, quantity)
//   - Modifiers: Order-level pricing inputs (express flag, express fee, VAT rate)
//   - Totals: The derived monetary breakdown of an order
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, customer, and at least one line item
//   - Order status follows a linear workflow: Cleaning -> Ready -> Completed
//   - Status may move only between adjacent steps, forward or one step back
//   - A line item's custom price, when set, overrides the catalog base price;
//     the base price is retained for display and audit
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
