// Package services provides domain services that implement business logic
// spanning multiple domain values in the laundry back-office system.
//
// The package includes:
//   - PricingService: The single pricing engine that computes an order's
//     monetary totals from its line items and modifiers
//
// Every caller that needs an order total (order entry, editing, receipts,
// listings, revenue reporting) delegates to PricingService rather than
// reimplementing the arithmetic, so the formula cannot drift between call
// sites.
package services
