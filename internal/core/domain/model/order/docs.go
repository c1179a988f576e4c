// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with its owned Item
// entities and the status lifecycle.
//
// The package includes:
//   - Order: The aggregate root owning line items and enforcing the lifecycle
//   - Item: A line entry belonging to exactly one order
//   - Status: The order lifecycle enumeration (OPEN, SHIPPING, DELIVERED, CANCELLED)
//   - Payment: The payment method enumeration (CREDITCARD, DEBITCARD, VEMO)
//
// Key business rules:
//   - Orders must have a valid identifier, date, non-negative total, payment
//     method, and bounded non-empty address
//   - Item quantity must be at least 1
//   - An item's order id always equals its owning order's id; ownership is
//     assigned by the aggregate, never by callers
//   - Cancellation is the one modeled transition and is legal only from OPEN
//   - Cancelled orders accept no new items
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
