// Package kernel provides domain primitives shared by the catalog and order
// models of the kitchen system.
//
// The package includes:
//   - Price: a non-negative, finite monetary amount used both for catalog
//     items and for the price snapshots stored on order line items
//
// Primitives are immutable value objects; their zero value is invalid and is
// rejected by Validate, so they must be obtained through their constructors.
package kernel
