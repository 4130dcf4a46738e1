// Package catalog provides the Item entity: a sellable product definition that
// staff edit independently of past orders.
//
// Key business rules:
//   - Name is non-blank and price is a valid kernel.Price
//   - Items are numbered by the store
//   - Orders never reference items; they keep their own snapshots, so items
//     can be renamed, repriced or deleted at any time
package catalog
