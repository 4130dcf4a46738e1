// Package order provides the Order aggregate of the kitchen system: a customer's
// submitted purchase with its line items and a mutable fulfillment status.
//
// The package includes:
//   - Order: the aggregate root holding identity, customer name, status and line items
//   - LineItem: an immutable snapshot of one purchased product (name + price)
//   - Status: the fixed status vocabulary and the transition rule between its members
//
// Key business rules:
//   - An order needs a non-blank customer name and at least one line item
//   - New orders start in Pending
//   - Status is the only field that changes after creation
//   - Any status of the vocabulary may follow any other; values outside the
//     vocabulary are rejected and leave the order untouched
//   - Line items copy product name and price, so later catalog edits or
//     deletions never alter an existing order
package order
