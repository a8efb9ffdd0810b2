// Package order provides the Order aggregate and the status state machine of the order
// workflow.
//
// The package includes:
//   - Order: the aggregate root created from a cart at checkout
//   - Status: a closed enumeration with an explicit transition table
//   - TrackingEntry: the append-only audit log of status changes
//   - StatusChanged: the domain event raised by every transition
//
// Key business rules:
//   - totalAmount == subtotal + deliveryFee + tax, with tax 5% of the subtotal rounded to 2 decimals
//   - the subtotal must reach the restaurant's minimum order amount at creation time
//   - the item set is immutable after creation; prices are snapshotted
//   - status follows placed -> confirmed -> preparing -> ready -> out_for_delivery -> delivered,
//     with cancelled reachable from every non-terminal state
//   - delivered and cancelled are terminal
//   - every status change appends exactly one tracking entry
package order
