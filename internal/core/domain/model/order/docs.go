// Package order contains the Order aggregate owned by the order saga
// coordinator: item snapshots taken at placement time, the forward-only
// status state machine, and the projections of payment and delivery
// progress that downstream events push back onto the order.
package order
