// Package payment contains the Payment aggregate owned by the payment
// processor: one attempt per order, resolved synchronously for cash or
// asynchronously through the external gateway's callback.
package payment
