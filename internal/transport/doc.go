// Package transport provides the in-process publish/subscribe bus that
// stands in for the network between chat participants.
//
// Every recipient identity has one inbox. Publish appends the envelope to
// the recipient's inbox and, unless another goroutine is already delivering
// to that inbox, drains it by calling each live subscription's handler in
// subscription order. The consequences:
//
//   - A single goroutine that publishes sees delivery complete before
//     Publish returns.
//   - Handlers subscribed under one identity observe envelopes in publish
//     order and are never invoked concurrently with each other.
//   - No bus lock is held while a handler runs, so handlers may publish,
//     subscribe or cancel freely.
//
// Delivery is fire-and-forget. An envelope for an identity with no
// subscriber is dropped, and handler errors are logged and counted but never
// returned to the publisher.
package transport
