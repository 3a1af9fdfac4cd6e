// Package book implements a price-time priority limit order book for a
// single instrument: red-black-tree side books keyed by price tick, intrusive
// FIFO queues per level, and an order-id index for O(1) cancellation.
//
// The engine is single-threaded with respect to mutations. Callers that need
// concurrent access funnel commands through service.Dispatcher.
package book
