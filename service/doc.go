// Package service wraps the matching engine in a single-goroutine dispatcher.
// The engine is not safe for concurrent mutation; the dispatcher is the one
// write entry point, funneling submits, cancels and structural queries
// through a request channel so callers on any goroutine observe a serialized
// book. Stats reads bypass the funnel: the counters are atomics.
package service
