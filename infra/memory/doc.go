// Package memory provides the allocation plumbing for the matching engine:
// a typed free-list pool for order nodes and a fixed-capacity retire ring
// that defers recycling until the engine reclaims.
package memory
