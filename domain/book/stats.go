package book

import "sync/atomic"

// Stats is the engine's telemetry block. The counters are monotonic and may
// be read from observer goroutines with relaxed semantics; they are not the
// source of truth for structural state.
type Stats struct {
	ordersProcessed atomic.Uint64
	fillsGenerated  atomic.Uint64
}

func (s *Stats) OrdersProcessed() uint64 { return s.ordersProcessed.Load() }
func (s *Stats) FillsGenerated() uint64  { return s.fillsGenerated.Load() }
