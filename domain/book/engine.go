package book

import (
	"flint/infra/memory"
)

const retireRingCapacity = 1 << 14

// Engine owns both side books, the order-id index and the node arena. All
// mutating calls must come from a single goroutine; only the Stats counters
// tolerate concurrent readers.
type Engine struct {
	bids  *SideBook
	asks  *SideBook
	index map[uint64]*Order
	pool  *memory.Pool[Order]
	ring  *memory.RetireRing[Order]
	clock uint64
	stats Stats
}

// NewEngine builds an empty engine. capacityHint sizes the order index for
// the expected live-order count; exceeding it grows the index, it never fails.
func NewEngine(capacityHint int) *Engine {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Engine{
		bids:  NewSideBook(Buy),
		asks:  NewSideBook(Sell),
		index: make(map[uint64]*Order, capacityHint),
		pool:  memory.NewPool(func() *Order { return &Order{} }),
		ring:  memory.NewRetireRing[Order](retireRingCapacity),
	}
}

// Submit runs one order through validation, the FOK preflight and the match
// loop, resting any Limit+GTC residual. Fills, if the caller passes a slice,
// are appended in price-then-time priority order. It returns false — with no
// state change and no fills — for validation failures and FOK rejects.
func (e *Engine) Submit(o Order, fills *[]Fill) bool {
	if !e.validate(&o) {
		return false
	}
	if o.TIF == FOK && !e.fokAvailable(&o) {
		return false
	}

	e.clock++
	o.seq = e.clock
	if o.Timestamp == 0 {
		o.Timestamp = e.clock
	}

	remaining := e.match(&o, fills)
	if remaining > 0 && o.Type == Limit && o.TIF == GTC {
		e.rest(&o, remaining)
	}
	// IOC and Market residuals are discarded; FOK cannot reach here with a
	// residual because the preflight guarantees full liquidity.

	e.stats.ordersProcessed.Add(1)
	return true
}

// Cancel removes a resting order by id. Returns false if the id is not
// currently resting. No fills are emitted.
func (e *Engine) Cancel(id uint64) bool {
	o, ok := e.index[id]
	if !ok {
		return false
	}
	own := e.sideBook(o.Side)
	lvl := o.level
	own.SubVolume(uint64(o.Qty))
	lvl.Unlink(o)
	if lvl.Count == 0 {
		own.RemoveLevel(lvl)
	}
	delete(e.index, id)
	e.retire(o)
	return true
}

// BestBid returns the best bid in ticks, 0 when the bid side is empty.
// Callers that need to distinguish an empty side use BestBidPrice.
func (e *Engine) BestBid() int64 {
	if lvl := e.bids.Best(); lvl != nil {
		return lvl.Price
	}
	return 0
}

// BestAsk returns the best ask in ticks, 0 when the ask side is empty.
func (e *Engine) BestAsk() int64 {
	if lvl := e.asks.Best(); lvl != nil {
		return lvl.Price
	}
	return 0
}

// BestBidPrice returns the best bid and whether the side is non-empty.
func (e *Engine) BestBidPrice() (int64, bool) {
	if lvl := e.bids.Best(); lvl != nil {
		return lvl.Price, true
	}
	return 0, false
}

// BestAskPrice returns the best ask and whether the side is non-empty.
func (e *Engine) BestAskPrice() (int64, bool) {
	if lvl := e.asks.Best(); lvl != nil {
		return lvl.Price, true
	}
	return 0, false
}

// TopLevels snapshots up to depth levels of one side in priority order.
func (e *Engine) TopLevels(side Side, depth int) []LevelSnapshot {
	return e.sideBook(side).TopLevels(depth)
}

// OrderCount returns the number of resting orders.
func (e *Engine) OrderCount() int { return len(e.index) }

// TotalVolume returns the resting quantity summed over one side.
func (e *Engine) TotalVolume(side Side) uint64 {
	return e.sideBook(side).TotalVolume()
}

// Stats exposes the telemetry counters.
func (e *Engine) Stats() *Stats { return &e.stats }

// Reclaim drains the retire ring back into the node pool. The dispatcher
// calls this periodically; it is also safe to call after bursts.
func (e *Engine) Reclaim() {
	for {
		o := e.ring.Dequeue()
		if o == nil {
			return
		}
		e.pool.Put(o)
	}
}

func (e *Engine) sideBook(side Side) *SideBook {
	if side == Buy {
		return e.bids
	}
	return e.asks
}

func (e *Engine) validate(o *Order) bool {
	if o.ID == 0 || o.Qty == 0 {
		return false
	}
	if o.Side != Buy && o.Side != Sell {
		return false
	}
	if o.TIF != GTC && o.TIF != IOC && o.TIF != FOK {
		return false
	}
	switch o.Type {
	case Limit:
	case Market:
		// Market orders are inherently immediate; GTC and FOK are invalid.
		if o.TIF != IOC {
			return false
		}
	default:
		return false
	}
	if _, dup := e.index[o.ID]; dup {
		return false
	}
	return true
}

// priceAcceptable reports whether an aggressor may trade at a resting level.
func priceAcceptable(a *Order, levelPrice int64) bool {
	if a.Type == Market {
		return true
	}
	if a.Side == Buy {
		return levelPrice <= a.Price
	}
	return levelPrice >= a.Price
}

// fokAvailable is the FOK preflight: a pure walk of the opposite side summing
// matchable quantity at acceptable prices. No allocation, no counter writes.
func (e *Engine) fokAvailable(o *Order) bool {
	need := uint64(o.Qty)
	var have uint64
	e.sideBook(o.Side.Opposite()).Walk(func(lvl *PriceLevel) bool {
		if !priceAcceptable(o, lvl.Price) {
			return false
		}
		have += lvl.TotalQty
		return have < need
	})
	return have >= need
}

// match drains the opposite side in price-then-time priority and returns the
// aggressor's unmatched remainder.
func (e *Engine) match(a *Order, fills *[]Fill) uint32 {
	opp := e.sideBook(a.Side.Opposite())
	q := a.Qty
	for q > 0 {
		lvl := opp.Best()
		if lvl == nil || !priceAcceptable(a, lvl.Price) {
			break
		}
		for q > 0 {
			m := lvl.Head()
			if m == nil {
				break
			}
			take := m.Qty
			if q < take {
				take = q
			}
			if fills != nil {
				*fills = append(*fills, Fill{
					AggressorID: a.ID,
					MakerID:     m.ID,
					Price:       lvl.Price,
					Qty:         take,
					Timestamp:   e.clock,
				})
			}
			q -= take
			m.Qty -= take
			lvl.TotalQty -= uint64(take)
			opp.SubVolume(uint64(take))
			e.stats.fillsGenerated.Add(1)

			if m.Qty != 0 {
				break // aggressor exhausted against a larger maker
			}
			lvl.Unlink(m)
			delete(e.index, m.ID)
			e.retire(m)
		}
		if lvl.Count == 0 {
			opp.RemoveLevel(lvl)
		}
		if q == 0 {
			break
		}
	}
	return q
}

// rest admits the aggressor's residual to its own side.
func (e *Engine) rest(a *Order, remaining uint32) {
	n := e.pool.Get()
	*n = Order{
		ID:        a.ID,
		Price:     a.Price,
		Qty:       remaining,
		Side:      a.Side,
		Type:      a.Type,
		TIF:       a.TIF,
		Account:   a.Account,
		Timestamp: a.Timestamp,
		seq:       a.seq,
	}
	own := e.sideBook(a.Side)
	own.GetOrCreate(a.Price).Enqueue(n)
	own.AddVolume(uint64(remaining))
	e.index[n.ID] = n
}

func (e *Engine) retire(o *Order) {
	o.Reset()
	if !e.ring.Enqueue(o) {
		e.pool.Put(o)
	}
}
