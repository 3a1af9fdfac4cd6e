package service

import (
	"time"

	"go.uber.org/zap"

	"flint/domain/book"
)

type commandKind int

const (
	cmdSubmit commandKind = iota
	cmdCancel
	cmdQuote
	cmdTopLevels
	cmdOrderCount
	cmdTotalVolume
	cmdStop
)

type request struct {
	kind  commandKind
	order book.Order
	id    uint64
	side  book.Side
	depth int
	resp  chan response
}

type response struct {
	ok     bool
	fills  []book.Fill
	levels []book.LevelSnapshot
	bid    int64
	ask    int64
	count  int
	volume uint64
}

// Quote is a consistent top-of-book snapshot. A zero price marks an empty side.
type Quote struct {
	Bid int64
	Ask int64
}

// Dispatcher serializes all engine access onto one goroutine.
type Dispatcher struct {
	engine  *book.Engine
	log     *zap.Logger
	reqCh   chan request
	stopped chan struct{}

	reclaimEvery time.Duration
}

// Option adjusts dispatcher construction.
type Option func(*Dispatcher)

// WithReclaimInterval overrides how often retired order nodes are recycled.
func WithReclaimInterval(d time.Duration) Option {
	return func(disp *Dispatcher) { disp.reclaimEvery = d }
}

// New wires a dispatcher around an engine and starts its run loop.
func New(engine *book.Engine, log *zap.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		engine:       engine,
		log:          log,
		reqCh:        make(chan request),
		stopped:      make(chan struct{}),
		reclaimEvery: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(d)
	}
	go d.run()
	d.log.Info("dispatcher started", zap.Duration("reclaim_interval", d.reclaimEvery))
	return d
}

func (d *Dispatcher) run() {
	ticker := time.NewTicker(d.reclaimEvery)
	defer ticker.Stop()

	for {
		select {
		case req := <-d.reqCh:
			if req.kind == cmdStop {
				d.engine.Reclaim()
				close(d.stopped)
				return
			}
			req.resp <- d.handle(req)
		case <-ticker.C:
			d.engine.Reclaim()
		}
	}
}

func (d *Dispatcher) handle(req request) response {
	switch req.kind {
	case cmdSubmit:
		var fills []book.Fill
		ok := d.engine.Submit(req.order, &fills)
		if !ok {
			d.log.Debug("order rejected",
				zap.Uint64("id", req.order.ID),
				zap.String("side", req.order.Side.String()),
				zap.Uint32("qty", req.order.Qty))
		}
		return response{ok: ok, fills: fills}
	case cmdCancel:
		return response{ok: d.engine.Cancel(req.id)}
	case cmdQuote:
		return response{bid: d.engine.BestBid(), ask: d.engine.BestAsk()}
	case cmdTopLevels:
		return response{levels: d.engine.TopLevels(req.side, req.depth)}
	case cmdOrderCount:
		return response{count: d.engine.OrderCount()}
	case cmdTotalVolume:
		return response{volume: d.engine.TotalVolume(req.side)}
	}
	return response{}
}

func (d *Dispatcher) send(req request) response {
	req.resp = make(chan response, 1)
	d.reqCh <- req
	return <-req.resp
}

// Submit runs one order through the engine. The returned fills are owned by
// the caller.
func (d *Dispatcher) Submit(o book.Order) (bool, []book.Fill) {
	resp := d.send(request{kind: cmdSubmit, order: o})
	return resp.ok, resp.fills
}

// Cancel removes a resting order by id.
func (d *Dispatcher) Cancel(id uint64) bool {
	return d.send(request{kind: cmdCancel, id: id}).ok
}

// Quote returns the best bid and ask as one consistent snapshot.
func (d *Dispatcher) Quote() Quote {
	resp := d.send(request{kind: cmdQuote})
	return Quote{Bid: resp.bid, Ask: resp.ask}
}

// TopLevels snapshots up to depth levels of one side.
func (d *Dispatcher) TopLevels(side book.Side, depth int) []book.LevelSnapshot {
	return d.send(request{kind: cmdTopLevels, side: side, depth: depth}).levels
}

// OrderCount returns the number of resting orders.
func (d *Dispatcher) OrderCount() int {
	return d.send(request{kind: cmdOrderCount}).count
}

// TotalVolume returns the resting quantity on one side.
func (d *Dispatcher) TotalVolume(side book.Side) uint64 {
	return d.send(request{kind: cmdTotalVolume, side: side}).volume
}

// Stats reads the engine counters. Safe from any goroutine; values may lag
// in-flight commands.
func (d *Dispatcher) Stats() *book.Stats { return d.engine.Stats() }

// Close stops the run loop. Pending callers must not race Close; commands
// after Close hang by design.
func (d *Dispatcher) Close() {
	d.reqCh <- request{kind: cmdStop}
	<-d.stopped
	d.log.Info("dispatcher stopped",
		zap.Uint64("orders_processed", d.engine.Stats().OrdersProcessed()),
		zap.Uint64("fills_generated", d.engine.Stats().FillsGenerated()))
}
