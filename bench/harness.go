// Package bench drives the engine through reproducible single-threaded
// workloads and summarizes per-operation latency. It is the measurement
// harness around the engine, not part of its contract.
package bench

import (
	"math/rand"
	"sort"
	"time"

	"flint/domain/book"
)

// Result summarizes one benchmark run.
type Result struct {
	Label           string
	OrdersProcessed int
	FillsGenerated  int
	SkippedRows     int
	TotalTime       time.Duration
	MinLatency      time.Duration
	MaxLatency      time.Duration
	AvgLatency      time.Duration
	MedianLatency   time.Duration
	P95Latency      time.Duration
	P99Latency      time.Duration
	Throughput      float64 // orders per second
}

// SeedLiquidity populates a fresh engine with the standard two-sided market:
// 50 bids stepping down by 10.00 from 52000.00 and 50 asks stepping up by
// 10.00 from 52001.00, quantity 100 + 5·i. Returns the next free order id.
func SeedLiquidity(e *book.Engine, firstID uint64) uint64 {
	id := firstID
	for i := int64(0); i < 50; i++ {
		e.Submit(book.Order{
			ID: id, Side: book.Buy,
			Price: (52000 - i*10) * book.TickPrecision,
			Qty:   uint32(100 + i*5),
			Type:  book.Limit, TIF: book.GTC,
		}, nil)
		id++
		e.Submit(book.Order{
			ID: id, Side: book.Sell,
			Price: (52001 + i*10) * book.TickPrecision,
			Qty:   uint32(100 + i*5),
			Type:  book.Limit, TIF: book.GTC,
		}, nil)
		id++
	}
	return id
}

// RandomOrders builds n random GTC limit orders around the seeded market:
// price ticks uniform on [50000, 55000] price units, quantity on [1, 1000].
func RandomOrders(n int, seed int64, firstID uint64) []book.Order {
	rng := rand.New(rand.NewSource(seed))
	orders := make([]book.Order, n)
	for i := range orders {
		side := book.Buy
		if rng.Intn(2) == 1 {
			side = book.Sell
		}
		orders[i] = book.Order{
			ID:    firstID + uint64(i),
			Side:  side,
			Price: (50000 + rng.Int63n(5001)) * book.TickPrecision,
			Qty:   uint32(1 + rng.Intn(1000)),
			Type:  book.Limit,
			TIF:   book.GTC,
		}
	}
	return orders
}

// Run submits every order, sampling per-submit latency, and folds the samples
// into a Result.
func Run(label string, e *book.Engine, orders []book.Order) Result {
	latencies := make([]time.Duration, 0, len(orders))
	fills := make([]book.Fill, 0, 16)
	totalFills := 0

	start := time.Now()
	for i := range orders {
		fills = fills[:0]
		opStart := time.Now()
		e.Submit(orders[i], &fills)
		latencies = append(latencies, time.Since(opStart))
		totalFills += len(fills)
	}
	total := time.Since(start)
	e.Reclaim()

	res := summarize(latencies)
	res.Label = label
	res.OrdersProcessed = len(orders)
	res.FillsGenerated = totalFills
	res.TotalTime = total
	if total > 0 {
		res.Throughput = float64(len(orders)) / total.Seconds()
	}
	return res
}

func summarize(latencies []time.Duration) Result {
	var res Result
	if len(latencies) == 0 {
		return res
	}
	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	res.MinLatency = sorted[0]
	res.MaxLatency = sorted[len(sorted)-1]
	res.AvgLatency = sum / time.Duration(len(sorted))
	res.MedianLatency = sorted[len(sorted)/2]
	res.P95Latency = sorted[int(float64(len(sorted))*0.95)]
	res.P99Latency = sorted[int(float64(len(sorted))*0.99)]
	return res
}
