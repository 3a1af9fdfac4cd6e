// Command bench runs the single-threaded performance suites: order latency,
// per-order-type timings and market-data query rates.
package main

import (
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"

	"flint/bench"
	"flint/config"
	"flint/domain/book"
)

func main() {
	latency := flag.Bool("latency", false, "run the order latency benchmark")
	orderTypes := flag.Bool("order-types", false, "run the per-order-type benchmark")
	marketData := flag.Bool("market-data", false, "run the market data query benchmark")
	numOrders := flag.Int("n", 100000, "orders for the latency benchmark")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var cfg config.Config
	config.MustLoad(&cfg)

	runAll := !*latency && !*orderTypes && !*marketData
	if runAll || *latency {
		benchmarkLatency(cfg, *numOrders)
	}
	if runAll || *orderTypes {
		benchmarkOrderTypes(cfg)
	}
	if runAll || *marketData {
		benchmarkMarketData(cfg)
	}
}

func benchmarkLatency(cfg config.Config, n int) {
	fmt.Println("=== ORDER LATENCY BENCHMARK ===")

	e := book.NewEngine(cfg.CapacityHint)
	nextID := bench.SeedLiquidity(e, 1)
	orders := bench.RandomOrders(n, cfg.Seed, nextID)

	res := bench.Run("latency", e, orders)

	fmt.Printf("Orders Processed: %d\n", res.OrdersProcessed)
	fmt.Printf("Fills Generated:  %d\n", res.FillsGenerated)
	fmt.Printf("Total Time:       %v\n", res.TotalTime)
	fmt.Printf("Throughput:       %.0f orders/sec\n", res.Throughput)
	fmt.Println("Latency:")
	fmt.Printf("  Average:  %v\n", res.AvgLatency)
	fmt.Printf("  Median:   %v\n", res.MedianLatency)
	fmt.Printf("  Min:      %v\n", res.MinLatency)
	fmt.Printf("  Max:      %v\n", res.MaxLatency)
	fmt.Printf("  95th %%:   %v\n", res.P95Latency)
	fmt.Printf("  99th %%:   %v\n", res.P99Latency)
	fmt.Println()
}

func benchmarkOrderTypes(cfg config.Config) {
	fmt.Println("=== ORDER TYPE BENCHMARK ===")

	e := book.NewEngine(cfg.CapacityHint)
	nextID := bench.SeedLiquidity(e, 1)

	const iterations = 10000

	gtc := timeBatch(iterations, func(i int) book.Order {
		return book.Order{
			ID: nextID + uint64(i), Side: book.Buy,
			Price: 51000 * book.TickPrecision, Qty: 10,
			Type: book.Limit, TIF: book.GTC,
		}
	}, e)
	nextID += iterations

	ioc := timeBatch(iterations, func(i int) book.Order {
		return book.Order{
			ID: nextID + uint64(i), Side: book.Buy,
			Price: 52010 * book.TickPrecision, Qty: 5,
			Type: book.Limit, TIF: book.IOC,
		}
	}, e)
	nextID += iterations

	fok := timeBatch(iterations, func(i int) book.Order {
		return book.Order{
			ID: nextID + uint64(i), Side: book.Sell,
			Price: 51990 * book.TickPrecision, Qty: 5,
			Type: book.Limit, TIF: book.FOK,
		}
	}, e)

	fmt.Printf("GTC: %v (%v/order)\n", gtc, gtc/iterations)
	fmt.Printf("IOC: %v (%v/order)\n", ioc, ioc/iterations)
	fmt.Printf("FOK: %v (%v/order)\n", fok, fok/iterations)
	fmt.Println()
}

func timeBatch(n int, mk func(i int) book.Order, e *book.Engine) time.Duration {
	var fills []book.Fill
	start := time.Now()
	for i := 0; i < n; i++ {
		fills = fills[:0]
		e.Submit(mk(i), &fills)
	}
	return time.Since(start)
}

func benchmarkMarketData(cfg config.Config) {
	fmt.Println("=== MARKET DATA BENCHMARK ===")

	e := book.NewEngine(cfg.CapacityHint)
	id := uint64(1)
	for i := int64(0); i < 1000; i++ {
		for j := 0; j < 10; j++ {
			e.Submit(book.Order{
				ID: id, Side: book.Buy,
				Price: (50000 - i) * book.TickPrecision, Qty: 100,
				Type: book.Limit, TIF: book.GTC,
			}, nil)
			id++
			e.Submit(book.Order{
				ID: id, Side: book.Sell,
				Price: (50001 + i) * book.TickPrecision, Qty: 100,
				Type: book.Limit, TIF: book.GTC,
			}, nil)
			id++
		}
	}
	fmt.Printf("Book populated with %d orders\n", e.OrderCount())
	fmt.Printf("Best Bid: $%.2f  Best Ask: $%.2f\n",
		book.FromTicks(e.BestBid()), book.FromTicks(e.BestAsk()))

	const queries = 100000
	var sink int64
	start := time.Now()
	for i := 0; i < queries; i++ {
		sink += e.BestBid() + e.BestAsk()
	}
	elapsed := time.Since(start)
	_ = sink
	fmt.Printf("Best bid/ask: %d queries in %v (%.2f ns/query)\n",
		queries, elapsed, float64(elapsed.Nanoseconds())/queries)

	const snapshots = 1000
	start = time.Now()
	for i := 0; i < snapshots; i++ {
		_ = e.TopLevels(book.Buy, cfg.Depth)
		_ = e.TopLevels(book.Sell, cfg.Depth)
	}
	elapsed = time.Since(start)
	fmt.Printf("Depth snapshots: %d in %v (%v/snapshot)\n",
		snapshots, elapsed, elapsed/snapshots)
	fmt.Println()
}
