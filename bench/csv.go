package bench

import (
	"flint/csvfeed"
	"flint/domain/book"
)

// RunCSVFile builds a fresh engine with the standard liquidity seed, replays
// the order file through it and returns the latency summary.
func RunCSVFile(label, path string, capacityHint int) (Result, error) {
	e := book.NewEngine(capacityHint)
	nextID := SeedLiquidity(e, 1)

	orders, skipped, err := csvfeed.ReadFile(path, nextID)
	if err != nil {
		return Result{}, err
	}

	res := Run(label, e, orders)
	res.SkippedRows = skipped
	return res, nil
}
