// Command report replays the generated CSV files through fresh engines and
// renders the latency summary as a standalone HTML page.
package main

import (
	"path/filepath"

	"go.uber.org/zap"

	"flint/bench"
	"flint/config"
	"flint/report"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var cfg config.Config
	config.MustLoad(&cfg)

	runs := []struct {
		label string
		file  string
	}{
		{"Small", "orders_small.csv"},
		{"Medium", "orders_medium.csv"},
		{"Large", "orders_large.csv"},
	}

	results := make([]bench.Result, 0, len(runs))
	for _, run := range runs {
		path := filepath.Join(cfg.DataDir, run.file)
		res, err := bench.RunCSVFile(run.label, path, cfg.CapacityHint)
		if err != nil {
			log.Fatal("csv run failed", zap.String("path", path), zap.Error(err))
		}
		log.Info("csv run complete",
			zap.String("label", res.Label),
			zap.Int("orders", res.OrdersProcessed),
			zap.Int("fills", res.FillsGenerated),
			zap.Int("skipped_rows", res.SkippedRows),
			zap.Duration("avg_latency", res.AvgLatency),
			zap.Float64("throughput", res.Throughput))
		results = append(results, res)
	}

	if err := report.WriteFile(cfg.ReportPath, results...); err != nil {
		log.Fatal("report render failed", zap.Error(err))
	}
	log.Info("report written", zap.String("path", cfg.ReportPath))
}
