// Command generate writes the reproducible CSV order files used by the
// benchmark drivers.
package main

import (
	"path/filepath"

	"go.uber.org/zap"

	"flint/config"
	"flint/csvfeed"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var cfg config.Config
	config.MustLoad(&cfg)

	files := []struct {
		name string
		n    int
	}{
		{"orders_small.csv", 1000},
		{"orders_medium.csv", 10000},
		{"orders_large.csv", 100000},
	}

	for _, f := range files {
		path := filepath.Join(cfg.DataDir, f.name)
		if err := csvfeed.GenerateFile(path, f.n, cfg.Seed); err != nil {
			log.Fatal("generate failed", zap.String("path", path), zap.Error(err))
		}
		log.Info("file written", zap.String("path", path), zap.Int("orders", f.n))
	}
}
