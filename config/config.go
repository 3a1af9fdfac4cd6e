// Package config loads driver configuration from the environment and an
// optional .env file.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the knobs shared by the cmd drivers.
type Config struct {
	CapacityHint int    `env:"CAPACITY_HINT" envDefault:"200000"`
	DataDir      string `env:"DATA_DIR" envDefault:"."`
	ReportPath   string `env:"REPORT_PATH" envDefault:"performance_report.html"`
	Depth        int    `env:"DEPTH" envDefault:"10"`
	Seed         int64  `env:"SEED" envDefault:"12345"`
}

// Load populates cfg from the environment, reading .env first when present.
func Load(cfg any) error {
	_ = godotenv.Load() // .env is optional
	return env.Parse(cfg)
}

// MustLoad is Load for program start-up paths that cannot proceed without
// configuration.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
