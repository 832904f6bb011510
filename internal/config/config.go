package config

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// syncd settings
	Addr   string `env:"SYNCD_ADDRESS"`
	APIKey string `env:"SYNCD_API_KEY"`

	// Client settings
	DataDir string `env:"PASSLISS_DATA_DIR"`
	Version bool   `env:"-"` // show version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags apply only when the env vars above are unset
	flag.StringVar(&cfg.Addr, "a", cfg.Addr, "address for syncd to listen on")
	flag.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "static API key required by syncd (empty disables auth)")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding the local cache database")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	// Defaults
	if cfg.Addr == "" {
		cfg.Addr = "localhost:8090"
	}
	if cfg.DataDir == "" {
		if cfgDir, err := os.UserConfigDir(); err == nil {
			cfg.DataDir = filepath.Join(cfgDir, "passliss")
		}
	}

	return cfg
}
