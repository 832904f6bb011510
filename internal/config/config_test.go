package config

import (
	"flag"
	"os"
	"testing"
)

// resetFlagSet creates a fresh FlagSet before each NewConfig call so repeated
// tests do not re-register the same flags.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("SYNCD_ADDRESS", "")
	t.Setenv("SYNCD_API_KEY", "")
	t.Setenv("PASSLISS_DATA_DIR", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.Addr != "localhost:8090" {
		t.Fatalf("Addr default expected 'localhost:8090', got %q", cfg.Addr)
	}
	if cfg.APIKey != "" {
		t.Fatalf("APIKey default expected empty, got %q", cfg.APIKey)
	}
	if cfg.DataDir == "" {
		t.Fatalf("DataDir default must be non-empty")
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SYNCD_ADDRESS", "0.0.0.0:9999")
	t.Setenv("SYNCD_API_KEY", "top")
	t.Setenv("PASSLISS_DATA_DIR", "/tmp/passliss-test")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.Addr != "0.0.0.0:9999" {
		t.Fatalf("Addr expected '0.0.0.0:9999', got %q", cfg.Addr)
	}
	if cfg.APIKey != "top" {
		t.Fatalf("APIKey expected 'top', got %q", cfg.APIKey)
	}
	if cfg.DataDir != "/tmp/passliss-test" {
		t.Fatalf("DataDir expected '/tmp/passliss-test', got %q", cfg.DataDir)
	}
}
