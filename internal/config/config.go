package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds process settings shared by the gwent binaries. Command-line
// flags override these values.
type Config struct {
	DecksFile string `env:"GWENT_DECKS"      envDefault:"decks.yaml"`
	Port      string `env:"GWENT_PORT"       envDefault:"9000"`
	MCPPort   string `env:"GWENT_MCP_PORT"   envDefault:"9999"`
	HTTPPort  int    `env:"GWENT_HTTP_PORT"  envDefault:"8080"`
	Addr      string `env:"GWENT_ADDR"       envDefault:"localhost:9000"`
	ArtDir    string `env:"GWENT_ART_DIR"    envDefault:"./card_art"`
	Seed      int64  `env:"GWENT_SEED"`
	MaxTurns  int    `env:"GWENT_MAX_TURNS"  envDefault:"200"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(env.ToMap(os.Environ()))
}

// LoadFrom reads the configuration from the given variables.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxTurns < 0 {
		return Config{}, fmt.Errorf("GWENT_MAX_TURNS must not be negative, got %d", cfg.MaxTurns)
	}
	return cfg, nil
}
