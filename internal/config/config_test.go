package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	want := Config{
		DecksFile: "decks.yaml",
		Port:      "9000",
		MCPPort:   "9999",
		HTTPPort:  8080,
		Addr:      "localhost:9000",
		ArtDir:    "./card_art",
		MaxTurns:  200,
	}
	if cfg != want {
		t.Errorf("defaults = %+v, want %+v", cfg, want)
	}
}

func TestLoadFromEnv(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"GWENT_DECKS":     "custom.yaml",
		"GWENT_PORT":      "7000",
		"GWENT_HTTP_PORT": "9090",
		"GWENT_SEED":      "42",
		"GWENT_MAX_TURNS": "50",
	})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DecksFile != "custom.yaml" {
		t.Errorf("DecksFile = %q, want custom.yaml", cfg.DecksFile)
	}
	if cfg.Port != "7000" {
		t.Errorf("Port = %q, want 7000", cfg.Port)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %d, want 9090", cfg.HTTPPort)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.MaxTurns != 50 {
		t.Errorf("MaxTurns = %d, want 50", cfg.MaxTurns)
	}
}

func TestLoadProcessEnv(t *testing.T) {
	t.Setenv("GWENT_ADDR", "example.org:9000")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != "example.org:9000" {
		t.Errorf("Addr = %q, want example.org:9000", cfg.Addr)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"non-numeric port", "GWENT_HTTP_PORT", "eighty"},
		{"non-numeric seed", "GWENT_SEED", "abc"},
		{"negative turn limit", "GWENT_MAX_TURNS", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(map[string]string{tt.key: tt.value}); err == nil {
				t.Errorf("LoadFrom with %s=%q: expected error", tt.key, tt.value)
			}
		})
	}
}
