package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Crack.Alphabet != nil || cfg.Crack.MaxKeyLen != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigDecodesCrackSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[crack]\nalphabet = \"sv\"\nmax-key-len = 20\ntop = 3\nhistory = false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Crack.Alphabet == nil || *cfg.Crack.Alphabet != "sv" {
		t.Fatalf("unexpected alphabet: %v", cfg.Crack.Alphabet)
	}
	if cfg.Crack.MaxKeyLen == nil || *cfg.Crack.MaxKeyLen != 20 {
		t.Fatalf("unexpected max-key-len: %v", cfg.Crack.MaxKeyLen)
	}
	if cfg.Crack.History == nil || *cfg.Crack.History {
		t.Fatalf("expected history=false")
	}
	if cfg.Crack.Reference != nil {
		t.Fatalf("expected reference to stay unset")
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[crack]\nmax-keylen = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "vigcrack", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "vigcrack", "vigcrack.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}
