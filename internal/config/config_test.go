package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Capacity != 1000 {
		t.Errorf("Expected default capacity 1000, got %d", cfg.Capacity)
	}
	if !cfg.FailFast {
		t.Error("Expected fail_fast to default to true")
	}
	if !cfg.Color {
		t.Error("Expected color to default to true")
	}
	if cfg.Debug {
		t.Error("Expected debug to default to false")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		capacity int
		failFast bool
	}{
		{"empty", "", 1000, true},
		{"unbounded", "capacity = 0", 0, true},
		{"collect", "fail_fast = false\ncapacity = 5", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if cfg.Capacity != tt.capacity {
				t.Errorf("Expected capacity %d, got %d", tt.capacity, cfg.Capacity)
			}
			if cfg.FailFast != tt.failFast {
				t.Errorf("Expected fail_fast %v, got %v", tt.failFast, cfg.FailFast)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("capacity = -1")); err == nil {
		t.Error("Expected error for negative capacity")
	}
	if _, err := Parse([]byte("capacity = \"many\"")); err == nil {
		t.Error("Expected error for non-integer capacity")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Capacity != Default().Capacity {
		t.Errorf("Expected defaults for missing file, got %+v", cfg)
	}
}

func TestLoadForEntry(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("debug = true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadForEntry(filepath.Join(dir, "main.sem"))
	if err != nil {
		t.Fatalf("LoadForEntry failed: %v", err)
	}
	if !cfg.Debug {
		t.Error("Expected debug = true from file")
	}
	if !cfg.FailFast {
		t.Error("Expected unspecified keys to keep their defaults")
	}
}

func TestMarshal(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "capacity = 1000") {
		t.Errorf("Expected capacity in output, got %q", data)
	}
}
