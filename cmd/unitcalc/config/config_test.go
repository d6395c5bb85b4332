package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calcmark/unitcalc/unitcat"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DefaultDegree != "celsius" {
		t.Errorf("expected default_degree celsius, got %s", cfg.DefaultDegree)
	}
	if cfg.AllowTrailingOperators {
		t.Error("expected allow_trailing_operators false by default")
	}
	if cfg.Precision != 16 {
		t.Errorf("expected precision 16, got %d", cfg.Precision)
	}
	if cfg.DegreeUnit() != unitcat.Celsius {
		t.Errorf("expected DegreeUnit() Celsius, got %v", cfg.DegreeUnit())
	}
}

func TestLoad_UserConfigMerge(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".config", "unitcalc")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	userConfig := "default_degree: fahrenheit\nprecision: 20\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(userConfig), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DefaultDegree != "fahrenheit" {
		t.Errorf("expected user override fahrenheit, got %s", cfg.DefaultDegree)
	}
	if cfg.DegreeUnit() != unitcat.Fahrenheit {
		t.Errorf("expected DegreeUnit() Fahrenheit, got %v", cfg.DegreeUnit())
	}
	if cfg.Precision != 20 {
		t.Errorf("expected user override precision 20, got %d", cfg.Precision)
	}
	if cfg.AllowTrailingOperators {
		t.Error("expected default allow_trailing_operators preserved (false)")
	}
}

func TestWriteDefault(t *testing.T) {
	tmpHome := t.TempDir()
	path := filepath.Join(tmpHome, ".config", "unitcalc", "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	t.Setenv("HOME", tmpHome)
	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error after WriteDefault: %v", err)
	}
	if cfg.DefaultDegree != "celsius" {
		t.Errorf("expected written default celsius, got %s", cfg.DefaultDegree)
	}
}
