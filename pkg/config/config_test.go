package config

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "name: demo\nport: 9000\n")
	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "demo" || cfg.Port != 9000 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TEST_CONFIG_NAME", "from-env")
	path := writeConfig(t, "name: ${TEST_CONFIG_NAME}\n")
	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "from-env" {
		t.Errorf("name = %q, want from-env", cfg.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg testConfig
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "name: [unterminated\n")
	var cfg testConfig
	if err := Load(path, &cfg); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadOrDefaultsMissingFileKeepsDefaults(t *testing.T) {
	cfg := testConfig{Name: "default", Port: 8080}
	if err := LoadOrDefaults(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err != nil {
		t.Fatalf("LoadOrDefaults: %v", err)
	}
	if cfg.Name != "default" || cfg.Port != 8080 {
		t.Errorf("defaults were modified: %+v", cfg)
	}
}

func TestLoadOrDefaultsExistingFileWins(t *testing.T) {
	path := writeConfig(t, "name: from-file\n")
	cfg := testConfig{Name: "default"}
	if err := LoadOrDefaults(path, &cfg); err != nil {
		t.Fatalf("LoadOrDefaults: %v", err)
	}
	if cfg.Name != "from-file" {
		t.Errorf("name = %q, want from-file", cfg.Name)
	}
}
