package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplicationConfig_EmptyTransportDefaultsStdio(t *testing.T) {
	cfg := ApplicationConfig{Transport: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty transport should default to stdio: %v", err)
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("transport = %q, want %q", cfg.Transport, TransportStdio)
	}
}

func TestApplicationConfig_StdioIgnoresPort(t *testing.T) {
	cfg := ApplicationConfig{Transport: TransportStdio, HTTP: HTTPConfig{Port: 0}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("stdio transport should not require a port: %v", err)
	}
}

func TestApplicationConfig_HTTPRequiresValidPort(t *testing.T) {
	cfg := ApplicationConfig{Transport: TransportHTTP, HTTP: HTTPConfig{Port: 0}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("http transport with port 0 should fail")
	}
	cfg.HTTP.Port = 8080
	if err := cfg.Validate(); err != nil {
		t.Fatalf("http transport with valid port should pass: %v", err)
	}
}

func TestApplicationConfig_InvalidTransport(t *testing.T) {
	cfg := ApplicationConfig{Transport: "carrier-pigeon"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid transport should fail validation")
	}
}

func TestDocsConfig_DirRequired(t *testing.T) {
	cfg := DocsConfig{Dir: ""}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty docs dir should fail validation")
	}
}

func TestDocsConfig_ResolveAbsolute(t *testing.T) {
	dir := t.TempDir()
	cfg := DocsConfig{Dir: dir}
	got, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != filepath.Clean(dir) {
		t.Errorf("Resolve = %q, want %q", got, dir)
	}
}

func TestDocsConfig_ResolveRelativeAnchorsToExecutable(t *testing.T) {
	cfg := DocsConfig{Dir: "docs"}
	got, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("Executable: %v", err)
	}
	want := filepath.Join(filepath.Dir(exe), "docs")
	if got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestFullConfig_DefaultsValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}
