package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Transport modes.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config represents the application configuration.
type Config struct {
	App  ApplicationConfig `yaml:"app"`
	Docs DocsConfig        `yaml:"docs"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Docs.Validate()
}

// ApplicationConfig holds application-level configuration.
//
// Transport controls how the MCP server is exposed:
//   - "stdio" (default): JSON-RPC over stdin/stdout, for local MCP clients.
//   - "http": streamable HTTP transport; HTTP.Port must be valid.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	Transport string     `yaml:"transport"`
	HTTP      HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	// Normalise empty transport to stdio for zero-config runs.
	if c.Transport == "" {
		c.Transport = TransportStdio
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Transport, validation.Required, validation.In(TransportStdio, TransportHTTP)),
	); err != nil {
		return err
	}
	if c.Transport == TransportHTTP {
		return c.HTTP.Validate()
	}
	return nil
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// DocsConfig holds the path to the docs directory.
type DocsConfig struct {
	Dir string `yaml:"dir"`
}

// Validate validates the docs configuration.
func (c *DocsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// Resolve returns the absolute docs directory. A relative Dir is anchored
// to the directory holding the running executable, not the working
// directory, so behavior does not depend on where the process is launched
// from.
func (c *DocsConfig) Resolve() (string, error) {
	if filepath.IsAbs(c.Dir) {
		return filepath.Clean(c.Dir), nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), c.Dir), nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			Transport: TransportStdio,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Docs: DocsConfig{
			Dir: "docs",
		},
	}
}
