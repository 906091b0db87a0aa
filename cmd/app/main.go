package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/ceciliomichael/folder-structure-mcp/internal"
	pkgconfig "github.com/ceciliomichael/folder-structure-mcp/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOrDefaults(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if dir := cmd.String("docs"); dir != "" {
		cfg.Docs.Dir = dir
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "docs-manager",
		Usage:  "MCP server managing a flat folder of Markdown documentation files",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "docs",
				Aliases: []string{"d"},
				Usage:   "Docs directory (overrides config)",
				Sources: cli.EnvVars("APP_DOCS_DIR"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
