// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/ceciliomichael/folder-structure-mcp/internal/docstore"
	"github.com/ceciliomichael/folder-structure-mcp/internal/mcpserver"
	"github.com/ceciliomichael/folder-structure-mcp/internal/watcher"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Default to a structured JSON logger on stderr: in stdio mode stdout
	// carries the MCP protocol channel.
	logger := app.logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.App.LogLevel,
		}))
	}
	slog.SetDefault(logger)

	docsDir, err := cfg.Docs.Resolve()
	if err != nil {
		return fmt.Errorf("resolve docs dir: %w", err)
	}

	logger.Info("Configuration loaded",
		slog.String("transport", cfg.App.Transport),
		slog.String("docs_dir", docsDir),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure the docs directory exists.
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return fmt.Errorf("create docs dir: %w", err)
	}

	// Initialize the document store.
	store, err := docstore.New(docsDir)
	if err != nil {
		return fmt.Errorf("init docstore: %w", err)
	}

	srv := mcpserver.New(store)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(runCtx)

	// Log external edits to the docs directory.
	g.Go(func() error {
		if err := watcher.Watch(gCtx, docsDir, logger, nil); err != nil {
			logger.Warn("watcher failed", slog.String("error", err.Error()))
		}
		return nil
	})

	// shutdown is invoked once by the signal handler below.
	var shutdown func()

	switch cfg.App.Transport {
	case TransportHTTP:
		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(middleware.Logger)
		r.Use(middleware.Recoverer)

		// Health check endpoints.
		r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
		r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})

		r.Mount("/mcp", server.NewStreamableHTTPServer(srv.MCPServer()))

		httpServer := &http.Server{
			Addr:    cfg.App.HTTP.Address(),
			Handler: r,
		}

		g.Go(func() error {
			defer cancel()
			logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("HTTP server error: %w", err)
			}
			return nil
		})

		shutdown = func() {
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancelShutdown()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
			}
		}

	default:
		stdioCtx, stopStdio := context.WithCancel(gCtx)

		g.Go(func() error {
			defer cancel()
			logger.Info("Serving MCP over stdio")
			if err := srv.ServeStdio(stdioCtx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("stdio server error: %w", err)
			}
			return nil
		})

		shutdown = stopStdio
	}

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")
		shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
