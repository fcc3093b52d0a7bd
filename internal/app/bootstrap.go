// Package app bootstraps the serve command: it layers configuration, wires
// the Tavily client into the dispatcher and MCP server, and runs the chosen
// transport until the process is told to stop.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mcp-tavily/internal/config"
	"mcp-tavily/internal/dispatch"
	"mcp-tavily/internal/server"
	"mcp-tavily/internal/tavily"
	"mcp-tavily/pkg/logging"
)

// probeTimeout bounds the startup API connectivity check.
const probeTimeout = 10 * time.Second

// Application is the assembled server process: configuration resolved,
// backend and dispatcher wired, transport chosen but not yet running.
type Application struct {
	config    *Config
	transport string
	host      string
	port      int
	backend   *tavily.Client
	server    *server.TavilyServer
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	settings, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs always go to stderr: in stdio mode stdout carries the MCP
	// protocol stream and must stay clean.
	level := logging.ParseLevel(settings.LogLevel)
	if cfg.Debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)

	if settings.APIKey == "" {
		return nil, fmt.Errorf("TAVILY_API_KEY environment variable is required")
	}

	transport := settings.Server.Transport
	if cfg.Transport != "" {
		transport = cfg.Transport
	}
	if transport != config.TransportStdio && transport != config.TransportSSE {
		return nil, fmt.Errorf("unsupported transport %q (expected %s or %s)",
			transport, config.TransportStdio, config.TransportSSE)
	}

	host := settings.Server.Host
	if cfg.Host != "" {
		host = cfg.Host
	}
	port := settings.Server.Port
	if cfg.Port != 0 {
		port = cfg.Port
	}

	backend := tavily.NewClientFromConfig(settings)

	dispatcher, err := dispatch.New(backend)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to build dispatcher")
		return nil, fmt.Errorf("failed to build dispatcher: %w", err)
	}

	srv := server.New(dispatcher, server.Options{
		Version: cfg.Version,
		Host:    host,
		Port:    port,
	})

	return &Application{
		config:    cfg,
		transport: transport,
		host:      host,
		port:      port,
		backend:   backend,
		server:    srv,
	}, nil
}

// Run serves MCP on the configured transport until the context is canceled
// or the process receives SIGINT/SIGTERM.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info("Bootstrap", "Starting Tavily Search MCP Server...")
	a.probe(ctx)

	if a.transport == config.TransportSSE {
		return runSSEMode(ctx, a.server, a.host, a.port)
	}
	return runStdioMode(ctx, a.server)
}

// probe fires one test question at the API so a bad key or unreachable
// endpoint shows up in the logs immediately. Failure is not fatal; the
// server starts either way.
func (a *Application) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if _, err := a.backend.Answer(probeCtx, "test"); err != nil {
		logging.Warn("Bootstrap", "Tavily API test failed: %v", err)
		return
	}
	logging.Info("Bootstrap", "Tavily API connection successful")
}
