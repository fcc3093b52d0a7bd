// Package server exposes the dispatcher over the MCP wire protocol, on
// either a stdio or an SSE transport.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mcp-tavily/internal/capability"
	"mcp-tavily/internal/dispatch"
	"mcp-tavily/pkg/logging"
)

// serverName is the identity announced during the MCP initialize handshake.
const serverName = "tavily-search"

const shutdownTimeout = 5 * time.Second

// Options configure how the server is exposed.
type Options struct {
	Version string
	Host    string
	Port    int
}

// TavilyServer wraps an MCP server around a dispatcher. One ServerTool is
// registered per capability; every handler delegates to Dispatch, so the
// transport layer carries no routing or validation logic of its own.
type TavilyServer struct {
	dispatcher *dispatch.Dispatcher
	mcpServer  *server.MCPServer
	opts       Options
}

// New assembles the MCP server from the dispatcher's capability list.
func New(d *dispatch.Dispatcher, opts Options) *TavilyServer {
	mcpServer := server.NewMCPServer(
		serverName,
		opts.Version,
		server.WithToolCapabilities(true),
	)

	descriptors := d.ListCapabilities()
	tools := make([]server.ServerTool, 0, len(descriptors))
	for _, desc := range descriptors {
		tools = append(tools, serverTool(d, desc))
	}
	mcpServer.AddTools(tools...)

	logging.Info("Server", "Registered %d tools", len(tools))
	return &TavilyServer{
		dispatcher: d,
		mcpServer:  mcpServer,
		opts:       opts,
	}
}

// serverTool binds one capability descriptor to the dispatcher. Dispatch
// renders every failure as result text, so the handler never returns a
// protocol-level error.
func serverTool(d *dispatch.Dispatcher, desc capability.Descriptor) server.ServerTool {
	return server.ServerTool{
		Tool: desc.MCPTool(),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			resp := d.Dispatch(ctx, desc.Name, req.GetArguments())
			if resp.IsError {
				return mcp.NewToolResultError(resp.Text), nil
			}
			return mcp.NewToolResultText(resp.Text), nil
		},
	}
}

// ServeStdio speaks the protocol over the given streams until ctx is
// cancelled or the input stream closes. When stdout carries the protocol,
// logging must already be pointed at stderr.
func (s *TavilyServer) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info("Server", "Serving MCP over stdio")
	return server.NewStdioServer(s.mcpServer).Listen(ctx, in, out)
}

// ServeSSE serves the protocol over SSE until ctx is cancelled or the
// listener fails.
func (s *TavilyServer) ServeSSE(ctx context.Context) error {
	baseURL := fmt.Sprintf("http://%s:%d", s.opts.Host, s.opts.Port)
	sseServer := server.NewSSEServer(
		s.mcpServer,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	addr := fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)
	logging.Info("Server", "Serving MCP over SSE on %s", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("SSE server failed: %w", err)
	case <-ctx.Done():
	}

	logging.Info("Server", "Shutting down SSE server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := sseServer.Shutdown(shutdownCtx); err != nil {
		logging.Error("Server", err, "Error shutting down SSE server")
		return err
	}
	return nil
}
