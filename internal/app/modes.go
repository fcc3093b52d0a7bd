package app

import (
	"context"
	"os"

	"mcp-tavily/internal/server"
	"mcp-tavily/pkg/logging"
)

// runStdioMode speaks MCP over stdin/stdout until the stream closes or the
// context is canceled.
func runStdioMode(ctx context.Context, srv *server.TavilyServer) error {
	return srv.ServeStdio(ctx, os.Stdin, os.Stdout)
}

// runSSEMode serves MCP over HTTP with Server-Sent Events.
func runSSEMode(ctx context.Context, srv *server.TavilyServer, host string, port int) error {
	logging.Info("Serve", "SSE clients connect to http://%s:%d/sse", host, port)
	return srv.ServeSSE(ctx)
}
