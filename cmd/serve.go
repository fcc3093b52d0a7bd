package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mcp-tavily/internal/app"
)

// serveTransport selects the MCP transport. Empty means the configured
// value, which defaults to stdio.
var serveTransport string

// serveHost and servePort bind the SSE listener. Zero values defer to the
// configuration file.
var (
	serveHost string
	servePort int
)

// serveCmd defines the serve command structure.
// This is the main command of mcp-tavily: it starts the MCP server that AI
// assistants connect to.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tavily MCP server",
	Long: `Starts the MCP server exposing the Tavily search tools to AI assistants:
tavily_search, tavily_qna_search, tavily_get_context and
tavily_extract_content.

It can serve two transports:

1. stdio (default):
   - Speaks MCP over stdin/stdout for clients that spawn the server as a
     subprocess (Claude Desktop, Cursor and similar).
   - All logging goes to stderr so the protocol stream stays clean.

2. SSE (using --transport sse):
   - Serves MCP over HTTP with Server-Sent Events, bound to --host and
     --port. Clients connect to http://<host>:<port>/sse.

Configuration:
  mcp-tavily layers its configuration from built-in defaults,
  ~/.config/mcp-tavily/config.yaml, ./.mcp-tavily/config.yaml and finally
  environment variables. TAVILY_API_KEY must be set one way or another;
  a .env file in the working directory is honored.`,
	Args: cobra.NoArgs, // No arguments required
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveTransport, serveHost, servePort, rootDebug, rootCmd.Version)

	// Create and initialize the application
	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// Run the application
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// init registers the serve command and its flags with the root command.
// This is called automatically when the package is imported.
func init() {
	rootCmd.AddCommand(serveCmd)

	// Register command flags
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "MCP transport: stdio or sse (default is the configured value, stdio)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind for the SSE transport (default is the configured value, localhost)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to bind for the SSE transport (default is the configured value, 8080)")
}
