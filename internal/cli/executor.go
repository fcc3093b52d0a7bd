// Package cli runs tool calls in-process for the one-shot commands and
// renders capability listings.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"mcp-tavily/internal/config"
	"mcp-tavily/internal/dispatch"
	"mcp-tavily/internal/tavily"
	"mcp-tavily/pkg/logging"
)

// Executor drives the dispatcher for one-shot CLI invocations. Unlike the
// MCP transports, an error-flavored response here becomes a real error so
// the process exits non-zero.
type Executor struct {
	dispatcher *dispatch.Dispatcher
	out        io.Writer
}

// ExecutorOptions configures how a one-shot tool executor is built.
type ExecutorOptions struct {
	// Debug forces debug-level logging regardless of the configured level.
	Debug bool
}

// NewToolExecutor loads configuration and wires the Tavily client and
// dispatcher for a one-shot command. Results go to stdout, logs to stderr.
func NewToolExecutor(opts ExecutorOptions) (*Executor, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if opts.Debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("TAVILY_API_KEY environment variable is required")
	}

	dispatcher, err := dispatch.New(tavily.NewClientFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to build dispatcher: %w", err)
	}
	return NewExecutor(dispatcher), nil
}

// NewExecutor creates an executor writing results to stdout.
func NewExecutor(d *dispatch.Dispatcher) *Executor {
	return &Executor{dispatcher: d, out: os.Stdout}
}

// NewExecutorWithWriter creates an executor writing results to w.
func NewExecutorWithWriter(d *dispatch.Dispatcher, w io.Writer) *Executor {
	return &Executor{dispatcher: d, out: w}
}

// Execute dispatches one tool call and prints the response text. The
// returned error carries the response text verbatim; cobra prints it.
func (e *Executor) Execute(ctx context.Context, toolName string, arguments map[string]interface{}) error {
	resp := e.dispatcher.Dispatch(ctx, toolName, arguments)
	if resp.IsError {
		return fmt.Errorf("%s", resp.Text)
	}

	fmt.Fprintln(e.out, resp.Text)
	return nil
}
