package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcp-tavily/internal/browse"
	"mcp-tavily/internal/config"
	"mcp-tavily/internal/dispatch"
	"mcp-tavily/internal/tavily"
	"mcp-tavily/pkg/logging"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Search the web in an interactive terminal UI",
	Long: `Open an interactive terminal UI for exploring Tavily search.

Type a query and press enter to run it. Tab cycles between search, answer
and context mode, y copies the current result text to the clipboard, and
q or ctrl+c exits.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("TAVILY_API_KEY environment variable is required")
	}

	// The TUI owns the terminal, so log entries are routed over a channel
	// and rendered in the status area instead of being written to stderr.
	level := logging.ParseLevel(cfg.LogLevel)
	if rootDebug {
		level = logging.LevelDebug
	}
	logChan := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	dispatcher, err := dispatch.New(tavily.NewClientFromConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to build dispatcher: %w", err)
	}

	return browse.Run(cmd.Context(), dispatcher, logChan)
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
