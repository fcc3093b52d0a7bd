package cmd

import (
	"github.com/spf13/cobra"

	"mcp-tavily/internal/capability"
	"mcp-tavily/internal/cli"
)

var (
	searchMaxResults     int
	searchIncludeDomains []string
	searchExcludeDomains []string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the web and print formatted results",
	Long: `Run a Tavily web search and print the formatted results.

This drives the same dispatch path as the MCP tool tavily_search, so the
output is exactly what an AI assistant would receive.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	executor, err := cli.NewToolExecutor(cli.ExecutorOptions{Debug: rootDebug})
	if err != nil {
		return err
	}

	callArgs := map[string]interface{}{
		"query": args[0],
	}
	// Only forward flags the user actually set, so descriptor defaults apply.
	if cmd.Flags().Changed("max-results") {
		callArgs["max_results"] = searchMaxResults
	}
	if len(searchIncludeDomains) > 0 {
		callArgs["include_domains"] = searchIncludeDomains
	}
	if len(searchExcludeDomains) > 0 {
		callArgs["exclude_domains"] = searchExcludeDomains
	}

	return executor.Execute(cmd.Context(), capability.ToolSearch, callArgs)
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchMaxResults, "max-results", 5, "Maximum number of results to return (1-20)")
	searchCmd.Flags().StringSliceVar(&searchIncludeDomains, "include-domains", nil, "Only include results from these domains")
	searchCmd.Flags().StringSliceVar(&searchExcludeDomains, "exclude-domains", nil, "Exclude results from these domains")
}
