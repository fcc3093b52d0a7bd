package cmd

import (
	"github.com/spf13/cobra"

	"mcp-tavily/internal/capability"
	"mcp-tavily/internal/cli"
)

var contextMaxTokens int

// contextCmd represents the context command
var contextCmd = &cobra.Command{
	Use:   "context <topic>",
	Short: "Gather web context for RAG applications",
	Long: `Search the web for a topic and print content trimmed to a token budget.

The output is a JSON array of {url, content} sources, sized for direct use
as retrieval-augmented generation context. Token estimation follows the
Tavily heuristic of four characters per token.`,
	Args: cobra.ExactArgs(1),
	RunE: runContext,
}

func runContext(cmd *cobra.Command, args []string) error {
	executor, err := cli.NewToolExecutor(cli.ExecutorOptions{Debug: rootDebug})
	if err != nil {
		return err
	}

	callArgs := map[string]interface{}{
		"query": args[0],
	}
	if cmd.Flags().Changed("max-tokens") {
		callArgs["max_tokens"] = contextMaxTokens
	}

	return executor.Execute(cmd.Context(), capability.ToolGetContext, callArgs)
}

func init() {
	rootCmd.AddCommand(contextCmd)

	contextCmd.Flags().IntVar(&contextMaxTokens, "max-tokens", 4000, "Token budget for the returned context (100-8000)")
}
