package cmd

import (
	"github.com/spf13/cobra"

	"mcp-tavily/internal/capability"
	"mcp-tavily/internal/cli"
)

// answerCmd represents the answer command
var answerCmd = &cobra.Command{
	Use:   "answer <question>",
	Short: "Ask a question and print a direct answer",
	Long: `Run a Tavily Q&A search and print the synthesized answer.

The answer is generated from an advanced-depth web search. Like the MCP
tool tavily_qna_search, the output carries a provenance note marking the
answer as generated from web sources.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnswer,
}

func runAnswer(cmd *cobra.Command, args []string) error {
	executor, err := cli.NewToolExecutor(cli.ExecutorOptions{Debug: rootDebug})
	if err != nil {
		return err
	}

	return executor.Execute(cmd.Context(), capability.ToolQNASearch, map[string]interface{}{
		"query": args[0],
	})
}

func init() {
	rootCmd.AddCommand(answerCmd)
}
