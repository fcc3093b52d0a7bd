package cmd

import (
	"github.com/spf13/cobra"

	"mcp-tavily/internal/capability"
	"mcp-tavily/internal/cli"
)

var extractIncludeImages bool

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <url>...",
	Short: "Extract page content from URLs",
	Long: `Extract the readable content of up to 20 web pages and print a preview
of each along with its full content length. URLs that could not be
fetched are listed with the reason.`,
	Args: cobra.RangeArgs(1, 20),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	executor, err := cli.NewToolExecutor(cli.ExecutorOptions{Debug: rootDebug})
	if err != nil {
		return err
	}

	callArgs := map[string]interface{}{
		"urls": args,
	}
	if cmd.Flags().Changed("include-images") {
		callArgs["include_images"] = extractIncludeImages
	}

	return executor.Execute(cmd.Context(), capability.ToolExtractContent, callArgs)
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().BoolVar(&extractIncludeImages, "include-images", false, "Report how many images each page carries")
}
