package cmd

import (
	"github.com/spf13/cobra"

	"mcp-tavily/internal/capability"
	"mcp-tavily/internal/cli"
)

var capabilitiesOutputFormat string

// capabilitiesCmd represents the capabilities command
var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "List the MCP tools this server exposes",
	Long: `List the MCP tools this server exposes, with their parameters.

In table output, required parameters are marked with an asterisk. The JSON
and YAML formats print the full schemas including types, defaults, bounds
and item limits.`,
	Args: cobra.NoArgs,
	RunE: runCapabilities,
}

func runCapabilities(cmd *cobra.Command, args []string) error {
	registry, err := capability.NewDefaultRegistry()
	if err != nil {
		return err
	}

	return cli.RenderCapabilities(cmd.OutOrStdout(), cli.OutputFormat(capabilitiesOutputFormat), registry.List())
}

func init() {
	rootCmd.AddCommand(capabilitiesCmd)

	capabilitiesCmd.Flags().StringVarP(&capabilitiesOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
}
