package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mcp-tavily",
		Long:  `All software has versions. This is mcp-tavily's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mcp-tavily version %s\n", rootCmd.Version)
		},
	}
}
