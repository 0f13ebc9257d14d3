package cmd

import (
	"github.com/deploymenttheory/go-ntfslink/pkg/app/inspect"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the registered reparse tags",
	Long: `List every reparse tag in the registry with its numeric value and the
Microsoft, name surrogate and high latency bits.

Examples:
  ntfslink tags
  ntfslink tags -o json`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect.FormatTags(cmd.OutOrStdout(), inspect.ListTags(), GetOutputFormat())
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
