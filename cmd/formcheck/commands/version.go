package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/formcheck/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, build date and Go version of formcheck.`,
	Run: func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), cmd.Info())
	},
}
