package main

import (
	"fmt"

	"github.com/philipparndt/goshape/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return printJSON(struct {
				Version   string `json:"version"`
				GitCommit string `json:"git_commit"`
				BuildDate string `json:"build_date"`
			}{version.Version, version.GitCommit, version.BuildDate})
		}
		fmt.Printf("goshape %s\n", version.GetFullVersion())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
