package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"javagen/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show javagen build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "javagen %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(out, "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(out, "built:  %s\n", version.BuildDate)
		}
		return nil
	},
}
