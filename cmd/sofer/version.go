package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mendelk/sofer/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sofer %s\n", version.GitRelease)
		if version.GitCommit != "" {
			fmt.Printf("  Commit: %s\n", version.GitCommit)
		}
	},
}
