package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mendelk/sofer/internal/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the format handler catalog",
	Long: `List every registered format handler with its detection priority.

Handlers are tried from highest to lowest priority during auto-detection;
the first match wins. Any name here can be passed to process --format.`,
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPRIORITY")
		for _, h := range format.NewDefaultRegistry().Handlers() {
			fmt.Fprintf(w, "%s\t%d\n", h.Name(), h.Priority())
		}
		w.Flush()
	},
}
