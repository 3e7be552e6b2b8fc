package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mendelk/sofer/internal/writer"
)

var validateCmd = &cobra.Command{
	Use:   "validate <export.json> [more...]",
	Short: "Check JSON exports against the export schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := writer.ValidateExport(data); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failed++
				continue
			}
			fmt.Printf("%s: ok\n", path)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed validation", failed, len(args))
		}
		return nil
	},
}
