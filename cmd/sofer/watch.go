package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/mendelk/sofer/internal/pipeline"
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Process files as they appear in a directory",
	Long: `Watch a directory and process each new readable file as it arrives.
Files still being copied are retried briefly before being reported as
failed. Runs until interrupted.

Flags mirror process; each arriving file is handled as if passed to it.

Example:
  sofer watch inbox/ --book "ליקוטי שיחות" --out exports/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := buildRequest(cmd)

		p := pipeline.New(pipeline.Config{Logger: logger})
		err := p.Watch(cmd.Context(), args[0], req)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	watchCmd.Flags().AddFlagSet(processCmd.Flags())
}
