package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mendelk/sofer/internal/config"
	"github.com/mendelk/sofer/version"
)

var (
	cfgFile string
	verbose bool

	cfgManager *config.Manager
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sofer",
	Short: "Hebrew document reformatting and chunk-export pipeline",
	Long: `Sofer reads Hebrew source documents (docx, legacy txt exports),
detects their structural format, assigns the heading hierarchy and
exports chunked JSON or restructured docx.

The pipeline includes:
  - Readers for docx containers and transcoded DOS text exports
  - A priority-ordered catalog of format handlers (parshah, letter,
    siman, daf, multi-parshah and more)
  - Chunked JSON export with schema validation
  - Batch and watch modes for whole directories`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.sofer/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)

		mgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfgManager = mgr
		return nil
	}

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
