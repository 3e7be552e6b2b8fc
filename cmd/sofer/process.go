package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mendelk/sofer/internal/pipeline"
	"github.com/mendelk/sofer/internal/writer"
)

var (
	processBook    string
	processSefer   string
	processParshah string
	processFormat  string
	processOutput  string
	processOutDir  string
	processChunk   string

	processSkipPrefix     bool
	processFilenameForH4  bool
	processSpecialHeading bool
	processFontHeading    bool
	processKeepHeaders    bool

	processWorkers   int
	processRecursive bool
)

var processCmd = &cobra.Command{
	Use:   "process <file-or-directory>",
	Short: "Process source documents into chunked exports",
	Long: `Process a single file or every readable file in a directory.

The format handler is auto-detected unless --format names one explicitly.
Directory runs go through a bounded worker pool; per-file failures are
reported at the end without stopping the run.

Examples:
  sofer process drushim/noach.docx --book "ליקוטי שיחות" --parshah נח
  sofer process drushim/ --out exports/ --recursive
  sofer process maamar.docx --format pound --chunking h3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := buildRequest(cmd)

		info, err := os.Stat(args[0])
		if err != nil {
			return err
		}

		p := pipeline.New(pipeline.Config{Logger: logger})

		if !info.IsDir() {
			req.Input = args[0]
			out, err := p.ProcessFile(req)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		cfg := cfgManager.Get()
		workers := processWorkers
		if workers <= 0 {
			workers = cfg.Batch.Workers
		}
		recursive := processRecursive || cfg.Batch.Recursive

		res, err := p.ProcessDir(cmd.Context(), args[0], req, pipeline.BatchConfig{
			Workers:   workers,
			Recursive: recursive,
		})
		if err != nil {
			return err
		}

		for _, out := range res.Processed {
			fmt.Println(out)
		}
		if len(res.Failed) > 0 {
			for _, fe := range res.Failed {
				fmt.Fprintf(os.Stderr, "failed: %v\n", fe)
			}
			return fmt.Errorf("%d of %d files failed", len(res.Failed), len(res.Failed)+len(res.Processed))
		}
		return nil
	},
}

// buildRequest merges the configured defaults with the process flags.
// Flags win when set.
func buildRequest(cmd *cobra.Command) pipeline.Request {
	cfg := cfgManager.Get()
	ctx := cfg.ToContext()

	if processBook != "" {
		ctx.Book = processBook
	}
	if processSefer != "" {
		ctx.Sefer = processSefer
	}
	ctx.Parshah = processParshah
	ctx.Mode = processFormat
	ctx.SkipParshahPrefix = processSkipPrefix
	ctx.UseFilenameForH4 = processFilenameForH4
	ctx.SpecialHeading = processSpecialHeading
	ctx.FontSizeHeading = processFontHeading
	if cmd.Flags().Changed("keep-headers") {
		ctx.FilterHeaders = !processKeepHeaders
	}

	output := processOutput
	if output == "" {
		output = cfg.Defaults.Output
	}
	chunking := processChunk
	if chunking == "" {
		chunking = cfg.Defaults.Chunking
	}
	if chunking == "" {
		chunking = writer.StrategyParagraph
	}

	return pipeline.Request{
		OutDir:  processOutDir,
		Output:  output,
		Context: ctx,
		Writer: writer.Options{
			Strategy:      chunking,
			FilterHeaders: ctx.FilterHeaders,
		},
	}
}

func init() {
	f := processCmd.Flags()
	f.StringVar(&processBook, "book", "", "H1 collection title")
	f.StringVar(&processSefer, "sefer", "", "H2 volume title")
	f.StringVar(&processParshah, "parshah", "", "section name for single-section files")
	f.StringVar(&processFormat, "format", "", "format handler name (default: auto-detect)")
	f.StringVar(&processOutput, "output", "", "output format: json or docx")
	f.StringVar(&processOutDir, "out", "", "output directory (default: alongside the source)")
	f.StringVar(&processChunk, "chunking", "", "chunking strategy: paragraph, h3, h4 or asterisk")
	f.BoolVar(&processSkipPrefix, "skip-parshah-prefix", false, "use the bare section name as H3")
	f.BoolVar(&processFilenameForH4, "use-filename-for-h4", false, "use the filename stem as H4")
	f.BoolVar(&processSpecialHeading, "special-heading", false, "treat marker lines as section headings")
	f.BoolVar(&processFontHeading, "font-size-heading", false, "derive section headings from 14pt runs")
	f.BoolVar(&processKeepHeaders, "keep-headers", false, "keep legacy title lines in the output")
	f.IntVar(&processWorkers, "workers", 0, "concurrent files in a directory run (0 = all CPUs)")
	f.BoolVar(&processRecursive, "recursive", false, "descend into subdirectories")
}
