// Package pipeline orchestrates the read → classify → process → write flow
// for single files, directory batches and watched directories.
package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mendelk/sofer/internal/format"
	"github.com/mendelk/sofer/internal/reader"
	"github.com/mendelk/sofer/internal/writer"
)

// Processor wires the three registries together. Build once and reuse; it
// holds no per-file state.
type Processor struct {
	readers *reader.Registry
	formats *format.Registry
	writers *writer.Registry
	logger  *slog.Logger
}

// Config configures a Processor. Nil fields fall back to the default
// registries and slog.Default().
type Config struct {
	Readers *reader.Registry
	Formats *format.Registry
	Writers *writer.Registry
	Logger  *slog.Logger
}

// New creates a processor.
func New(cfg Config) *Processor {
	if cfg.Readers == nil {
		cfg.Readers = reader.NewDefaultRegistry()
	}
	if cfg.Formats == nil {
		cfg.Formats = format.NewDefaultRegistry()
	}
	if cfg.Writers == nil {
		cfg.Writers = writer.NewDefaultRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Processor{
		readers: cfg.Readers,
		formats: cfg.Formats,
		writers: cfg.Writers,
		logger:  cfg.Logger,
	}
}

// Request is one processing instruction: a source file plus the handler
// context and output settings that apply to it. The Context is copied per
// file, so a Request can serve as a batch template.
type Request struct {
	Input  string // source file path
	OutDir string // output directory; empty means alongside the source
	Output string // writer name; empty means "json"

	Context *format.Context // handler inputs; nil means defaults
	Writer  writer.Options
}

// Formats returns the handler catalog, for listing.
func (p *Processor) Formats() *format.Registry { return p.formats }

// Readers returns the reader registry, for extension checks.
func (p *Processor) Readers() *reader.Registry { return p.readers }

// validate resolves the writer and, when an explicit format is requested,
// the handler. Both must fail before any file is read.
func (p *Processor) validate(req Request) (writer.Writer, error) {
	name := req.Output
	if name == "" {
		name = "json"
	}
	w, err := p.writers.Get(name)
	if err != nil {
		return nil, err
	}
	if req.Context != nil && req.Context.Mode != "" {
		if _, err := p.formats.Get(req.Context.Mode); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// fileContext builds the per-file handler context from the request
// template: a fresh copy with the filename fields filled in.
func fileContext(req Request) *format.Context {
	var ctx format.Context
	if req.Context != nil {
		ctx = *req.Context
	} else {
		ctx = *format.NewContext()
	}

	base := filepath.Base(req.Input)
	ctx.Filename = strings.TrimSuffix(base, filepath.Ext(base))
	ctx.InputPath = req.Input
	return &ctx
}

// ProcessFile runs one file through the full pipeline and returns the
// output path.
func (p *Processor) ProcessFile(req Request) (string, error) {
	w, err := p.validate(req)
	if err != nil {
		return "", err
	}

	doc, err := p.readers.Read(req.Input)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", req.Input, err)
	}
	if len(doc.Paragraphs) == 0 {
		return "", fmt.Errorf("no paragraphs in %s", req.Input)
	}

	ctx := fileContext(req)

	var handler format.Handler
	if ctx.Mode != "" {
		handler, err = p.formats.Get(ctx.Mode)
	} else {
		handler, err = p.formats.Detect(doc, ctx)
	}
	if err != nil {
		return "", err
	}

	if err := handler.Process(doc, ctx); err != nil {
		return "", fmt.Errorf("handler %s failed on %s: %w", handler.Name(), req.Input, err)
	}

	outPath := outputPath(req, w.Extension())
	if err := w.Write(doc, outPath, req.Writer); err != nil {
		return "", err
	}

	p.logger.Info("processed file",
		"input", req.Input,
		"output", outPath,
		"handler", handler.Name(),
		"paragraphs", len(doc.Paragraphs),
		"footnotes", len(doc.Footnotes))
	return outPath, nil
}

// outputPath derives the output file path: the source stem with the
// writer's extension, in OutDir when set, else next to the source.
func outputPath(req Request, ext string) string {
	base := filepath.Base(req.Input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	dir := req.OutDir
	if dir == "" {
		dir = filepath.Dir(req.Input)
	}
	return filepath.Join(dir, stem+ext)
}
