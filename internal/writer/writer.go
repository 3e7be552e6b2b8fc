// Package writer serializes processed documents. Each Writer owns one
// output format and is selected by name through the registry.
package writer

import (
	"fmt"

	"github.com/mendelk/sofer/internal/document"
)

// Options carries the per-run output settings.
type Options struct {
	// Strategy selects the chunking strategy for chunked formats.
	// Empty means paragraph chunking.
	Strategy string

	// FilterHeaders drops legacy title lines during emission.
	FilterHeaders bool

	// Date overrides the export date (YYYY-MM-DD). Empty means today.
	Date string
}

// DefaultOptions returns the emission defaults: header filtering on,
// paragraph chunking.
func DefaultOptions() Options {
	return Options{Strategy: StrategyParagraph, FilterHeaders: true}
}

// Writer serializes one output format.
type Writer interface {
	// Name is the format identifier used for selection (e.g. "json").
	Name() string

	// Extension is the output file extension, with the leading dot.
	Extension() string

	// Write serializes doc to path, creating parent directories.
	Write(doc *document.Document, path string, opts Options) error
}

// Registry maps output format names to writers.
type Registry struct {
	byName map[string]Writer
}

// NewRegistry builds a registry. Re-registration under the same name
// replaces the earlier writer.
func NewRegistry(writers ...Writer) *Registry {
	byName := make(map[string]Writer, len(writers))
	for _, w := range writers {
		byName[w.Name()] = w
	}
	return &Registry{byName: byName}
}

// NewDefaultRegistry registers the built-in json and docx writers.
func NewDefaultRegistry() *Registry {
	return NewRegistry(&JSON{}, &Docx{})
}

// Get returns the writer registered under name.
func (r *Registry) Get(name string) (Writer, error) {
	w, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return w, nil
}

// Names returns the registered format names.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	return out
}
