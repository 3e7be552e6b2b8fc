// Package format implements the pluggable document-structure handlers.
//
// Each handler is a stateless strategy with a name, a priority, a match
// predicate and a processing pass that assigns the document's heading
// hierarchy. Handlers live in a Registry built once at startup; detection
// walks the handlers from highest to lowest priority and picks the first
// whose Match returns true. The standard handler always matches, so
// detection never comes up empty.
package format

import (
	"fmt"
	"sort"

	"github.com/mendelk/sofer/internal/document"
)

// Handler classifies and structures one document. Implementations are
// stateless and safe to share across files.
type Handler interface {
	// Name returns the unique handler identifier used for explicit
	// selection (e.g. "standard", "daf", "multi-parshah").
	Name() string

	// Priority orders auto-detection. Higher priorities are checked
	// first; the standard fallback sits at 0.
	Priority() int

	// Match reports whether the document appears to use this structure.
	// It must not perform I/O.
	Match(doc *document.Document, ctx *Context) bool

	// Process mutates the document in place: sets the document-level
	// heading hierarchy, tags paragraph heading levels and removes
	// formatting artifacts.
	Process(doc *document.Document, ctx *Context) error
}

// Context carries the per-file inputs handlers read during detection and
// processing. It is built fresh for every file and never persisted.
type Context struct {
	Book      string // H1 override / collection name
	Sefer     string // H2 override
	Parshah   string // section name for single-section files
	Filename  string // source filename stem, no extension
	InputPath string // full source path, for folder-derived headings
	Year      string // Hebrew year, when known up front

	// Mode is the explicit handler selection; empty means auto-detect.
	Mode string

	// Letter / siman fields.
	Category  string
	Recipient string
	Date      string
	Section   string
	Siman     string
	Seif      string

	SkipParshahPrefix bool
	UseFilenameForH4  bool
	FilterHeaders     bool
	SpecialHeading    bool
	FontSizeHeading   bool

	// Font-size thresholds for the folder-title handler.
	H3FontSize  float64
	H4FontSize  float64
	RequireBold bool
}

// NewContext returns a context with the processing defaults: header
// filtering on, folder-title thresholds at 21pt/17pt bold.
func NewContext() *Context {
	return &Context{
		FilterHeaders: true,
		H3FontSize:    21.0,
		H4FontSize:    17.0,
		RequireBold:   true,
	}
}

// Registry is an immutable handler catalog. Build it once with NewRegistry
// and pass it to the processor; it is safe for concurrent use.
type Registry struct {
	byName  map[string]Handler
	ordered []Handler
}

// NewRegistry builds a registry from the given handlers. A handler
// registered later under an already-present name replaces the earlier one.
// Detection order is priority descending, ties broken by name ascending so
// selection does not depend on argument order.
func NewRegistry(handlers ...Handler) *Registry {
	byName := make(map[string]Handler, len(handlers))
	for _, h := range handlers {
		byName[h.Name()] = h
	}

	ordered := make([]Handler, 0, len(byName))
	for _, h := range byName {
		ordered = append(ordered, h)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Priority() != ordered[j].Priority() {
			return ordered[i].Priority() > ordered[j].Priority()
		}
		return ordered[i].Name() < ordered[j].Name()
	})

	return &Registry{byName: byName, ordered: ordered}
}

// NewDefaultRegistry builds the full built-in handler catalog.
func NewDefaultRegistry() *Registry {
	return NewRegistry(
		&Standard{},
		&SpecialHeading{},
		&FolderTitle{},
		&Pound{},
		&Minimal{},
		&H2Only{},
		&PerekH2{},
		&PerekH3{},
		&FolderFilename{},
		&HausBachur{},
		&Formatted{},
		&Letter{},
		&Siman{},
		&Daf{},
		&MultiParshah{},
	)
}

// Get returns the handler registered under name.
func (r *Registry) Get(name string) (Handler, error) {
	h, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return h, nil
}

// Detect returns the highest-priority handler whose Match accepts the
// document. The standard handler's always-true predicate guarantees a
// result as long as it is registered.
func (r *Registry) Detect(doc *document.Document, ctx *Context) (Handler, error) {
	for _, h := range r.ordered {
		if h.Match(doc, ctx) {
			return h, nil
		}
	}
	return nil, fmt.Errorf("no format handler matched document")
}

// Handlers returns all registered handlers in detection order.
func (r *Registry) Handlers() []Handler {
	out := make([]Handler, len(r.ordered))
	copy(out, r.ordered)
	return out
}
