// Package reader parses source containers into canonical documents. Each
// Reader owns one container format and is selected by file extension; RTF
// and IDML sources would plug in here as additional readers.
package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mendelk/sofer/internal/document"
)

// Reader parses one source container format into a Document.
type Reader interface {
	// Extensions lists the file extensions this reader accepts,
	// lower-case with the leading dot.
	Extensions() []string

	// Read parses the file at path. It fails when the file has no
	// readable content.
	Read(path string) (*document.Document, error)
}

// Registry maps file extensions to readers. Build once, safe for
// concurrent use.
type Registry struct {
	byExt map[string]Reader
}

// NewRegistry builds a registry from the given readers. A later reader
// claiming an already-registered extension replaces the earlier one.
func NewRegistry(readers ...Reader) *Registry {
	byExt := make(map[string]Reader)
	for _, r := range readers {
		for _, ext := range r.Extensions() {
			byExt[strings.ToLower(ext)] = r
		}
	}
	return &Registry{byExt: byExt}
}

// NewDefaultRegistry registers the built-in docx and txt readers.
func NewDefaultRegistry() *Registry {
	return NewRegistry(&Docx{}, &Text{})
}

// For returns the reader registered for the path's extension.
func (r *Registry) For(path string) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	rd, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("no reader for extension %q", ext)
	}
	return rd, nil
}

// Read parses path with the reader registered for its extension.
func (r *Registry) Read(path string) (*document.Document, error) {
	rd, err := r.For(path)
	if err != nil {
		return nil, err
	}
	return rd.Read(path)
}

// Extensions returns every registered extension, for directory walks.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		out = append(out, ext)
	}
	return out
}
