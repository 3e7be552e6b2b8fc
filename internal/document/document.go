// Package document defines the format-agnostic in-memory representation of a
// parsed Hebrew document. Readers populate a Document, exactly one format
// handler classifies it, and a writer consumes it.
package document

import "strings"

// HeadingLevel identifies the heading rank of a paragraph or document title.
type HeadingLevel int

const (
	Normal HeadingLevel = iota
	Heading1
	Heading2
	Heading3
	Heading4
)

func (h HeadingLevel) String() string {
	switch h {
	case Heading1:
		return "h1"
	case Heading2:
		return "h2"
	case Heading3:
		return "h3"
	case Heading4:
		return "h4"
	default:
		return "normal"
	}
}

// Metadata carries document-level descriptive fields plus an open extension
// map for handler-specific flags (e.g. "is_multi_parshah").
type Metadata struct {
	Book       string // H1
	Sefer      string // H2
	Parshah    string // H3
	Subsection string // H4
	Year       string
	Date       string
	SourceFile string
	Extra      map[string]any
}

// Document is the root aggregate for one source file.
//
// Lifecycle: created and populated by a reader, mutated in place by exactly
// one format handler invocation, consumed by a writer. Not shared across
// goroutines.
type Document struct {
	Paragraphs []*Paragraph
	Footnotes  []*Footnote
	Metadata   Metadata

	// Document-level title hierarchy, separate from body paragraphs.
	Heading1 string
	Heading2 string
	Heading3 string
	Heading4 string
}

// New returns an empty document.
func New() *Document {
	return &Document{Metadata: Metadata{Extra: map[string]any{}}}
}

// AddParagraph appends a paragraph with the given text and heading level.
func (d *Document) AddParagraph(text string, level HeadingLevel) *Paragraph {
	p := &Paragraph{HeadingLevel: level}
	if text != "" {
		p.AddRun(text, RunStyle{})
	}
	d.Paragraphs = append(d.Paragraphs, p)
	return p
}

// BodyParagraphs returns all paragraphs without a heading level.
func (d *Document) BodyParagraphs() []*Paragraph {
	var out []*Paragraph
	for _, p := range d.Paragraphs {
		if p.HeadingLevel == Normal {
			out = append(out, p)
		}
	}
	return out
}

// Headings returns all paragraphs tagged with a heading level.
func (d *Document) Headings() []*Paragraph {
	var out []*Paragraph
	for _, p := range d.Paragraphs {
		if p.HeadingLevel != Normal {
			out = append(out, p)
		}
	}
	return out
}

// TextContent joins all non-empty body paragraphs with blank lines.
func (d *Document) TextContent() string {
	var parts []string
	for _, p := range d.BodyParagraphs() {
		if !p.IsEmpty() {
			parts = append(parts, p.Text())
		}
	}
	return strings.Join(parts, "\n\n")
}

// SetHeadings sets the document-level title hierarchy and mirrors the values
// into the metadata fields. Empty strings clear the corresponding heading.
func (d *Document) SetHeadings(h1, h2, h3, h4 string) {
	d.Heading1 = h1
	d.Heading2 = h2
	d.Heading3 = h3
	d.Heading4 = h4

	if h1 != "" {
		d.Metadata.Book = h1
	}
	if h2 != "" {
		d.Metadata.Sefer = h2
	}
	if h3 != "" {
		d.Metadata.Parshah = h3
	}
	if h4 != "" {
		d.Metadata.Subsection = h4
	}
}

// SetExtra records a handler-specific document flag.
func (d *Document) SetExtra(key string, value any) {
	if d.Metadata.Extra == nil {
		d.Metadata.Extra = map[string]any{}
	}
	d.Metadata.Extra[key] = value
}

// ExtraBool reads a boolean flag from the extension map.
func (d *Document) ExtraBool(key string) bool {
	v, ok := d.Metadata.Extra[key].(bool)
	return ok && v
}

// AddFootnote appends a footnote, assigning the next sequential id when the
// footnote has none.
func (d *Document) AddFootnote(fn *Footnote) *Footnote {
	if fn.ID == 0 {
		fn.ID = len(d.Footnotes) + 1
	}
	d.Footnotes = append(d.Footnotes, fn)
	return fn
}

// FootnoteByID returns the footnote with the given id, or nil.
func (d *Document) FootnoteByID(id int) *Footnote {
	for _, fn := range d.Footnotes {
		if fn.ID == id {
			return fn
		}
	}
	return nil
}

// Footnote is owned by exactly one Document and referenced from runs by id.
type Footnote struct {
	ID         int
	OriginalID int // id in the source container, for round-tripping
	Paragraphs []*Paragraph
}

// Text joins the footnote's non-empty paragraphs with newlines.
func (f *Footnote) Text() string {
	var parts []string
	for _, p := range f.Paragraphs {
		if !p.IsEmpty() {
			parts = append(parts, p.Text())
		}
	}
	return strings.Join(parts, "\n")
}
