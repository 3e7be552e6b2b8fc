package document

import (
	"regexp"
	"strings"
)

// Alignment is paragraph text alignment.
type Alignment int

const (
	AlignUnset Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

// RunStyle holds character formatting for a run. Nil pointers mean
// "inherit/unset" rather than false/zero.
type RunStyle struct {
	Bold        *bool
	Italic      *bool
	Underline   *bool
	FontSize    *float64 // points
	FontName    string
	ColorRGB    string // hex, e.g. "FF0000"
	AllCaps     *bool
	SmallCaps   *bool
	Strike      *bool
	Superscript *bool
	Subscript   *bool
}

// TextRun is a span of text with consistent formatting.
type TextRun struct {
	Text       string
	Style      RunStyle
	FootnoteID int // 0 = no footnote reference
}

// Format holds paragraph-level formatting. Pointer fields mean unset.
type Format struct {
	Alignment       Alignment
	RightToLeft     bool
	LeftIndent      *float64
	RightIndent     *float64
	FirstLineIndent *float64
	SpaceBefore     *float64
	SpaceAfter      *float64
	LineSpacing     *float64
	KeepTogether    *bool
	KeepWithNext    *bool
	PageBreakBefore *bool
}

// SectionTag is the typed per-paragraph classification state handlers used
// to stash in an open metadata map. Boundary paragraphs carry the section
// name they open; body paragraphs carry the enclosing section and their
// section-local index.
type SectionTag struct {
	Boundary bool   // paragraph opens a new section
	Marker   bool   // ornament/marker line, skipped on output
	Name     string // section name this paragraph opens (boundary only)
	Year     string // year attached to the section opening (boundary only)
	Current  string // enclosing section name
	Index    int    // 1-based index within the enclosing section
}

// Paragraph is one block of text.
type Paragraph struct {
	Runs         []TextRun
	Format       Format
	StyleName    string // source style label, informative only
	HeadingLevel HeadingLevel
	Section      SectionTag

	// Source-container observations recorded at read time so handlers
	// never have to reopen the source file.
	NumberedList bool
	HasTextbox   bool
	HasDrawing   bool
}

// Text concatenates all runs.
func (p *Paragraph) Text() string {
	if len(p.Runs) == 1 {
		return p.Runs[0].Text
	}
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// SetText replaces all runs with a single unstyled run.
func (p *Paragraph) SetText(text string) {
	p.Runs = []TextRun{{Text: text}}
}

// AddRun appends a styled run.
func (p *Paragraph) AddRun(text string, style RunStyle) *TextRun {
	p.Runs = append(p.Runs, TextRun{Text: text, Style: style})
	return &p.Runs[len(p.Runs)-1]
}

// IsEmpty reports whether the paragraph has no non-whitespace text.
func (p *Paragraph) IsEmpty() bool {
	return strings.TrimSpace(p.Text()) == ""
}

// IsListItem reports whether the source style marks this as a list entry.
func (p *Paragraph) IsListItem() bool {
	return strings.Contains(strings.ToLower(p.StyleName), "list")
}

var simanPrefix = regexp.MustCompile(`^([א-ת]{1,4})\.\s*`)

// IsNumberedListItem distinguishes real numbered entries from the generic
// "List Paragraph" style, which Word applies to headings too. A paragraph
// whose text opens with a gematria numeral and a period followed by content
// (e.g. "יט. אמר...") counts as numbered even without numbering properties.
func (p *Paragraph) IsNumberedListItem() bool {
	if p.NumberedList {
		return true
	}
	if strings.EqualFold(strings.TrimSpace(p.StyleName), "list paragraph") {
		return false
	}
	text := strings.TrimSpace(p.Text())
	if m := simanPrefix.FindStringSubmatch(text); m != nil {
		if gematriaWord(m[1]) && strings.TrimSpace(text[len(m[0]):]) != "" {
			return true
		}
	}
	return false
}

// gematriaWord mirrors hebrew.IsValidGematriaNumber for the denylist-free
// cases the paragraph check needs; kept local to avoid an import cycle.
func gematriaWord(s string) bool {
	n := len([]rune(s))
	return n >= 1 && n <= 4
}

// Bold reports whether any run with explicit bold formatting is bold.
func (p *Paragraph) Bold() bool {
	for _, r := range p.Runs {
		if r.Style.Bold != nil && *r.Style.Bold {
			return true
		}
	}
	return false
}

// Underlined reports whether any run with explicit underline is underlined.
func (p *Paragraph) Underlined() bool {
	for _, r := range p.Runs {
		if r.Style.Underline != nil && *r.Style.Underline {
			return true
		}
	}
	return false
}

// HasFontSize reports whether at least one run's size is within 0.5pt of pt.
func (p *Paragraph) HasFontSize(pt float64) bool {
	for _, r := range p.Runs {
		if r.Style.FontSize != nil && abs(*r.Style.FontSize-pt) < 0.5 {
			return true
		}
	}
	return false
}

// UniformFontSize returns the single font size shared by every non-empty
// run, or 0 when sizes are absent or mixed.
func (p *Paragraph) UniformFontSize() float64 {
	size := 0.0
	for _, r := range p.Runs {
		if strings.TrimSpace(r.Text) == "" || r.Style.FontSize == nil {
			continue
		}
		if size == 0 {
			size = *r.Style.FontSize
			continue
		}
		if *r.Style.FontSize != size {
			return 0
		}
	}
	return size
}

// AllBold reports whether every non-empty run is explicitly bold.
func (p *Paragraph) AllBold() bool {
	seen := false
	for _, r := range p.Runs {
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		seen = true
		if r.Style.Bold == nil || !*r.Style.Bold {
			return false
		}
	}
	return seen
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
