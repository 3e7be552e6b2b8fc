package format

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

var (
	leadingJunkRe  = regexp.MustCompile(`^[\s.()\[\]{}]+`)
	trailingJunkRe = regexp.MustCompile(`[.()\[\]{}\s]+$`)
	junkRunRe      = regexp.MustCompile(`[.()\[\]{}]{3,}`)
)

// FolderTitle derives H1/H2 from the containing folder hierarchy and
// detects H3/H4 inside the document by font size: 21pt bold for titles,
// 17pt bold for subtitles (thresholds configurable via the context).
// Chosen explicitly, never auto-detected.
type FolderTitle struct{}

func (*FolderTitle) Name() string  { return "folder-title" }
func (*FolderTitle) Priority() int { return 12 }

func (*FolderTitle) Match(_ *document.Document, ctx *Context) bool {
	return ctx.Mode == "folder-title"
}

func (f *FolderTitle) Process(doc *document.Document, ctx *Context) error {
	h1 := ctx.Book
	h2 := ""
	if ctx.InputPath != "" {
		parent := filepath.Dir(ctx.InputPath)
		h2 = filepath.Base(parent)
		if h1 == "" {
			h1 = filepath.Base(filepath.Dir(parent))
		}
	}

	// Headings are identified before page markings are removed so the
	// merge pass cannot swallow a heading line.
	f.detectByFontSize(doc, ctx.H3FontSize, ctx.H4FontSize, ctx.RequireBold)
	f.combineConsecutive(doc)
	hebrew.RemovePageMarkings(doc)

	h3 := ""
	for _, p := range doc.Paragraphs {
		if p.HeadingLevel == document.Heading3 {
			h3 = cleanHeadingText(strings.TrimSpace(p.Text()))
			p.SetText(h3)
			break
		}
	}

	doc.SetHeadings(h1, h2, h3, "")
	return nil
}

func (*FolderTitle) detectByFontSize(doc *document.Document, h3Size, h4Size float64, requireBold bool) {
	for _, p := range doc.Paragraphs {
		if p.IsEmpty() {
			continue
		}
		size := p.UniformFontSize()
		if size == 0 {
			continue
		}
		if requireBold && !p.AllBold() {
			continue
		}
		switch {
		case absDiff(size, h3Size) <= 0.5:
			p.HeadingLevel = document.Heading3
		case absDiff(size, h4Size) <= 0.5:
			p.HeadingLevel = document.Heading4
		}
	}
}

// combineConsecutive joins runs of adjacent same-level H3/H4 paragraphs
// into one heading line.
func (*FolderTitle) combineConsecutive(doc *document.Document) {
	var kept []*document.Paragraph
	for i := 0; i < len(doc.Paragraphs); {
		p := doc.Paragraphs[i]
		if p.HeadingLevel != document.Heading3 && p.HeadingLevel != document.Heading4 {
			kept = append(kept, p)
			i++
			continue
		}

		parts := []string{strings.TrimSpace(p.Text())}
		j := i + 1
		for j < len(doc.Paragraphs) && doc.Paragraphs[j].HeadingLevel == p.HeadingLevel {
			if t := strings.TrimSpace(doc.Paragraphs[j].Text()); t != "" {
				parts = append(parts, t)
			}
			j++
		}
		if len(parts) > 1 {
			p.SetText(strings.Join(parts, " "))
		}
		kept = append(kept, p)
		i = j
	}
	doc.Paragraphs = kept
}

// cleanHeadingText strips shape-extraction artifacts: stray dots and
// bracket characters at the edges or in runs of three or more.
func cleanHeadingText(text string) string {
	text = leadingJunkRe.ReplaceAllString(text, "")
	text = trailingJunkRe.ReplaceAllString(text, "")
	text = junkRunRe.ReplaceAllString(text, "")
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
