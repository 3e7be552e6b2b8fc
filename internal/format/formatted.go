package format

import (
	"strings"

	"github.com/mendelk/sofer/internal/document"
)

// Formatted passes through files whose heading structure was already set,
// either a previous run's output (filenames carrying "-formatted") or a
// source whose paragraph styles mapped onto heading levels at read time.
// Document-level headings are lifted from the first paragraph of each
// level.
type Formatted struct{}

func (*Formatted) Name() string  { return "formatted" }
func (*Formatted) Priority() int { return 20 }

func (*Formatted) Match(doc *document.Document, ctx *Context) bool {
	if ctx.Mode == "formatted" {
		return true
	}
	if strings.Contains(ctx.InputPath, "-formatted") {
		return true
	}
	for _, p := range doc.Paragraphs {
		if p.HeadingLevel != document.Normal {
			return true
		}
	}
	return false
}

func (*Formatted) Process(doc *document.Document, ctx *Context) error {
	var h1, h2, h3, h4 string
	for _, p := range doc.Paragraphs {
		text := strings.TrimSpace(p.Text())
		switch p.HeadingLevel {
		case document.Heading1:
			if h1 == "" {
				h1 = text
			}
		case document.Heading2:
			if h2 == "" {
				h2 = text
			}
		case document.Heading3:
			if h3 == "" {
				h3 = text
			}
		case document.Heading4:
			if h4 == "" {
				h4 = text
			}
		}
	}

	if ctx.Book != "" {
		h1 = ctx.Book
	}
	if ctx.Sefer != "" {
		h2 = ctx.Sefer
	}
	if ctx.Parshah != "" {
		h3 = ctx.Parshah
	}
	if ctx.Filename != "" {
		h4 = ctx.Filename
	}

	doc.SetHeadings(h1, h2, h3, h4)
	return nil
}
