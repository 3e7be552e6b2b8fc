package format

import (
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

// H2Only structures documents whose only headings are one-line sentences,
// all at H2 under a single H1. Chosen explicitly, never auto-detected.
type H2Only struct{}

func (*H2Only) Name() string  { return "h2-only" }
func (*H2Only) Priority() int { return 15 }

func (*H2Only) Match(_ *document.Document, ctx *Context) bool {
	return ctx.Mode == "h2-only"
}

func (h *H2Only) Process(doc *document.Document, ctx *Context) error {
	book := ctx.Book
	if book == "" {
		book = ctx.Filename
	}

	hebrew.RemovePageMarkings(doc)
	doc.SetHeadings(book, "", "", "")

	for _, p := range doc.Paragraphs {
		text := strings.TrimSpace(p.Text())
		if text == "" || p.HeadingLevel != document.Normal {
			continue
		}
		if h.isSentenceLine(text) {
			p.HeadingLevel = document.Heading2
		}
	}
	return nil
}

// isSentenceLine accepts a single-line Hebrew sentence of sane heading
// length. A lone word with no punctuation is body text, not a heading.
func (*H2Only) isSentenceLine(text string) bool {
	if strings.Contains(text, "\n") || !hebrew.ContainsHebrew(text) {
		return false
	}
	n := len([]rune(text))
	if n < 5 || n >= 200 {
		return false
	}
	if !strings.Contains(text, " ") && !strings.ContainsAny(text, ".,;:!?") {
		return false
	}
	switch text {
	case "h", "q", "Y", "*", "***", "* * *":
		return false
	}
	return true
}
