package format

import (
	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

// Minimal only cleans marker noise: @ codes, דף page references and page
// markings. Existing H1/H2 paragraph tags are flattened back to body text;
// nothing else is restructured. Chosen explicitly, never auto-detected.
type Minimal struct{}

func (*Minimal) Name() string  { return "minimal" }
func (*Minimal) Priority() int { return 15 }

func (*Minimal) Match(_ *document.Document, ctx *Context) bool {
	return ctx.Mode == "minimal"
}

func (*Minimal) Process(doc *document.Document, _ *Context) error {
	hebrew.RemovePageMarkings(doc)
	cleanAtMarkers(doc)
	stripDafMarkers(doc)

	for _, p := range doc.Paragraphs {
		if p.HeadingLevel == document.Heading1 || p.HeadingLevel == document.Heading2 {
			p.HeadingLevel = document.Normal
		}
	}
	return nil
}
