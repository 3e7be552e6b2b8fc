package format

import (
	"regexp"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

var shortNumeralRe = regexp.MustCompile(`^[\x{0590}-\x{05FF}]{1,2}$`)

// SpecialHeading promotes the line following a marker pattern to H3. The
// marker shapes are the same word-with-period / dash-framed / bracketed
// forms the multi-parshah special mode uses, plus a bare one- or two-letter
// numeral line.
type SpecialHeading struct{}

func (*SpecialHeading) Name() string  { return "special-heading" }
func (*SpecialHeading) Priority() int { return 10 }

func (*SpecialHeading) Match(_ *document.Document, ctx *Context) bool {
	return ctx.Mode == "special-heading"
}

func (s *SpecialHeading) Process(doc *document.Document, ctx *Context) error {
	hebrew.RemovePageMarkings(doc)
	doc.SetHeadings(ctx.Book, ctx.Sefer, "", "")

	for i := 0; i < len(doc.Paragraphs)-1; i++ {
		text := strings.TrimSpace(doc.Paragraphs[i].Text())
		if text == "" {
			continue
		}
		if !isSpecialMarkerLine(text) && !shortNumeralRe.MatchString(text) {
			continue
		}

		next := doc.Paragraphs[i+1]
		if !next.IsEmpty() {
			next.HeadingLevel = document.Heading3
		}
	}
	return nil
}
