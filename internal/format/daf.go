package format

import (
	"regexp"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

var dafFilenameRes = []*regexp.Regexp{
	regexp.MustCompile(`^perek\d+`),
	regexp.MustCompile(`^(?:chelek|חלק)\d+`),
	regexp.MustCompile(`^me?koros`),
	regexp.MustCompile(`^hakdomo`),
}

// Daf is the Talmud-style structure: H1 book, H2 tractate folder, H3 perek
// and H4 chelek pulled out of the filename stem.
type Daf struct{}

func (*Daf) Name() string  { return "daf" }
func (*Daf) Priority() int { return 50 }

func (*Daf) Match(_ *document.Document, ctx *Context) bool {
	if ctx.Mode == "daf" {
		return true
	}
	stem := strings.ToLower(ctx.Filename)
	for _, re := range dafFilenameRes {
		if re.MatchString(stem) {
			return true
		}
	}
	return false
}

func (*Daf) Process(doc *document.Document, ctx *Context) error {
	hebrew.RemovePageMarkings(doc)

	h3, h4 := hebrew.ExtractDafHeadings(ctx.Filename)
	doc.SetHeadings(ctx.Book, ctx.Sefer, h3, h4)

	if ctx.FilterHeaders {
		filterHeaders(doc)
	}
	return nil
}
