package format

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

var (
	simanFilenameRe = regexp.MustCompile(`^siman(\d+)`)
	simanHebrewRe   = regexp.MustCompile(`^סימן`)
	simanHeadingRe  = regexp.MustCompile(`^סימן\s+[א-ת]+`)
)

// Siman handles halachic works organized by siman number: H1 book, H2
// section, H3 "סימן <gematria>", H4 seif.
type Siman struct{}

func (*Siman) Name() string  { return "siman" }
func (*Siman) Priority() int { return 45 }

func (*Siman) Match(doc *document.Document, ctx *Context) bool {
	if ctx.Mode == "siman" {
		return true
	}

	stem := strings.ToLower(ctx.Filename)
	if simanFilenameRe.MatchString(stem) || simanHebrewRe.MatchString(ctx.Filename) {
		return true
	}

	limit := len(doc.Paragraphs)
	if limit > 20 {
		limit = 20
	}
	for _, p := range doc.Paragraphs[:limit] {
		if simanHeadingRe.MatchString(strings.TrimSpace(p.Text())) {
			return true
		}
	}
	return false
}

func (*Siman) Process(doc *document.Document, ctx *Context) error {
	hebrew.RemovePageMarkings(doc)

	siman := ctx.Siman
	if siman == "" && ctx.Filename != "" {
		if m := simanFilenameRe.FindStringSubmatch(strings.ToLower(ctx.Filename)); m != nil {
			n, _ := strconv.Atoi(m[1])
			siman = "סימן " + hebrew.NumberToGematria(n)
		}
	}

	doc.SetHeadings(ctx.Book, ctx.Section, siman, ctx.Seif)
	return nil
}
