package format

import (
	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

// Standard is the default parshah-organized structure used by most Torah
// commentaries:
//
//	H1 book, H2 sefer, H3 "פרשת <name>", H4 year or filename.
//
// It always matches, so it is the auto-detection fallback at priority 0.
type Standard struct{}

func (*Standard) Name() string  { return "standard" }
func (*Standard) Priority() int { return 0 }

func (*Standard) Match(*document.Document, *Context) bool { return true }

func (*Standard) Process(doc *document.Document, ctx *Context) error {
	hebrew.RemovePageMarkings(doc)

	var h4 string
	switch {
	case ctx.UseFilenameForH4:
		h4 = ctx.Filename
	case ctx.Filename != "" && ctx.Year == "":
		h4 = hebrew.ExtractYear(ctx.Filename)
		if h4 == "" {
			h4 = hebrew.ExtractHeading4Info(ctx.Filename)
		}
		if h4 == "" {
			h4 = ctx.Filename
		}
	case ctx.Year != "":
		h4 = ctx.Year
	default:
		h4 = ctx.Filename
	}

	var h3 string
	if ctx.Parshah != "" {
		if ctx.SkipParshahPrefix {
			h3 = ctx.Parshah
		} else {
			h3 = "פרשת " + ctx.Parshah
		}
	}

	doc.SetHeadings(ctx.Book, ctx.Sefer, h3, h4)

	if ctx.FilterHeaders {
		filterHeaders(doc)
	}
	return nil
}
