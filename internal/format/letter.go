package format

import (
	"regexp"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

var letterOpeningRes = []*regexp.Regexp{
	regexp.MustCompile(`^ב["']ה`),
	regexp.MustCompile(`^כבוד`),
	regexp.MustCompile(`^לכבוד`),
	regexp.MustCompile(`^שלום`),
	regexp.MustCompile(`^ידידי`),
	regexp.MustCompile(`הנדון:`),
}

var (
	recipientRe = regexp.MustCompile(`^(?:לכבוד|כבוד)\s+(.+?)(?:\s+שליט״א)?$`)
	civilDateRe = regexp.MustCompile(`(\d{1,2}[./]\d{1,2}[./]\d{2,4})`)
	hebDateRe   = regexp.MustCompile(`([א-ת]+'?\s+[א-ת]+\s+תש[א-ת"']+)`)
)

// Letter handles correspondence: H1 collection, H2 category, H3 recipient,
// H4 date. Recipient and date are pulled from the opening paragraphs when
// not supplied.
type Letter struct{}

func (*Letter) Name() string  { return "letter" }
func (*Letter) Priority() int { return 40 }

func (*Letter) Match(doc *document.Document, ctx *Context) bool {
	if ctx.Mode == "letter" {
		return true
	}
	if len(doc.Paragraphs) == 0 {
		return false
	}

	checked := 0
	for _, p := range doc.Paragraphs {
		text := strings.TrimSpace(p.Text())
		if text == "" {
			continue
		}
		for _, re := range letterOpeningRes {
			if re.MatchString(text) {
				return true
			}
		}
		checked++
		if checked >= 5 {
			break
		}
	}
	return false
}

func (l *Letter) Process(doc *document.Document, ctx *Context) error {
	hebrew.RemovePageMarkings(doc)

	category := ctx.Category
	if category == "" {
		category = "מכתבים"
	}

	recipient, date := ctx.Recipient, ctx.Date
	if recipient == "" || date == "" {
		r, d := extractLetterInfo(doc)
		if recipient == "" {
			recipient = r
		}
		if date == "" {
			date = d
		}
	}

	doc.SetHeadings(ctx.Book, category, recipient, date)
	return nil
}

// extractLetterInfo scans the opening paragraphs for a recipient line and a
// civil or Hebrew date.
func extractLetterInfo(doc *document.Document) (recipient, date string) {
	limit := len(doc.Paragraphs)
	if limit > 10 {
		limit = 10
	}
	for _, p := range doc.Paragraphs[:limit] {
		text := strings.TrimSpace(p.Text())

		if recipient == "" {
			if m := recipientRe.FindStringSubmatch(text); m != nil {
				recipient = m[1]
			}
		}
		if date == "" {
			if m := civilDateRe.FindStringSubmatch(text); m != nil {
				date = m[1]
			} else if m := hebDateRe.FindStringSubmatch(text); m != nil {
				date = m[1]
			}
		}
	}
	return recipient, date
}
