package format

import (
	"regexp"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

// Bare gematria numeral line, up to three letters. Unlike shortNumeralRe
// this excludes the final forms that never open a numeral.
var gematriaLineRe = regexp.MustCompile(`^[אבגדהוזחטיכלמנןסעפצקרשת]{1,3}$`)

// Pound structures a document around # markers. A # followed by a full
// sentence makes that sentence H3 and demotes prior-detected H3s to H4
// until the next #; a # followed by a bare numeral leaves the detected H3s
// alone. The # lines themselves are removed.
type Pound struct{}

func (*Pound) Name() string  { return "pound" }
func (*Pound) Priority() int { return 15 }

func (*Pound) Match(_ *document.Document, ctx *Context) bool {
	return ctx.Mode == "pound"
}

func (p *Pound) Process(doc *document.Document, ctx *Context) error {
	doc.SetHeadings(ctx.Book, ctx.Sefer, "", "")

	p.detectH3Candidates(doc)
	p.applyPoundStructure(doc)

	// Page markings share the trailing-# shape with section markers, so
	// they are stripped only after the # pass has consumed the markers.
	hebrew.RemovePageMarkings(doc)
	return nil
}

// detectH3Candidates runs the marker-then-heading pre-pass so the pound
// walk has H3s to demote.
func (*Pound) detectH3Candidates(doc *document.Document) {
	for i := 0; i < len(doc.Paragraphs)-1; i++ {
		text := strings.TrimSpace(doc.Paragraphs[i].Text())
		if text == "" {
			continue
		}
		if !isSpecialMarkerLine(text) && !gematriaLineRe.MatchString(text) {
			continue
		}
		next := doc.Paragraphs[i+1]
		if !next.IsEmpty() && next.HeadingLevel == document.Normal {
			next.HeadingLevel = document.Heading3
		}
	}
}

// isSentence distinguishes heading text from a bare marker such as a
// numeral: multiple words, or a single token long enough to read as prose.
func isSentence(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if shortNumeralRe.MatchString(text) {
		return false
	}
	n := len([]rune(text))
	if n < 10 && !strings.Contains(text, " ") {
		return false
	}
	return strings.Contains(text, " ") || n > 15
}

func (p *Pound) applyPoundStructure(doc *document.Document) {
	i := 0
	for i < len(doc.Paragraphs) {
		para := doc.Paragraphs[i]
		text := strings.TrimSpace(para.Text())

		if !strings.Contains(text, "#") {
			i++
			continue
		}

		if strings.HasSuffix(text, "#") {
			// Trailing #: the next paragraph decides the section shape.
			para.SetText("")
			if i+1 < len(doc.Paragraphs) && isSentence(strings.TrimSpace(doc.Paragraphs[i+1].Text())) {
				doc.Paragraphs[i+1].HeadingLevel = document.Heading3
				i = p.demoteUntilNextPound(doc, i+2)
				continue
			}
			i++
			continue
		}

		parts := strings.SplitN(text, "#", 2)
		after := strings.TrimSpace(parts[1])
		if after == "" {
			para.SetText("")
			i++
			continue
		}

		para.SetText(after)
		para.HeadingLevel = document.Heading3
		if isSentence(after) {
			i = p.demoteUntilNextPound(doc, i+1)
			continue
		}
		i++
	}

	// Strip leftover # characters and drop the emptied marker paragraphs.
	for _, para := range doc.Paragraphs {
		txt := para.Text()
		if strings.Contains(txt, "#") {
			para.SetText(strings.ReplaceAll(txt, "#", ""))
		}
	}
	dropEmptyParagraphs(doc)
}

// demoteUntilNextPound downgrades every H3 to H4 starting at index from
// until the next paragraph containing #, returning the stopping index.
func (*Pound) demoteUntilNextPound(doc *document.Document, from int) int {
	i := from
	for i < len(doc.Paragraphs) {
		para := doc.Paragraphs[i]
		text := strings.TrimSpace(para.Text())

		if strings.Contains(text, "#") {
			break
		}
		if text == "" {
			i++
			continue
		}
		if para.HeadingLevel == document.Heading3 {
			para.HeadingLevel = document.Heading4
		}
		i++
	}
	return i
}
