package format

import (
	"regexp"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

var (
	perekLineRe = regexp.MustCompile(`^פרק\s+.*$`)
	// Image captions such as "תמונה 143 א – ב" or "{תמונה 58}".
	tmunaRe = regexp.MustCompile(`^\{?\s*תמונה\s*(?:המשך\s+)?([א-ת]{1,3}|\d{1,3})\s*(?:[א-ת'\s–-]+(?:\{?\s*תמונה\s*[א-ת\d\s–-]+\}?)?)*\s*\}?$`)
)

// PerekH2 marks "פרק" lines as H2 and bold short sentences as H3. Chosen
// explicitly, never auto-detected.
type PerekH2 struct{}

func (*PerekH2) Name() string  { return "perek-h2" }
func (*PerekH2) Priority() int { return 15 }

func (*PerekH2) Match(_ *document.Document, ctx *Context) bool {
	return ctx.Mode == "perek-h2"
}

func (h *PerekH2) Process(doc *document.Document, ctx *Context) error {
	hebrew.RemovePageMarkings(doc)
	removeImageCaptions(doc)

	// H2 comes from the פרק lines inside the document, not from context.
	doc.SetHeadings(ctx.Book, "", "", "")

	h.applyHeadings(doc)
	return nil
}

func removeImageCaptions(doc *document.Document) {
	var kept []*document.Paragraph
	for _, p := range doc.Paragraphs {
		if tmunaRe.MatchString(strings.TrimSpace(p.Text())) {
			continue
		}
		kept = append(kept, p)
	}
	doc.Paragraphs = kept
}

var atNoiseRe = regexp.MustCompile(`@\d+`)

// followedByContent reports whether the paragraph after index i is a
// substantive body paragraph rather than another heading candidate.
// requireNotBold additionally rejects a bold follower.
func followedByContent(doc *document.Document, i int, requireNotBold bool) bool {
	if i+1 >= len(doc.Paragraphs) {
		return false
	}
	next := doc.Paragraphs[i+1]
	text := strings.TrimSpace(atNoiseRe.ReplaceAllString(next.Text(), ""))
	if len([]rune(text)) <= 3 {
		return false
	}
	if strings.HasPrefix(text, "פרק") || isAsteriskMarker(text) {
		return false
	}
	if next.HeadingLevel != document.Normal {
		return false
	}
	if requireNotBold && next.Bold() {
		return false
	}
	return true
}

func prevBlocksHeading(doc *document.Document, i int) bool {
	if i == 0 {
		return false
	}
	prev := doc.Paragraphs[i-1]
	if prev.HeadingLevel == document.Heading3 {
		return true
	}
	return isAsteriskMarker(prev.Text())
}

func (h *PerekH2) applyHeadings(doc *document.Document) {
	for i := 0; i < len(doc.Paragraphs); i++ {
		para := doc.Paragraphs[i]
		text := strings.TrimSpace(para.Text())
		if text == "" {
			continue
		}

		if perekLineRe.MatchString(text) {
			para.HeadingLevel = document.Heading2
			continue
		}

		if para.HeadingLevel != document.Normal {
			continue
		}

		// Bold plus underline is a strong H3 signal; two in a row are one
		// heading split across lines.
		if para.Bold() && para.Underlined() && isShortSentence(text) {
			if i+1 < len(doc.Paragraphs) {
				next := doc.Paragraphs[i+1]
				nextText := strings.TrimSpace(next.Text())
				if next.HeadingLevel == document.Normal && next.Bold() &&
					next.Underlined() && isShortSentence(nextText) {
					para.SetText(text + " " + nextText)
					para.HeadingLevel = document.Heading3
					doc.Paragraphs = append(doc.Paragraphs[:i+1], doc.Paragraphs[i+2:]...)
					continue
				}
			}
			para.HeadingLevel = document.Heading3
			continue
		}

		// Plain bold short sentence: H3 only in heading position.
		if para.Bold() && isShortSentence(text) &&
			!strings.HasPrefix(text, "*") &&
			!prevBlocksHeading(doc, i) &&
			followedByContent(doc, i, true) {
			para.HeadingLevel = document.Heading3
		}
	}
}
