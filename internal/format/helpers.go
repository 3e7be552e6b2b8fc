package format

import (
	"regexp"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

var (
	atMarkerRe   = regexp.MustCompile(`@[0-9]+`)
	dafMarkerRe  = regexp.MustCompile(`דף\s+[א-ת]+`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// filterHeaders drops legacy title lines. Inside the leading header block
// every empty or header-looking paragraph is removed until substantive
// content starts; after that only header-looking lines are dropped.
func filterHeaders(doc *document.Document) {
	inHeader := true
	var kept []*document.Paragraph

	for _, p := range doc.Paragraphs {
		txt := strings.TrimSpace(p.Text())

		if inHeader {
			switch {
			case txt != "" && hebrew.ShouldStartContent(txt):
				inHeader = false
				kept = append(kept, p)
			case txt != "" && hebrew.IsOldHeader(txt):
				// dropped
			case txt == "":
				// dropped
			default:
				kept = append(kept, p)
			}
			continue
		}

		if txt != "" && hebrew.IsOldHeader(txt) {
			continue
		}
		kept = append(kept, p)
	}

	doc.Paragraphs = kept
}

// cleanAtMarkers removes typesetting markers like @99 from every paragraph
// and collapses the whitespace they leave behind.
func cleanAtMarkers(doc *document.Document) {
	for _, p := range doc.Paragraphs {
		txt := p.Text()
		if !strings.Contains(txt, "@") {
			continue
		}
		cleaned := atMarkerRe.ReplaceAllString(txt, "")
		if cleaned != txt {
			p.SetText(strings.TrimSpace(multiSpaceRe.ReplaceAllString(cleaned, " ")))
		}
	}
}

// stripDafMarkers removes "דף <letters>" page references in place without
// touching the paragraph sequence.
func stripDafMarkers(doc *document.Document) {
	for _, p := range doc.Paragraphs {
		txt := p.Text()
		if !dafMarkerRe.MatchString(txt) {
			continue
		}
		cleaned := dafMarkerRe.ReplaceAllString(txt, "")
		p.SetText(strings.TrimSpace(multiSpaceRe.ReplaceAllString(cleaned, " ")))
	}
}

// isShortSentence reports whether text is a single-line Hebrew phrase under
// 60 characters, the shared heading-candidate shape.
func isShortSentence(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || strings.Contains(text, "\n") {
		return false
	}
	if !hebrew.ContainsHebrew(text) {
		return false
	}
	return len([]rune(text)) < 60
}

// isAsteriskMarker reports whether text is a bare asterisk ornament.
func isAsteriskMarker(text string) bool {
	return strings.TrimSpace(text) == "*"
}

// dropEmptyParagraphs removes paragraphs whose text trims to nothing.
func dropEmptyParagraphs(doc *document.Document) {
	var kept []*document.Paragraph
	for _, p := range doc.Paragraphs {
		if !p.IsEmpty() {
			kept = append(kept, p)
		}
	}
	doc.Paragraphs = kept
}
