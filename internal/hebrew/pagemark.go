package hebrew

import (
	"regexp"
	"strings"

	"github.com/mendelk/sofer/internal/document"
)

var pageMarkingRes = []*regexp.Regexp{
	regexp.MustCompile(`^\(\(.+\)\)$`),
	regexp.MustCompile(`^#[א-ת]+$`),
	regexp.MustCompile(`^[א-ת]+#$`),
}

// IsPageMarking reports whether text is a scanner page artifact: a
// double-parenthesized token or a pound-prefixed/suffixed Hebrew word.
func IsPageMarking(text string) bool {
	for _, re := range pageMarkingRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// RemovePageMarkings strips page-artifact paragraphs from doc. A marking
// sandwiched between two ordinary content paragraphs split one sentence
// across a page break, so the neighbors are joined back together with a
// single space. Next to a heading, an empty paragraph, or another
// marking, the artifact is dropped without merging.
func RemovePageMarkings(doc *document.Document) {
	var out []*document.Paragraph
	skip := false
	for i, p := range doc.Paragraphs {
		if skip {
			skip = false
			continue
		}
		txt := strings.TrimSpace(p.Text())
		if !IsPageMarking(txt) {
			out = append(out, p)
			continue
		}
		// Marking removed. Merge neighbors when it split a sentence.
		if len(out) > 0 && i+1 < len(doc.Paragraphs) {
			prev := out[len(out)-1]
			next := doc.Paragraphs[i+1]
			if shouldMergeAround(prev, next) {
				prev.Runs = append(prev.Runs, document.TextRun{Text: " "})
				prev.Runs = append(prev.Runs, next.Runs...)
				skip = true
			}
		}
	}
	doc.Paragraphs = out
}

func shouldMergeAround(prev, next *document.Paragraph) bool {
	if prev.HeadingLevel != document.Normal || next.HeadingLevel != document.Normal {
		return false
	}
	prevTxt := strings.TrimSpace(prev.Text())
	nextTxt := strings.TrimSpace(next.Text())
	if prevTxt == "" || nextTxt == "" {
		return false
	}
	return !IsPageMarking(prevTxt) && !IsPageMarking(nextTxt)
}
