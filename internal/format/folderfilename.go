package format

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

var (
	separatorLineRe  = regexp.MustCompile(`^[-=_~.]{3,}$`)
	footnoteParenRe  = regexp.MustCompile(`^\([א-ת]\)`)
	footnoteLetterRe = regexp.MustCompile(`^[א-ת]\.\s`)
)

// FolderFilename takes H1 from the containing folder and H2 from the
// filename, then promotes one-line sentences in the body to H3, merging
// adjacent candidates into a single heading. The footnote block at the end
// of the file is left untouched. Chosen explicitly, never auto-detected.
type FolderFilename struct{}

func (*FolderFilename) Name() string  { return "folder-filename" }
func (*FolderFilename) Priority() int { return 15 }

func (*FolderFilename) Match(_ *document.Document, ctx *Context) bool {
	return ctx.Mode == "folder-filename"
}

func (f *FolderFilename) Process(doc *document.Document, ctx *Context) error {
	book := ctx.Book
	if book == "" && ctx.InputPath != "" {
		book = filepath.Base(filepath.Dir(ctx.InputPath))
	}
	h2 := ctx.Filename
	if h2 == "" && ctx.InputPath != "" {
		base := filepath.Base(ctx.InputPath)
		h2 = strings.TrimSuffix(base, filepath.Ext(base))
	}

	hebrew.RemovePageMarkings(doc)
	cleanAtMarkers(doc)
	f.cleanDafMarkersMerging(doc)

	doc.SetHeadings(book, h2, "", "")

	// Old Word-style H1/H2 tags become H3 so they merge with detected
	// heading candidates.
	for _, p := range doc.Paragraphs {
		if p.HeadingLevel == document.Heading1 || p.HeadingLevel == document.Heading2 {
			p.HeadingLevel = document.Heading3
		}
	}

	footnoteStart := f.detectFootnotesStart(doc)
	f.detectH3Sentences(doc, footnoteStart)
	f.removeDuplicateHeadings(doc, book, h2)
	return nil
}

// cleanDafMarkersMerging removes "דף <letters>" page references. A דף
// paragraph standing between two plain content paragraphs split a sentence,
// so those neighbors are merged; otherwise the marker is stripped in place.
func (*FolderFilename) cleanDafMarkersMerging(doc *document.Document) {
	var kept []*document.Paragraph
	i := 0
	for i < len(doc.Paragraphs) {
		p := doc.Paragraphs[i]
		text := strings.TrimSpace(p.Text())

		if !dafMarkerRe.MatchString(text) {
			kept = append(kept, p)
			i++
			continue
		}

		if len(kept) > 0 && i+1 < len(doc.Paragraphs) {
			prev := kept[len(kept)-1]
			next := doc.Paragraphs[i+1]
			prevText := strings.TrimSpace(prev.Text())
			nextText := strings.TrimSpace(next.Text())

			mergeable := prevText != "" && nextText != "" &&
				prev.HeadingLevel == document.Normal &&
				next.HeadingLevel == document.Normal &&
				!prev.IsNumberedListItem() && !next.IsNumberedListItem()
			if mergeable {
				prev.SetText(prevText + " " + nextText)
				i += 2
				continue
			}
		}

		cleaned := strings.TrimSpace(multiSpaceRe.ReplaceAllString(dafMarkerRe.ReplaceAllString(text, ""), " "))
		if cleaned != "" {
			p.SetText(cleaned)
			kept = append(kept, p)
		}
		i++
	}
	doc.Paragraphs = kept
}

// detectFootnotesStart returns the index of the first footnote paragraph,
// or len(paragraphs) when the document has no footnote block. Footnotes
// start after a horizontal separator line, or at the first paragraph
// opening with a letter marker like "(א)" or "א. ".
func (*FolderFilename) detectFootnotesStart(doc *document.Document) int {
	for i, p := range doc.Paragraphs {
		text := strings.TrimSpace(p.Text())

		if separatorLineRe.MatchString(text) && i+1 < len(doc.Paragraphs) {
			return i + 1
		}
		if footnoteParenRe.MatchString(text) {
			return i
		}
		if footnoteLetterRe.MatchString(text) && len([]rune(text)) < 100 {
			return i
		}
	}
	return len(doc.Paragraphs)
}

// headingCandidate reports whether text looks like a heading line: a
// single-line Hebrew phrase of plausible length, or any short centered
// line.
func (*FolderFilename) headingCandidate(p *document.Paragraph) bool {
	text := strings.TrimSpace(p.Text())
	if text == "" || strings.Contains(text, "\n") {
		return false
	}
	n := len([]rune(text))

	if p.Format.Alignment == document.AlignCenter && n >= 3 && n < 200 {
		return true
	}
	if !hebrew.ContainsHebrew(text) {
		return false
	}
	// More than one sentence is body text.
	if strings.Count(text, ".")+strings.Count(text, "!")+strings.Count(text, "?") > 1 {
		return false
	}
	switch text {
	case "h", "q", "Y", "*", "***", "* * *":
		return false
	}
	return n >= 3 && n < 150
}

// detectH3Sentences promotes heading candidates before footnoteStart to
// H3, folding consecutive candidates into the first one.
func (f *FolderFilename) detectH3Sentences(doc *document.Document, footnoteStart int) {
	var kept []*document.Paragraph
	i := 0
	for i < len(doc.Paragraphs) {
		p := doc.Paragraphs[i]

		if i >= footnoteStart {
			kept = append(kept, p)
			i++
			continue
		}

		text := strings.TrimSpace(p.Text())
		if text == "" || text == `בס"ד` || p.IsNumberedListItem() {
			kept = append(kept, p)
			i++
			continue
		}

		isH3 := p.HeadingLevel == document.Heading3
		if p.HeadingLevel != document.Normal && !isH3 {
			kept = append(kept, p)
			i++
			continue
		}

		if !isH3 && !f.headingCandidate(p) {
			kept = append(kept, p)
			i++
			continue
		}

		// Fold into a preceding H3 when adjacent.
		if len(kept) > 0 && kept[len(kept)-1].HeadingLevel == document.Heading3 {
			prev := kept[len(kept)-1]
			prev.SetText(strings.TrimSpace(prev.Text()) + " " + text)
			i++
			// Keep folding while candidates continue.
			for i < len(doc.Paragraphs) && i < footnoteStart {
				next := doc.Paragraphs[i]
				nextText := strings.TrimSpace(next.Text())
				if nextText == "" || next.IsNumberedListItem() {
					break
				}
				if next.HeadingLevel != document.Heading3 && !f.headingCandidate(next) {
					break
				}
				prev.SetText(strings.TrimSpace(prev.Text()) + " " + nextText)
				i++
			}
			continue
		}

		p.HeadingLevel = document.Heading3
		kept = append(kept, p)
		i++
	}
	doc.Paragraphs = kept
}

// removeDuplicateHeadings drops body paragraphs that repeat the H1 or H2
// text verbatim; tagged heading paragraphs are kept.
func (*FolderFilename) removeDuplicateHeadings(doc *document.Document, h1, h2 string) {
	if h1 == "" && h2 == "" {
		return
	}
	var kept []*document.Paragraph
	for _, p := range doc.Paragraphs {
		if p.HeadingLevel == document.Normal {
			text := strings.TrimSpace(p.Text())
			if (h1 != "" && text == h1) || (h2 != "" && text == h2) {
				continue
			}
		}
		kept = append(kept, p)
	}
	doc.Paragraphs = kept
}
