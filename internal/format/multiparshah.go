package format

import (
	"regexp"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

// Ornament lines that precede a section heading and are skipped on output.
var parshahMarkers = map[string]struct{}{
	"*": {}, "ה": {}, "***": {}, "* * *": {}, "": {}, "h": {},
}

// Marker-line shapes for the special-heading sub-mode: a Hebrew word with a
// trailing period, a dash-framed word, or a word paired with a bracketed
// numeral.
var (
	markerWordDotRe    = regexp.MustCompile(`^[\x{0590}-\x{05FF}]+\.$`)
	markerFramedRe     = regexp.MustCompile(`^[-–—]+\s*[\x{0590}-\x{05FF}]+\s*[-–—]+$`)
	markerWordBracket  = regexp.MustCompile(`^\s*\.*\s*[\x{0590}-\x{05FF}]+\s*[-–—]+\s*\[[\x{0590}-\x{05FF}]+\]\s*$`)
	markerBracketWord  = regexp.MustCompile(`^\s*\[[\x{0590}-\x{05FF}]+\]\s*[-–—]+\s*[\x{0590}-\x{05FF}]+\s*\.*\s*$`)
	headingFontSizePts = 14.0
)

// MultiParshah handles a single file holding many sections, each opened by
// a parshah boundary line. Paragraphs are tagged with their enclosing
// section name and a section-local index; the boundary and marker lines
// themselves are tagged for the writer to skip.
//
// Two alternate boundary sub-modes exist: marker-line-then-heading
// (ctx.SpecialHeading) and same-font-size heading lines
// (ctx.FontSizeHeading).
type MultiParshah struct{}

func (*MultiParshah) Name() string  { return "multi-parshah" }
func (*MultiParshah) Priority() int { return 60 }

func (*MultiParshah) Match(doc *document.Document, ctx *Context) bool {
	if ctx.Mode == "multi-parshah" {
		return true
	}

	boundaries := 0
	for _, p := range doc.Paragraphs {
		if b := hebrew.DetectParshahBoundary(p.Text(), "", false); b.IsBoundary {
			boundaries++
		}
	}
	if boundaries >= 2 {
		return true
	}

	listItems := 0
	for _, p := range doc.Paragraphs {
		if p.IsListItem() {
			listItems++
		}
	}
	return listItems >= 3
}

func (m *MultiParshah) Process(doc *document.Document, ctx *Context) error {
	hebrew.RemovePageMarkings(doc)

	doc.SetHeadings(ctx.Book, ctx.Sefer, "", "")
	doc.SetExtra("is_multi_parshah", true)

	switch {
	case ctx.FontSizeHeading:
		m.markFontSizeSections(doc)
	case ctx.SpecialHeading:
		m.markSpecialHeadingSections(doc)
	default:
		m.markBoundarySections(doc)
	}
	return nil
}

// markBoundarySections walks the paragraphs tagging boundary lines and
// giving body paragraphs a running index within their section.
func (*MultiParshah) markBoundarySections(doc *document.Document) {
	current := ""
	prevText := ""
	var prevPara *document.Paragraph
	index := 0

	for i, p := range doc.Paragraphs {
		text := strings.TrimSpace(p.Text())

		if b := hebrew.DetectParshahBoundary(text, prevText, false); b.IsBoundary {
			current = b.Name
			index = 0
			p.Section.Boundary = true
			p.Section.Name = b.Name
			p.Section.Year = b.Year

			if prevPara != nil {
				if _, marker := parshahMarkers[prevText]; marker {
					prevPara.Section.Marker = true
				}
			}
		} else if !p.Section.Marker {
			index++
		}

		p.Section.Current = current
		p.Section.Index = index

		prevText = text
		prevPara = doc.Paragraphs[i]
	}
}

func isSpecialMarkerLine(text string) bool {
	return markerWordDotRe.MatchString(text) ||
		markerFramedRe.MatchString(text) ||
		markerWordBracket.MatchString(text) ||
		markerBracketWord.MatchString(text)
}

// markSpecialHeadingSections: a marker line announces that the next
// paragraph is the section heading; a short line after the heading is a
// subtitle folded into the section name.
func (*MultiParshah) markSpecialHeadingSections(doc *document.Document) {
	current := ""
	index := 0

	for i := 0; i < len(doc.Paragraphs); i++ {
		p := doc.Paragraphs[i]
		text := strings.TrimSpace(p.Text())

		if text != "" && isSpecialMarkerLine(text) {
			p.Section.Marker = true
			p.Section.Current = current

			if i+1 >= len(doc.Paragraphs) {
				continue
			}

			heading := doc.Paragraphs[i+1]
			name := strings.TrimSpace(heading.Text())

			consumed := 0
			if i+2 < len(doc.Paragraphs) {
				subtitle := doc.Paragraphs[i+2]
				subText := strings.TrimSpace(subtitle.Text())
				if subText != "" && !hebrew.ShouldStartContent(subText) {
					name += " " + subText
					subtitle.Section.Marker = true
					consumed = 1
				}
			}

			current = name
			index = 0
			heading.Section.Boundary = true
			heading.Section.Name = name
			heading.Section.Current = current
			heading.Section.Index = index
			if consumed == 1 {
				doc.Paragraphs[i+2].Section.Current = current
			}

			i += 1 + consumed
			continue
		}

		if !p.Section.Marker {
			index++
		}
		p.Section.Current = current
		p.Section.Index = index
	}
}

func allRunsSized(p *document.Paragraph, pt float64) bool {
	seen := false
	for _, r := range p.Runs {
		if r.Style.FontSize == nil {
			continue
		}
		seen = true
		if *r.Style.FontSize != pt {
			return false
		}
	}
	return seen
}

// markFontSizeSections treats standalone 14pt lines as section headings; a
// 14pt line directly followed by another forms a two-line heading.
func (*MultiParshah) markFontSizeSections(doc *document.Document) {
	current := ""
	index := 0

	for i := 0; i < len(doc.Paragraphs); i++ {
		p := doc.Paragraphs[i]
		text := strings.TrimSpace(p.Text())

		if text == "" || !allRunsSized(p, headingFontSizePts) {
			if !p.Section.Marker {
				index++
			}
			p.Section.Current = current
			p.Section.Index = index
			continue
		}

		name := text
		if i+1 < len(doc.Paragraphs) {
			next := doc.Paragraphs[i+1]
			nextText := strings.TrimSpace(next.Text())
			if nextText != "" && allRunsSized(next, headingFontSizePts) {
				name = text + "\n" + nextText
				next.Section.Marker = true
				next.Section.Current = name
				i++
			}
		}

		current = name
		index = 0
		p.Section.Boundary = true
		p.Section.Name = name
		p.Section.Current = current
		p.Section.Index = index
	}
}
