package writer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

// Chunk is one export unit: a title and a block of text. Ids are assigned
// after filtering so the published sequence is contiguous and 1-based.
type Chunk struct {
	ID    int
	Title string
	Text  string
}

// Chunking strategy names.
const (
	StrategyParagraph = "paragraph"
	StrategyH3        = "h3"
	StrategyH4        = "h4"
	StrategyAsterisk  = "asterisk"
)

// Ornament lines dropped from every strategy's output.
var skipMarkers = map[string]struct{}{
	"h": {}, "*": {}, "***": {}, "* * *": {}, "q": {},
}

// pending is a chunk awaiting id assignment. An empty title is resolved
// from the assigned id (plus the base title when one exists).
type pending struct {
	text  string
	title string
}

// BuildChunks splits the document into chunks using the named strategy.
// Empty and single-token chunks are dropped before ids are assigned;
// footnote chunks follow the body chunks.
func BuildChunks(doc *document.Document, strategy string, filterHeaders bool) ([]Chunk, error) {
	base := baseChunkTitle(doc)

	var pend []pending
	switch strategy {
	case StrategyParagraph, "":
		pend = chunksByParagraph(doc, filterHeaders)
	case StrategyH3:
		pend = chunksByHeading(doc, filterHeaders, doc.Heading3)
	case StrategyH4:
		title := doc.Heading3
		if doc.Heading4 != "" && doc.Heading4 != doc.Heading3 {
			title = doc.Heading4
		}
		pend = chunksByHeading(doc, filterHeaders, title)
	case StrategyAsterisk:
		pend = chunksByAsterisk(doc, filterHeaders)
	default:
		return nil, fmt.Errorf("unknown chunking strategy %q", strategy)
	}

	for _, fn := range doc.Footnotes {
		text := strings.TrimSpace(fn.Text())
		if text == "" {
			continue
		}
		pend = append(pend, pending{
			text:  text,
			title: "הערה " + hebrew.NumberToGematria(fn.ID),
		})
	}

	return numberChunks(base, pend), nil
}

// baseChunkTitle builds the per-chunk title prefix from the document
// headings: H3, plus H4 when it adds information.
func baseChunkTitle(doc *document.Document) string {
	title := doc.Heading3
	if doc.Heading4 != "" && doc.Heading4 != doc.Heading3 {
		if title != "" {
			title += " - " + doc.Heading4
		} else {
			title = doc.Heading4
		}
	}
	return title
}

// numberChunks drops empty and single-token chunks, then assigns
// contiguous 1-based ids and resolves derived titles.
func numberChunks(base string, pend []pending) []Chunk {
	var out []Chunk
	for _, p := range pend {
		text := strings.TrimSpace(p.text)
		if len(strings.Fields(text)) <= 1 {
			continue
		}

		id := len(out) + 1
		title := p.title
		if title == "" {
			if base != "" {
				title = base + " " + strconv.Itoa(id)
			} else {
				title = strconv.Itoa(id)
			}
		}
		out = append(out, Chunk{ID: id, Title: title, Text: text})
	}
	return out
}

// chunksByParagraph emits one chunk per body paragraph. In multi-section
// documents the boundary and marker lines are skipped and titles come from
// the paragraph's section tag.
func chunksByParagraph(doc *document.Document, filterHeaders bool) []pending {
	multi := doc.ExtraBool("is_multi_parshah")
	inHeader := filterHeaders

	var pend []pending
	for _, p := range doc.Paragraphs {
		txt := strings.TrimSpace(p.Text())

		if multi && (p.Section.Boundary || p.Section.Marker) {
			continue
		}
		if filterHeaders && inHeader {
			if txt != "" && hebrew.ShouldStartContent(txt) {
				inHeader = false
			} else {
				continue
			}
		}
		if filterHeaders && txt != "" && hebrew.IsOldHeader(txt) {
			continue
		}
		if _, skip := skipMarkers[txt]; skip || txt == "" {
			continue
		}

		var title string
		if multi && p.Section.Current != "" {
			title = fmt.Sprintf("%s %d", p.Section.Current, p.Section.Index)
		}
		pend = append(pend, pending{text: txt, title: title})
	}
	return pend
}

// chunksByHeading accumulates paragraphs into one chunk per section,
// flushing at each section boundary. Non-multi-section documents produce a
// single chunk titled after the document heading.
func chunksByHeading(doc *document.Document, filterHeaders bool, startTitle string) []pending {
	multi := doc.ExtraBool("is_multi_parshah")
	title := startTitle

	var pend []pending
	var lines []string

	flush := func() {
		if len(lines) == 0 {
			return
		}
		pend = append(pend, pending{text: strings.Join(lines, "\n"), title: title})
		lines = nil
	}

	for _, p := range doc.Paragraphs {
		txt := strings.TrimSpace(p.Text())

		if multi && p.Section.Boundary {
			flush()
			title = p.Section.Name
			continue
		}
		if multi && p.Section.Marker {
			continue
		}
		if filterHeaders && hebrew.IsOldHeader(txt) {
			continue
		}
		if _, skip := skipMarkers[txt]; skip || txt == "" {
			continue
		}
		lines = append(lines, txt)
	}
	flush()
	return pend
}

// isAsteriskBoundary reports whether a line separates chunks in asterisk
// mode: ornament rows, short asterisk-led tokens, or any 1-3 character line.
func isAsteriskBoundary(txt string) bool {
	switch txt {
	case "*", "**", "***", "* *", "* * *", "* * * *", "q", "h":
		return true
	}
	if strings.HasPrefix(txt, "*") && len([]rune(txt)) <= 10 {
		return true
	}
	return txt != "" && len([]rune(txt)) <= 3
}

// chunksByAsterisk groups paragraphs between asterisk markers within each
// section; titles are "<section> <n>" with n restarting per section.
func chunksByAsterisk(doc *document.Document, filterHeaders bool) []pending {
	multi := doc.ExtraBool("is_multi_parshah")
	inHeader := filterHeaders

	title := doc.Heading3
	indexInSection := 1

	var pend []pending
	var lines []string

	flush := func() {
		if len(lines) == 0 {
			return
		}
		var t string
		if title != "" {
			t = fmt.Sprintf("%s %d", title, indexInSection)
			indexInSection++
		}
		pend = append(pend, pending{text: strings.Join(lines, "\n"), title: t})
		lines = nil
	}

	for _, p := range doc.Paragraphs {
		txt := strings.TrimSpace(p.Text())

		if multi {
			if p.Section.Boundary {
				flush()
				title = p.Section.Name
				indexInSection = 1
				continue
			}
			if p.Section.Marker {
				continue
			}
		}
		if filterHeaders && inHeader {
			if txt != "" && hebrew.ShouldStartContent(txt) {
				inHeader = false
			} else {
				continue
			}
		}
		if filterHeaders && txt != "" && hebrew.IsOldHeader(txt) {
			continue
		}
		if isAsteriskBoundary(txt) {
			flush()
			continue
		}
		if txt == "" || txt == "ה" {
			continue
		}
		lines = append(lines, txt)
	}
	flush()
	return pend
}
