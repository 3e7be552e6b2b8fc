package format

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

var basadRe = regexp.MustCompile(`^בס["']?ד["']?$`)

// PerekH3 is the perek-h2 variant where H2 comes from the context or the
// containing folder and H3 detection does not require bold. Chosen
// explicitly, never auto-detected.
type PerekH3 struct{}

func (*PerekH3) Name() string  { return "perek-h3" }
func (*PerekH3) Priority() int { return 15 }

func (*PerekH3) Match(_ *document.Document, ctx *Context) bool {
	return ctx.Mode == "perek-h3"
}

func (h *PerekH3) Process(doc *document.Document, ctx *Context) error {
	sefer := ctx.Sefer
	if sefer == "" && ctx.InputPath != "" {
		sefer = filepath.Base(filepath.Dir(ctx.InputPath))
		if sefer == "." || sefer == string(filepath.Separator) {
			sefer = ""
		}
	}

	hebrew.RemovePageMarkings(doc)
	removeImageCaptions(doc)
	h.dropFrontMatter(doc, ctx.Book)

	doc.SetHeadings(ctx.Book, sefer, "", "")
	h.applyHeadings(doc)
	return nil
}

// dropFrontMatter removes the בס"ד line and a repeated book-name line from
// the opening paragraphs.
func (*PerekH3) dropFrontMatter(doc *document.Document, book string) {
	var kept []*document.Paragraph
	for i, p := range doc.Paragraphs {
		text := strings.TrimSpace(p.Text())
		if basadRe.MatchString(text) {
			continue
		}
		if book != "" && i < 3 {
			if text == book {
				continue
			}
			if strings.Contains(text, book) && len([]rune(text)) <= len([]rune(book))+5 {
				continue
			}
		}
		kept = append(kept, p)
	}
	doc.Paragraphs = kept
}

func (h *PerekH3) applyHeadings(doc *document.Document) {
	for i := 0; i < len(doc.Paragraphs); i++ {
		para := doc.Paragraphs[i]
		text := strings.TrimSpace(para.Text())
		if text == "" || para.HeadingLevel != document.Normal {
			continue
		}

		// Bold short sentence, merging a bold pair into one heading.
		if para.Bold() && isShortSentence(text) {
			if merged := h.mergeIfPaired(doc, i, func(p *document.Paragraph) bool {
				return p.Bold()
			}); merged {
				continue
			}
			if followedByContent(doc, i, false) {
				para.HeadingLevel = document.Heading3
				continue
			}
		}

		// Underlined short sentence, no bold required.
		if para.Underlined() && isShortSentence(text) {
			if merged := h.mergeIfPaired(doc, i, func(p *document.Paragraph) bool {
				return p.Underlined()
			}); merged {
				continue
			}
			para.HeadingLevel = document.Heading3
			continue
		}

		// Bare short sentence: heading only in heading position, and only
		// when the follower is real content rather than another candidate.
		if isShortSentence(text) &&
			!strings.HasPrefix(text, "*") &&
			!prevBlocksHeading(doc, i) &&
			h.followedByProse(doc, i) {
			para.HeadingLevel = document.Heading3
		}
	}
}

// mergeIfPaired combines paragraph i with its successor into one H3 when
// both carry the same heading styling.
func (*PerekH3) mergeIfPaired(doc *document.Document, i int, styled func(*document.Paragraph) bool) bool {
	if i+1 >= len(doc.Paragraphs) {
		return false
	}
	para := doc.Paragraphs[i]
	next := doc.Paragraphs[i+1]
	nextText := strings.TrimSpace(next.Text())
	if next.HeadingLevel != document.Normal || !styled(next) || !isShortSentence(nextText) {
		return false
	}
	para.SetText(strings.TrimSpace(para.Text()) + " " + nextText)
	para.HeadingLevel = document.Heading3
	doc.Paragraphs = append(doc.Paragraphs[:i+1], doc.Paragraphs[i+2:]...)
	return true
}

// followedByProse is the un-styled variant of followedByContent: a bold
// short follower is itself a heading candidate, so it only counts as
// content when long enough to be prose.
func (*PerekH3) followedByProse(doc *document.Document, i int) bool {
	if !followedByContent(doc, i, false) {
		return false
	}
	next := doc.Paragraphs[i+1]
	text := strings.TrimSpace(atNoiseRe.ReplaceAllString(next.Text(), ""))
	if next.Bold() && len([]rune(text)) <= 60 {
		return false
	}
	return true
}
