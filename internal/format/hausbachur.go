package format

import (
	"regexp"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

var (
	dottedLineRe   = regexp.MustCompile(`^[-=_~.·\x{2013}\x{2014}\x{2015}\s]{3,}$`)
	boxPrefixRunes = "□☐■▢▣▤▥▦▧▨▩☑☒"
)

// HausBachur handles scanned-pamphlet layouts: H2 is a short 22pt line, H3
// a 13pt line extracted from a textbox, H4 a non-bold single-line textbox
// sentence. Textbox presence is recorded on paragraphs by the reader.
type HausBachur struct{}

func (*HausBachur) Name() string  { return "haus-bachur" }
func (*HausBachur) Priority() int { return 15 }

func (h *HausBachur) Match(doc *document.Document, ctx *Context) bool {
	if ctx.Mode == "haus-bachur" {
		return true
	}

	for i, p := range doc.Paragraphs {
		text := strings.TrimSpace(p.Text())
		if text == "" {
			continue
		}
		if p.HasFontSize(22) && shortLine(text) {
			return true
		}
		if p.Bold() && i+1 < len(doc.Paragraphs) {
			if dottedLine(strings.TrimSpace(doc.Paragraphs[i+1].Text())) {
				return true
			}
		}
		if startsWithBox(text) {
			return true
		}
	}
	return false
}

func (h *HausBachur) Process(doc *document.Document, ctx *Context) error {
	hebrew.RemovePageMarkings(doc)
	doc.SetHeadings(ctx.Book, "", "", "")

	for _, p := range doc.Paragraphs {
		text := strings.TrimSpace(p.Text())
		if text == "" {
			continue
		}
		switch {
		case p.HasFontSize(22) && shortLine(text):
			p.HeadingLevel = document.Heading2
		case p.HasTextbox && h.sizeThirteen(p):
			p.HeadingLevel = document.Heading3
		case p.HasTextbox && singleLineSentence(text) && !p.Bold() && !h.sizeThirteen(p):
			p.HeadingLevel = document.Heading4
		}
	}
	return nil
}

// sizeThirteen checks for the 13pt subtitle size, falling back to the
// source style name used for it in this corpus.
func (*HausBachur) sizeThirteen(p *document.Paragraph) bool {
	if p.HasFontSize(13) {
		return true
	}
	return strings.Contains(p.StyleName, "כותרת משנה חדש")
}

func shortLine(text string) bool {
	return len([]rune(text)) < 100
}

func singleLineSentence(text string) bool {
	return text != "" && !strings.Contains(text, "\n") && len([]rune(text)) < 200
}

func startsWithBox(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	return strings.ContainsRune(boxPrefixRunes, []rune(text)[0])
}

// dottedLine accepts explicit separator runs and lines that are mostly
// separator characters.
func dottedLine(text string) bool {
	if text == "" {
		return false
	}
	if dottedLineRe.MatchString(text) {
		return true
	}
	separators := 0
	for _, r := range text {
		if strings.ContainsRune("-–—=_.·~ ", r) {
			separators++
		}
	}
	n := len([]rune(text))
	return n >= 3 && separators*10 >= n*7
}
