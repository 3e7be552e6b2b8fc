package reader

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/mendelk/sofer/internal/document"
)

// Docx reads WordprocessingML containers: word/document.xml for the body,
// word/styles.xml to resolve style names, word/footnotes.xml for footnote
// bodies. Run formatting maps onto RunStyle; pStyle Heading 1-4 maps onto
// paragraph heading levels.
type Docx struct{}

func (*Docx) Extensions() []string { return []string{".docx"} }

// Word XML element shapes. Tags carry only local names; encoding/xml
// matches them across the w: namespace.
type xmlDocument struct {
	Body struct {
		Paragraphs []xmlParagraph `xml:"p"`
	} `xml:"body"`
}

type xmlParagraph struct {
	Props *xmlParaProps `xml:"pPr"`
	Runs  []xmlRun      `xml:"r"`
	Inner []byte        `xml:",innerxml"`
}

type xmlParaProps struct {
	Style    *xmlVal      `xml:"pStyle"`
	Jc       *xmlVal      `xml:"jc"`
	Bidi     *xmlFlag     `xml:"bidi"`
	NumPr    *xmlEmpty    `xml:"numPr"`
	RunProps *xmlRunProps `xml:"rPr"`
}

type xmlRun struct {
	Props       *xmlRunProps `xml:"rPr"`
	Texts       []xmlText    `xml:"t"`
	FootnoteRef *xmlIDAttr   `xml:"footnoteReference"`
}

type xmlRunProps struct {
	Bold      *xmlFlag  `xml:"b"`
	Italic    *xmlFlag  `xml:"i"`
	Underline *xmlVal   `xml:"u"`
	Strike    *xmlFlag  `xml:"strike"`
	Size      *xmlVal   `xml:"sz"`
	Color     *xmlVal   `xml:"color"`
	VertAlign *xmlVal   `xml:"vertAlign"`
	Caps      *xmlFlag  `xml:"caps"`
	SmallCaps *xmlFlag  `xml:"smallCaps"`
	Fonts     *xmlFonts `xml:"rFonts"`
}

type xmlFonts struct {
	ASCII string `xml:"ascii,attr"`
	CS    string `xml:"cs,attr"`
}

type xmlText struct {
	Value string `xml:",chardata"`
}

type xmlVal struct {
	Val string `xml:"val,attr"`
}

// xmlFlag is a boolean toggle element: present with no val means on.
type xmlFlag struct {
	Val *bool `xml:"val,attr"`
}

func (f *xmlFlag) on() bool {
	if f == nil {
		return false
	}
	return f.Val == nil || *f.Val
}

type xmlEmpty struct{}

type xmlIDAttr struct {
	ID int `xml:"id,attr"`
}

type xmlStyles struct {
	Styles []struct {
		ID   string  `xml:"styleId,attr"`
		Name *xmlVal `xml:"name"`
	} `xml:"style"`
}

type xmlFootnotes struct {
	Footnotes []struct {
		ID         int            `xml:"id,attr"`
		Type       string         `xml:"type,attr"`
		Paragraphs []xmlParagraph `xml:"p"`
	} `xml:"footnote"`
}

var headingStyleRe = regexp.MustCompile(`^heading\s*([1-4])$`)

func (*Docx) Read(path string) (*document.Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open docx container: %w", err)
	}
	defer zr.Close()

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}
	if _, ok := files["word/document.xml"]; !ok {
		return nil, fmt.Errorf("not a docx file: %s has no word/document.xml", path)
	}

	var body xmlDocument
	if err := decodePart(files, "word/document.xml", &body); err != nil {
		return nil, err
	}

	// Style names are optional; without them heading detection falls
	// back to the style id.
	styleNames := map[string]string{}
	var styles xmlStyles
	if _, ok := files["word/styles.xml"]; ok {
		if err := decodePart(files, "word/styles.xml", &styles); err != nil {
			return nil, err
		}
		for _, s := range styles.Styles {
			if s.Name != nil {
				styleNames[s.ID] = s.Name.Val
			}
		}
	}

	doc := document.New()
	doc.Metadata.SourceFile = path

	for i := range body.Body.Paragraphs {
		doc.Paragraphs = append(doc.Paragraphs, convertParagraph(&body.Body.Paragraphs[i], styleNames))
	}

	if err := readFootnotes(files, styleNames, doc); err != nil {
		return nil, err
	}

	if strings.TrimSpace(doc.TextContent()) == "" && len(doc.Headings()) == 0 {
		return nil, fmt.Errorf("no readable content in %s", path)
	}
	return doc, nil
}

func decodePart(files map[string]*zip.File, name string, v any) error {
	f, ok := files[name]
	if !ok {
		return fmt.Errorf("docx part %s not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open docx part %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("failed to read docx part %s: %w", name, err)
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to parse docx part %s: %w", name, err)
	}
	return nil
}

func convertParagraph(src *xmlParagraph, styleNames map[string]string) *document.Paragraph {
	p := &document.Paragraph{}

	var base *xmlRunProps
	if src.Props != nil {
		base = src.Props.RunProps
		p.NumberedList = src.Props.NumPr != nil
		if src.Props.Bidi.on() {
			p.Format.RightToLeft = true
		}
		if src.Props.Jc != nil {
			p.Format.Alignment = alignmentFromJc(src.Props.Jc.Val)
		}
		if src.Props.Style != nil {
			id := src.Props.Style.Val
			p.StyleName = styleNames[id]
			if p.StyleName == "" {
				p.StyleName = id
			}
			p.HeadingLevel = headingFromStyle(id, p.StyleName)
		}
	}

	for i := range src.Runs {
		run := &src.Runs[i]
		props := run.Props
		if props == nil {
			props = base
		}

		var text strings.Builder
		for _, t := range run.Texts {
			text.WriteString(t.Value)
		}

		if text.Len() == 0 && run.FootnoteRef == nil {
			continue
		}

		tr := document.TextRun{Text: text.String(), Style: runStyle(props)}
		if run.FootnoteRef != nil {
			tr.FootnoteID = run.FootnoteRef.ID
		}
		p.Runs = append(p.Runs, tr)
	}

	inner := string(src.Inner)
	p.HasTextbox = strings.Contains(inner, "txbxContent")
	p.HasDrawing = strings.Contains(inner, "drawing") || strings.Contains(inner, ":pict")

	return p
}

func runStyle(props *xmlRunProps) document.RunStyle {
	var s document.RunStyle
	if props == nil {
		return s
	}

	if props.Bold != nil {
		v := props.Bold.on()
		s.Bold = &v
	}
	if props.Italic != nil {
		v := props.Italic.on()
		s.Italic = &v
	}
	if props.Underline != nil {
		v := props.Underline.Val != "none"
		s.Underline = &v
	}
	if props.Strike != nil {
		v := props.Strike.on()
		s.Strike = &v
	}
	if props.Caps != nil {
		v := props.Caps.on()
		s.AllCaps = &v
	}
	if props.SmallCaps != nil {
		v := props.SmallCaps.on()
		s.SmallCaps = &v
	}
	if props.Size != nil {
		// sz is in half-points.
		if half, err := strconv.ParseFloat(props.Size.Val, 64); err == nil {
			pt := half / 2
			s.FontSize = &pt
		}
	}
	if props.Color != nil && props.Color.Val != "auto" {
		s.ColorRGB = props.Color.Val
	}
	if props.VertAlign != nil {
		switch props.VertAlign.Val {
		case "superscript":
			v := true
			s.Superscript = &v
		case "subscript":
			v := true
			s.Subscript = &v
		}
	}
	if props.Fonts != nil {
		s.FontName = props.Fonts.CS
		if s.FontName == "" {
			s.FontName = props.Fonts.ASCII
		}
	}
	return s
}

func alignmentFromJc(val string) document.Alignment {
	switch val {
	case "center":
		return document.AlignCenter
	case "right", "end":
		return document.AlignRight
	case "left", "start":
		return document.AlignLeft
	case "both", "distribute":
		return document.AlignJustify
	default:
		return document.AlignUnset
	}
}

// headingFromStyle maps a paragraph style onto a heading level, matching
// either the resolved style name ("Heading 2") or the style id ("Heading2").
func headingFromStyle(id, name string) document.HeadingLevel {
	for _, candidate := range []string{name, id} {
		c := strings.ToLower(strings.TrimSpace(candidate))
		if m := headingStyleRe.FindStringSubmatch(c); m != nil {
			n, _ := strconv.Atoi(m[1])
			return document.HeadingLevel(int(document.Heading1) + n - 1)
		}
	}
	return document.Normal
}

// readFootnotes attaches footnote bodies from word/footnotes.xml, skipping
// the separator pseudo-footnotes Word stores under non-positive ids.
func readFootnotes(files map[string]*zip.File, styleNames map[string]string, doc *document.Document) error {
	if _, ok := files["word/footnotes.xml"]; !ok {
		return nil
	}

	var notes xmlFootnotes
	if err := decodePart(files, "word/footnotes.xml", &notes); err != nil {
		return err
	}

	for _, fn := range notes.Footnotes {
		if fn.ID <= 0 || fn.Type == "separator" || fn.Type == "continuationSeparator" {
			continue
		}
		out := &document.Footnote{ID: len(doc.Footnotes) + 1, OriginalID: fn.ID}
		for i := range fn.Paragraphs {
			out.Paragraphs = append(out.Paragraphs, convertParagraph(&fn.Paragraphs[i], styleNames))
		}
		doc.Footnotes = append(doc.Footnotes, out)
	}

	// Remap run references from container ids to document ids.
	byOriginal := make(map[int]int, len(doc.Footnotes))
	for _, fn := range doc.Footnotes {
		byOriginal[fn.OriginalID] = fn.ID
	}
	for _, p := range doc.Paragraphs {
		for i := range p.Runs {
			if orig := p.Runs[i].FootnoteID; orig != 0 {
				p.Runs[i].FootnoteID = byOriginal[orig]
			}
		}
	}
	return nil
}
