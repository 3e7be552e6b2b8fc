package writer

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mendelk/sofer/internal/document"
)

// Docx writes a minimal WordprocessingML container: heading hierarchy,
// right-to-left body paragraphs, and a closing footnotes chapter. Run
// formatting beyond bold/underline/size is not round-tripped.
type Docx struct{}

func (*Docx) Name() string      { return "docx" }
func (*Docx) Extension() string { return ".docx" }

func (d *Docx) Write(doc *document.Document, path string, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	return d.WriteTo(doc, f)
}

// WriteTo writes the docx container to a writer.
func (*Docx) WriteTo(doc *document.Document, w io.Writer) error {
	zw := zip.NewWriter(w)
	defer zw.Close()

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", documentXML(doc)},
	}

	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := pw.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}
	return nil
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>
`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>
`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>
`

// stylesXML defines Normal plus the four heading styles, all
// right-to-left.
var stylesXML = buildStylesXML()

func buildStylesXML() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal">
    <w:name w:val="Normal"/>
    <w:pPr><w:bidi/></w:pPr>
  </w:style>
`)
	sizes := []int{32, 28, 26, 24}
	for i, half := range sizes {
		n := i + 1
		fmt.Fprintf(&sb, `  <w:style w:type="paragraph" w:styleId="Heading%d">
    <w:name w:val="Heading %d"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr><w:bidi/><w:outlineLvl w:val="%d"/></w:pPr>
    <w:rPr><w:b/><w:sz w:val="%d"/></w:rPr>
  </w:style>
`, n, n, n-1, half)
	}
	sb.WriteString("</w:styles>\n")
	return sb.String()
}

func documentXML(doc *document.Document) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
`)

	// Document-level heading hierarchy first.
	headings := []struct {
		level int
		text  string
	}{
		{1, doc.Heading1},
		{2, doc.Heading2},
		{3, doc.Heading3},
		{4, doc.Heading4},
	}
	for _, h := range headings {
		if h.text != "" {
			writeHeadingParagraph(&sb, h.level, h.text)
		}
	}

	for _, p := range doc.Paragraphs {
		writeBodyParagraph(&sb, p)
	}

	if len(doc.Footnotes) > 0 {
		writeHeadingParagraph(&sb, 2, "הערות")
		for _, fn := range doc.Footnotes {
			for _, p := range fn.Paragraphs {
				writeBodyParagraph(&sb, p)
			}
		}
	}

	sb.WriteString("  </w:body>\n</w:document>\n")
	return sb.String()
}

func writeHeadingParagraph(sb *strings.Builder, level int, text string) {
	fmt.Fprintf(sb, `    <w:p><w:pPr><w:pStyle w:val="Heading%d"/><w:bidi/></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`+"\n",
		level, escapeXML(text))
}

func writeBodyParagraph(sb *strings.Builder, p *document.Paragraph) {
	sb.WriteString("    <w:p><w:pPr>")
	if p.HeadingLevel != document.Normal {
		fmt.Fprintf(sb, `<w:pStyle w:val="Heading%d"/>`, int(p.HeadingLevel))
	}
	sb.WriteString("<w:bidi/></w:pPr>")

	for _, r := range p.Runs {
		if r.Text == "" {
			continue
		}
		sb.WriteString("<w:r>")
		writeRunProps(sb, r.Style)
		fmt.Fprintf(sb, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(r.Text))
		sb.WriteString("</w:r>")
	}
	sb.WriteString("</w:p>\n")
}

func writeRunProps(sb *strings.Builder, s document.RunStyle) {
	var props strings.Builder
	if s.Bold != nil && *s.Bold {
		props.WriteString("<w:b/>")
	}
	if s.Underline != nil && *s.Underline {
		props.WriteString(`<w:u w:val="single"/>`)
	}
	if s.FontSize != nil {
		props.WriteString(`<w:sz w:val="` + strconv.Itoa(int(*s.FontSize*2)) + `"/>`)
	}
	if props.Len() > 0 {
		sb.WriteString("<w:rPr>" + props.String() + "</w:rPr>")
	}
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
