package writer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/reader"
)

func TestDocxRoundTrip(t *testing.T) {
	doc := textDoc("בראשית ברא אלקים את השמים ואת הארץ")
	doc.SetHeadings("ליקוטי שיחות", "חלק א", "פרשת בראשית", "")
	doc.AddParagraph("פרק א", document.Heading4)

	fn := &document.Footnote{}
	p := &document.Paragraph{}
	p.SetText("עיין זוהר חלק א דף כג")
	fn.Paragraphs = []*document.Paragraph{p}
	doc.AddFootnote(fn)

	path := filepath.Join(t.TempDir(), "out.docx")
	w := &Docx{}
	if err := w.Write(doc, path, DefaultOptions()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := (&reader.Docx{}).Read(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}

	wantHeadings := map[document.HeadingLevel]string{
		document.Heading1: "ליקוטי שיחות",
		document.Heading2: "חלק א",
		document.Heading3: "פרשת בראשית",
		document.Heading4: "פרק א",
	}
	for _, h := range got.Headings() {
		want, ok := wantHeadings[h.HeadingLevel]
		if !ok {
			continue
		}
		if h.Text() == want {
			delete(wantHeadings, h.HeadingLevel)
		}
	}
	if len(wantHeadings) != 0 {
		t.Errorf("headings missing after round trip: %v", wantHeadings)
	}

	body := got.TextContent()
	for _, want := range []string{
		"בראשית ברא אלקים את השמים ואת הארץ",
		"עיין זוהר חלק א דף כג",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("round-tripped body missing %q", want)
		}
	}
}
