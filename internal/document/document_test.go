package document

import "testing"

func TestIsNumberedListItem(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		style string
		want  bool
	}{
		{name: "gematria numbered entry", text: "יט. אמר רבי יוחנן", want: true},
		{name: "numeral with no content", text: "יט.", want: false},
		{name: "generic list paragraph style", text: "יט. אמר רבי יוחנן", style: "List Paragraph", want: false},
		{name: "plain prose", text: "אמר רבי יוחנן", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Paragraph{StyleName: tt.style}
			p.SetText(tt.text)
			if got := p.IsNumberedListItem(); got != tt.want {
				t.Errorf("IsNumberedListItem() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("numbering properties always win", func(t *testing.T) {
		p := &Paragraph{NumberedList: true, StyleName: "List Paragraph"}
		p.SetText("אמר רבי יוחנן")
		if !p.IsNumberedListItem() {
			t.Error("paragraph with numbering properties should count as numbered")
		}
	})
}

func TestUniformFontSize(t *testing.T) {
	size := func(pt float64) RunStyle { return RunStyle{FontSize: &pt} }

	p := &Paragraph{}
	p.AddRun("פרשת", size(14))
	p.AddRun(" ", RunStyle{})
	p.AddRun("נח", size(14))
	if got := p.UniformFontSize(); got != 14 {
		t.Errorf("UniformFontSize() = %v, want 14 (blank runs ignored)", got)
	}

	p.AddRun("תשכה", size(12))
	if got := p.UniformFontSize(); got != 0 {
		t.Errorf("UniformFontSize() = %v, want 0 for mixed sizes", got)
	}
}

func TestAddFootnoteAssignsIDs(t *testing.T) {
	doc := New()
	first := doc.AddFootnote(&Footnote{})
	second := doc.AddFootnote(&Footnote{})
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("footnote ids = %d, %d, want sequential from 1", first.ID, second.ID)
	}

	explicit := doc.AddFootnote(&Footnote{ID: 9})
	if explicit.ID != 9 {
		t.Errorf("explicit id overwritten to %d", explicit.ID)
	}
	if doc.FootnoteByID(9) != explicit {
		t.Error("FootnoteByID(9) did not return the explicit footnote")
	}
}

func TestSetHeadingsMirrorsMetadata(t *testing.T) {
	doc := New()
	doc.SetHeadings("ליקוטי שיחות", "חלק א", "פרשת נח", "תשכה")

	if doc.Metadata.Book != "ליקוטי שיחות" || doc.Metadata.Parshah != "פרשת נח" {
		t.Errorf("metadata = %+v", doc.Metadata)
	}

	// Clearing a heading leaves the recorded metadata in place.
	doc.SetHeadings("", "", "פרשת וירא", "")
	if doc.Heading1 != "" {
		t.Errorf("Heading1 = %q, want cleared", doc.Heading1)
	}
	if doc.Metadata.Book != "ליקוטי שיחות" {
		t.Errorf("metadata book = %q, want retained", doc.Metadata.Book)
	}
}
