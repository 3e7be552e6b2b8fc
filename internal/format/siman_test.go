package format

import "testing"

func TestSimanMatch(t *testing.T) {
	body := "ודע שעיקר הדין בזה תלוי במחלוקת הראשונים שהביא הבית יוסף בסימן הקודם"

	tests := []struct {
		name     string
		filename string
		doc      []string
		want     bool
	}{
		{name: "siman filename", filename: "siman012", doc: []string{body}, want: true},
		{name: "hebrew siman filename", filename: "סימן יב", doc: []string{body}, want: true},
		{name: "siman heading in body", doc: []string{"סימן קכא", body}, want: true},
		{name: "plain body", doc: []string{body}, want: false},
	}

	s := &Siman{}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewContext()
			ctx.Filename = tc.filename
			if got := s.Match(textDoc(tc.doc...), ctx); got != tc.want {
				t.Errorf("Match = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSimanProcess(t *testing.T) {
	doc := textDoc("ודע שעיקר הדין בזה תלוי במחלוקת הראשונים שהביא הבית יוסף")

	ctx := NewContext()
	ctx.Book = "שלחן ערוך"
	ctx.Section = "אורח חיים"
	ctx.Filename = "siman012"
	if err := (&Siman{}).Process(doc, ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if doc.Heading2 != "אורח חיים" {
		t.Errorf("Heading2 = %q", doc.Heading2)
	}
	if doc.Heading3 != "סימן יב" {
		t.Errorf("Heading3 = %q, want סימן יב", doc.Heading3)
	}
}

func TestSimanProcessExplicitLabel(t *testing.T) {
	doc := textDoc("ודע שעיקר הדין בזה תלוי במחלוקת הראשונים")

	ctx := NewContext()
	ctx.Siman = "סימן א"
	ctx.Seif = "סעיף ב"
	if err := (&Siman{}).Process(doc, ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if doc.Heading3 != "סימן א" || doc.Heading4 != "סעיף ב" {
		t.Errorf("headings = %q/%q, want the explicit siman and seif", doc.Heading3, doc.Heading4)
	}
}
