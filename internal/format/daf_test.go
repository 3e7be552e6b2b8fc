package format

import "testing"

func TestDafMatch(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"perek01", true},
		{"perek3b", true},
		{"chelek2", true},
		{"חלק1", true},
		{"mekoros", true},
		{"mkoros02", true},
		{"hakdomo", true},
		{"noach", false},
		{"siman12", false},
	}

	d := &Daf{}
	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			ctx := NewContext()
			ctx.Filename = tc.filename
			if got := d.Match(nil, ctx); got != tc.want {
				t.Errorf("Match(%q) = %v, want %v", tc.filename, got, tc.want)
			}
		})
	}
}

func TestDafProcess(t *testing.T) {
	tests := []struct {
		filename string
		wantH3   string
		wantH4   string
	}{
		{"perek1", "פרק א", ""},
		{"perek2b", "פרק ב", "חלק ב"},
		{"mekoros3", "מקורות ג", ""},
		{"hakdomo", "הקדמה", ""},
	}

	d := &Daf{}
	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			doc := textDoc("אמר רבא האי מאן דבעי למידע אי משכח גמריה ליעיין בהאי מילתא שפיר")
			ctx := NewContext()
			ctx.Book = "שיעורים"
			ctx.Sefer = "בבא קמא"
			ctx.Filename = tc.filename
			ctx.FilterHeaders = false

			if err := d.Process(doc, ctx); err != nil {
				t.Fatalf("Process: %v", err)
			}
			if doc.Heading2 != "בבא קמא" {
				t.Errorf("Heading2 = %q", doc.Heading2)
			}
			if doc.Heading3 != tc.wantH3 || doc.Heading4 != tc.wantH4 {
				t.Errorf("headings = %q/%q, want %q/%q",
					doc.Heading3, doc.Heading4, tc.wantH3, tc.wantH4)
			}
		})
	}
}
