package format

import (
	"testing"
)

func TestStandardHeadings(t *testing.T) {
	tests := []struct {
		name   string
		ctx    func(*Context)
		wantH3 string
		wantH4 string
	}{
		{
			name: "parshah prefix and year from filename",
			ctx: func(c *Context) {
				c.Parshah = "נח"
				c.Filename = "noach תשכה"
			},
			wantH3: "פרשת נח",
			wantH4: "תשכה",
		},
		{
			name: "skip parshah prefix",
			ctx: func(c *Context) {
				c.Parshah = "נח"
				c.SkipParshahPrefix = true
				c.Year = "תשכה"
			},
			wantH3: "נח",
			wantH4: "תשכה",
		},
		{
			name: "filename forced into h4",
			ctx: func(c *Context) {
				c.Filename = "maamar-alef"
				c.UseFilenameForH4 = true
			},
			wantH4: "maamar-alef",
		},
		{
			name: "perek vocabulary from filename",
			ctx: func(c *Context) {
				c.Filename = "perek2"
			},
			wantH4: "פרק ב",
		},
		{
			name: "filename kept when nothing extracts",
			ctx: func(c *Context) {
				c.Filename = "derashot"
			},
			wantH4: "derashot",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := textDoc("בראשית ברא אלקים את השמים ואת הארץ והארץ היתה תהו ובהו וחשך על פני תהום")
			ctx := NewContext()
			ctx.Book = "ספר הדרושים"
			tc.ctx(ctx)

			if err := (&Standard{}).Process(doc, ctx); err != nil {
				t.Fatalf("Process: %v", err)
			}
			if doc.Heading1 != "ספר הדרושים" {
				t.Errorf("Heading1 = %q", doc.Heading1)
			}
			if doc.Heading3 != tc.wantH3 {
				t.Errorf("Heading3 = %q, want %q", doc.Heading3, tc.wantH3)
			}
			if doc.Heading4 != tc.wantH4 {
				t.Errorf("Heading4 = %q, want %q", doc.Heading4, tc.wantH4)
			}
		})
	}
}

func TestStandardFiltersHeaders(t *testing.T) {
	content := "ויקרא אל משה וידבר ה׳ אליו מאהל מועד לאמר דבר אל בני ישראל ואמרת אליהם אדם כי יקריב"
	doc := textDoc(
		"ב\"ה",
		"פרשת ויקרא שנת תשכ\"ה",
		"",
		content,
	)

	if err := (&Standard{}).Process(doc, NewContext()); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(doc.Paragraphs) != 1 {
		t.Fatalf("got %d paragraphs after header filtering, want 1", len(doc.Paragraphs))
	}
	if doc.Paragraphs[0].Text() != content {
		t.Errorf("kept %q, want the body paragraph", doc.Paragraphs[0].Text())
	}
}

func TestStandardKeepsHeadersWhenDisabled(t *testing.T) {
	doc := textDoc(
		"פרשת ויקרא",
		"ויקרא אל משה וידבר ה׳ אליו מאהל מועד לאמר דבר אל בני ישראל ואמרת אליהם",
	)

	ctx := NewContext()
	ctx.FilterHeaders = false
	if err := (&Standard{}).Process(doc, ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(doc.Paragraphs) != 2 {
		t.Errorf("got %d paragraphs, want 2 with filtering off", len(doc.Paragraphs))
	}
}
