package format

import "testing"

func TestLetterMatch(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  bool
	}{
		{
			name:  "lichvod opening",
			lines: []string{"לכבוד ידידי הרב פלוני"},
			want:  true,
		},
		{
			name:  "shalom opening after blank",
			lines: []string{"", "שלום וברכה"},
			want:  true,
		},
		{
			name:  "nidon line",
			lines: []string{"הנדון: קביעת מזוזה"},
			want:  true,
		},
		{
			name:  "plain derashah",
			lines: []string{"ויאמר ה׳ אל אברם לך לך מארצך וממולדתך ומבית אביך"},
			want:  false,
		},
		{
			name:  "opening buried past the first five paragraphs",
			lines: []string{"א", "ב", "ג", "ד", "ה", "לכבוד הרב"},
			want:  false,
		},
	}

	l := &Letter{}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.Match(textDoc(tc.lines...), NewContext()); got != tc.want {
				t.Errorf("Match = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLetterProcess(t *testing.T) {
	doc := textDoc(
		"ב\"ה, יום ג תמוז תשמ\"ב",
		"לכבוד הרב פלוני אלמוני שליט״א",
		"בתשובה לשאלתו בענין קביעת מזוזה בפתח שאין לו משקוף אם חייב במזוזה או פטור",
	)

	ctx := NewContext()
	ctx.Book = "אגרות"
	if err := (&Letter{}).Process(doc, ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if doc.Heading2 != "מכתבים" {
		t.Errorf("Heading2 = %q, want the default category", doc.Heading2)
	}
	if doc.Heading3 != "הרב פלוני אלמוני" {
		t.Errorf("Heading3 = %q, want the recipient without the honorific", doc.Heading3)
	}
	if doc.Heading4 != "ג תמוז תשמ\"ב" {
		t.Errorf("Heading4 = %q, want the Hebrew date", doc.Heading4)
	}
}

func TestLetterProcessContextOverrides(t *testing.T) {
	doc := textDoc("לכבוד הרב פלוני")

	ctx := NewContext()
	ctx.Category = "תשובות"
	ctx.Recipient = "הרב אלמוני"
	ctx.Date = "12.3.1985"
	if err := (&Letter{}).Process(doc, ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if doc.Heading2 != "תשובות" || doc.Heading3 != "הרב אלמוני" || doc.Heading4 != "12.3.1985" {
		t.Errorf("headings = %q/%q/%q, want the context values",
			doc.Heading2, doc.Heading3, doc.Heading4)
	}
}
