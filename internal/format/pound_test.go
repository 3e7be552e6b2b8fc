package format

import (
	"testing"

	"github.com/mendelk/sofer/internal/document"
)

func TestPoundMatch(t *testing.T) {
	p := &Pound{}
	ctx := NewContext()
	if p.Match(nil, ctx) {
		t.Error("matched without explicit mode")
	}
	ctx.Mode = "pound"
	if !p.Match(nil, ctx) {
		t.Error("did not match explicit mode")
	}
}

func TestPoundStructure(t *testing.T) {
	doc := textDoc(
		"#",
		"בענין קדושת השבת ומעלתה",
		"א",
		"פתיחה לדברי הזוהר",
		"ב#",
		"דרוש שני בענין התפילה",
		"כי הנה התפילה היא עבודה שבלב וכל אחד מישראל חייב בה בכל יום תמיד",
	)

	ctx := NewContext()
	ctx.Mode = "pound"
	if err := (&Pound{}).Process(doc, ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := []struct {
		text  string
		level document.HeadingLevel
	}{
		{"בענין קדושת השבת ומעלתה", document.Heading3},
		{"א", document.Normal},
		{"פתיחה לדברי הזוהר", document.Heading4},
		{"דרוש שני בענין התפילה", document.Heading3},
		{"כי הנה התפילה היא עבודה שבלב וכל אחד מישראל חייב בה בכל יום תמיד", document.Normal},
	}

	if len(doc.Paragraphs) != len(want) {
		t.Fatalf("got %d paragraphs, want %d", len(doc.Paragraphs), len(want))
	}
	for i, w := range want {
		p := doc.Paragraphs[i]
		if p.Text() != w.text || p.HeadingLevel != w.level {
			t.Errorf("paragraph %d = %q (%v), want %q (%v)",
				i, p.Text(), p.HeadingLevel, w.text, w.level)
		}
	}
}

func TestPoundPageMarkings(t *testing.T) {
	doc := textDoc(
		"#",
		"בענין קדושת השבת ומעלתה",
		"וזהו מה שאמרו חכמינו זכרונם לברכה כי השבת שקולה כנגד כל המצוות",
		"((קכג))",
		"ומכאן שכל השומר שבת כהלכתה מוחלין לו על כל עוונותיו",
	)

	ctx := NewContext()
	ctx.Mode = "pound"
	if err := (&Pound{}).Process(doc, ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(doc.Paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(doc.Paragraphs))
	}
	if doc.Paragraphs[0].HeadingLevel != document.Heading3 {
		t.Errorf("level = %v, want h3", doc.Paragraphs[0].HeadingLevel)
	}
	want := "וזהו מה שאמרו חכמינו זכרונם לברכה כי השבת שקולה כנגד כל המצוות" +
		" ומכאן שכל השומר שבת כהלכתה מוחלין לו על כל עוונותיו"
	if doc.Paragraphs[1].Text() != want {
		t.Errorf("merged text = %q, want %q", doc.Paragraphs[1].Text(), want)
	}
}

func TestPoundEmbeddedHeading(t *testing.T) {
	doc := textDoc(
		"הקדמה# ביאור ענין אהבת ישראל",
		"גדולה אהבת ישראל שהיא כלל גדול בתורה ואמרו חז\"ל ואהבת לרעך כמוך",
	)

	ctx := NewContext()
	ctx.Mode = "pound"
	if err := (&Pound{}).Process(doc, ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if doc.Paragraphs[0].HeadingLevel != document.Heading3 {
		t.Errorf("level = %v, want h3", doc.Paragraphs[0].HeadingLevel)
	}
	if doc.Paragraphs[0].Text() != "ביאור ענין אהבת ישראל" {
		t.Errorf("text = %q, want the part after the marker", doc.Paragraphs[0].Text())
	}
}
