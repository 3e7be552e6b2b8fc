package format

import (
	"testing"

	"github.com/mendelk/sofer/internal/document"
)

func TestMultiParshahBoundarySections(t *testing.T) {
	doc := textDoc(
		"פרשת בראשית",
		"בראשית ברא אלקים את השמים ואת הארץ",
		"פרשת נח תשנ״ט",
		"אלה תולדת נח נח איש צדיק תמים היה בדרתיו",
	)

	ctx := NewContext()
	ctx.Book = "קדושת לוי"
	if err := (&MultiParshah{}).Process(doc, ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !doc.ExtraBool("is_multi_parshah") {
		t.Error("is_multi_parshah flag not set")
	}
	if doc.Heading1 != "קדושת לוי" {
		t.Errorf("Heading1 = %q", doc.Heading1)
	}

	first := doc.Paragraphs[0].Section
	if !first.Boundary || first.Name != "בראשית" {
		t.Errorf("first boundary = %+v", first)
	}
	if first.Year != "" {
		t.Errorf("first boundary Year = %q, want none", first.Year)
	}

	second := doc.Paragraphs[2].Section
	if !second.Boundary || second.Name != "נח" {
		t.Errorf("second boundary = %+v", second)
	}
	if second.Year != "תשנ״ט" {
		t.Errorf("second boundary Year = %q, want תשנ״ט", second.Year)
	}

	for _, tc := range []struct {
		idx     int
		current string
		index   int
	}{
		{1, "בראשית", 1},
		{3, "נח", 1},
	} {
		got := doc.Paragraphs[tc.idx].Section
		if got.Current != tc.current || got.Index != tc.index {
			t.Errorf("paragraph %d section = %q/%d, want %q/%d",
				tc.idx, got.Current, got.Index, tc.current, tc.index)
		}
	}
}

func TestMultiParshahMarkerBeforeBareName(t *testing.T) {
	doc := textDoc(
		"פרשת ויצא",
		"ויצא יעקב מבאר שבע וילך חרנה ויפגע במקום",
		"*",
		"וישלח",
		"וישלח יעקב מלאכים לפניו אל עשו אחיו ארצה שעיר",
	)

	if err := (&MultiParshah{}).Process(doc, NewContext()); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !doc.Paragraphs[2].Section.Marker {
		t.Error("ornament line before the bare name was not tagged as marker")
	}
	b := doc.Paragraphs[3].Section
	if !b.Boundary || b.Name != "וישלח" {
		t.Errorf("bare name after ornament = %+v, want boundary וישלח", b)
	}
	if got := doc.Paragraphs[4].Section; got.Current != "וישלח" || got.Index != 1 {
		t.Errorf("body after bare-name boundary = %q/%d, want וישלח/1", got.Current, got.Index)
	}
}

func TestMultiParshahSpecialHeading(t *testing.T) {
	doc := textDoc(
		"אמור.",
		"קדושת שבת",
		"ענין קדושת שבת קודש גדול מאד ומי שזוכה לקבל את השבת כראוי זוכה לכל הברכות",
	)

	ctx := NewContext()
	ctx.SpecialHeading = true
	if err := (&MultiParshah{}).Process(doc, ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !doc.Paragraphs[0].Section.Marker {
		t.Error("marker line not tagged")
	}
	heading := doc.Paragraphs[1].Section
	if !heading.Boundary || heading.Name != "קדושת שבת" {
		t.Errorf("heading = %+v", heading)
	}
	if got := doc.Paragraphs[2].Section; got.Current != "קדושת שבת" || got.Index != 1 {
		t.Errorf("body = %q/%d, want קדושת שבת/1", got.Current, got.Index)
	}
}

func TestMultiParshahSpecialHeadingSubtitle(t *testing.T) {
	doc := textDoc(
		"- בשלח -",
		"שירת הים",
		"מאמר ראשון",
		"אז ישיר משה ובני ישראל את השירה הזאת לה׳ ויאמרו לאמר אשירה לה׳ כי גאה גאה",
	)

	ctx := NewContext()
	ctx.SpecialHeading = true
	if err := (&MultiParshah{}).Process(doc, ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}

	heading := doc.Paragraphs[1].Section
	if !heading.Boundary || heading.Name != "שירת הים מאמר ראשון" {
		t.Errorf("heading = %+v, want subtitle folded into the name", heading)
	}
	if !doc.Paragraphs[2].Section.Marker {
		t.Error("subtitle line not tagged as marker")
	}
	if got := doc.Paragraphs[3].Section; got.Current != "שירת הים מאמר ראשון" || got.Index != 1 {
		t.Errorf("body = %q/%d", got.Current, got.Index)
	}
}

func TestMultiParshahFontSizeHeadings(t *testing.T) {
	size14 := 14.0
	size12 := 12.0

	doc := document.New()
	h := doc.AddParagraph("", document.Normal)
	h.AddRun("דרוש לשבת הגדול", document.RunStyle{FontSize: &size14})
	body := doc.AddParagraph("", document.Normal)
	body.AddRun("שבת הגדול נקרא כן על שם הנס הגדול שנעשה בו במצרים", document.RunStyle{FontSize: &size12})

	line1 := doc.AddParagraph("", document.Normal)
	line1.AddRun("דרוש", document.RunStyle{FontSize: &size14})
	line2 := doc.AddParagraph("", document.Normal)
	line2.AddRun("לשבת שובה", document.RunStyle{FontSize: &size14})
	body2 := doc.AddParagraph("", document.Normal)
	body2.AddRun("שובה ישראל עד ה׳ אלקיך כי כשלת בעונך", document.RunStyle{FontSize: &size12})

	ctx := NewContext()
	ctx.FontSizeHeading = true
	if err := (&MultiParshah{}).Process(doc, ctx); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if s := doc.Paragraphs[0].Section; !s.Boundary || s.Name != "דרוש לשבת הגדול" {
		t.Errorf("single-line heading = %+v", s)
	}
	if s := doc.Paragraphs[1].Section; s.Current != "דרוש לשבת הגדול" || s.Index != 1 {
		t.Errorf("body = %q/%d", s.Current, s.Index)
	}

	if s := doc.Paragraphs[2].Section; !s.Boundary || s.Name != "דרוש\nלשבת שובה" {
		t.Errorf("two-line heading = %+v", s)
	}
	if !doc.Paragraphs[3].Section.Marker {
		t.Error("second heading line not tagged as marker")
	}
	if s := doc.Paragraphs[4].Section; s.Current != "דרוש\nלשבת שובה" || s.Index != 1 {
		t.Errorf("body after two-line heading = %q/%d", s.Current, s.Index)
	}
}
