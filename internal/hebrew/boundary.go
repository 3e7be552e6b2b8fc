package hebrew

import (
	"regexp"
	"strings"
)

// parshahNames is the closed catalog of section names recognized as
// boundaries, including common spelling variants.
var parshahNames = map[string]struct{}{
	// בראשית
	"בראשית": {}, "נח": {}, "לך": {}, "לך לך": {}, "וירא": {},
	"חיי שרה": {}, "חי שרה": {}, "חיי": {}, "תולדות": {}, "ויצא": {},
	"וישלח": {}, "וישב": {}, "מקץ": {}, "ויגש": {}, "ויחי": {},
	// שמות
	"שמות": {}, "וארא": {}, "בא": {}, "בשלח": {}, "יתרו": {},
	"משפטים": {}, "תרומה": {}, "תצוה": {}, "כי תשא": {}, "תשא": {},
	"ויקהל": {}, "פקודי": {}, "ויקהל פקודי": {},
	// ויקרא
	"ויקרא": {}, "צו": {}, "שמיני": {}, "תזריע": {}, "מצורע": {},
	"תזריע מצורע": {}, "אחרי מות": {}, "אחרי": {}, "קדושים": {},
	"אחרי קדושים": {}, "אחרי מות קדושים": {}, "אמור": {}, "בהר": {},
	"בחקתי": {}, "בחקותי": {}, "בהר בחקתי": {}, "בהר בחקותי": {},
	// במדבר
	"במדבר": {}, "נשא": {}, "בהעלתך": {}, "בהעלותך": {}, "שלח": {},
	"שלח לך": {}, "קרח": {}, "חקת": {}, "בלק": {}, "פנחס": {},
	"פינחס": {}, "מטות": {}, "מסעי": {}, "מטות מסעי": {},
	// דברים
	"דברים": {}, "ואתחנן": {}, "עקב": {}, "ראה": {}, "שפטים": {},
	"שופטים": {}, "כי תצא": {}, "תצא": {}, "כי תבא": {}, "תבוא": {},
	"כי תבוא": {}, "נצבים": {}, "וילך": {}, "נצבים וילך": {},
	"האזינו": {}, "וזאת הברכה": {}, "ברכה": {},
}

// KnownParshah reports whether name (quote marks stripped) is in the
// catalog.
func KnownParshah(name string) bool {
	_, ok := parshahNames[normalizeQuotes(name)]
	return ok
}

func normalizeQuotes(s string) string {
	return strings.NewReplacer(`"`, "", "'", "", "״", "", "׳", "").Replace(s)
}

var (
	simanLineRe        = regexp.MustCompile(`^([א-ת]{1,4})[.\s\t]*$`)
	parshahPrefixRe    = regexp.MustCompile(`^פרשת\s+([א-ת\s]+?)$`)
	parshahYearRe      = regexp.MustCompile(`^פרשת\s+([א-ת\s]+?)(?:\s+שנת|\s*[-–—])\s*(.+?)$`)
	parshahBareYearRe  = regexp.MustCompile(`^פרשת\s+([א-ת\s]+?)\s+(תש[\x{0590}-\x{05FF}״׳"]{1,3})$`)
	standaloneTrailRe  = regexp.MustCompile(`^([א-ת\s]+?)\s*[-–—]\s*(.+?)$`)
	parenthesizedRe    = regexp.MustCompile(`^[()]+.+[()]+$`)
	invisibleFormatSet = "\u200e\u200f\ufeff"
)

// Boundary is the result of parshah boundary detection.
type Boundary struct {
	IsBoundary bool
	Name       string
	Year       string
}

// DetectParshahBoundary decides whether text opens a new section. prevText
// is the previous paragraph's text ("" when absent) and disambiguates a
// bare name: a known name standing alone only counts as a boundary when
// the preceding paragraph was empty, an ornament marker, or a
// parenthesized page-number artifact. enableSiman additionally accepts a
// bare letter-numeral line as a siman boundary.
func DetectParshahBoundary(text, prevText string, enableSiman bool) Boundary {
	if text == "" {
		return Boundary{}
	}

	txt := strings.Trim(strings.TrimSpace(text), invisibleFormatSet)
	if len([]rune(txt)) > 50 {
		return Boundary{}
	}

	if enableSiman && len([]rune(txt)) <= 10 {
		if m := simanLineRe.FindStringSubmatch(txt); m != nil {
			if IsValidGematriaNumber(m[1]) {
				return Boundary{IsBoundary: true, Name: m[1] + "."}
			}
		}
	}

	// "פרשת <name>"
	if m := parshahPrefixRe.FindStringSubmatch(txt); m != nil {
		name := strings.TrimSpace(m[1])
		if KnownParshah(name) {
			return Boundary{IsBoundary: true, Name: name, Year: ExtractYearFromText(txt)}
		}
	}

	// "פרשת <name> <year>" with no separator before the year.
	if m := parshahBareYearRe.FindStringSubmatch(txt); m != nil {
		name := strings.TrimSpace(m[1])
		if KnownParshah(name) {
			return Boundary{IsBoundary: true, Name: name, Year: ExtractYearFromText(m[2])}
		}
	}

	// "פרשת <name> - <year>"
	if m := parshahYearRe.FindStringSubmatch(txt); m != nil {
		name := strings.TrimSpace(m[1])
		if KnownParshah(name) {
			year := ExtractYearFromText(strings.TrimSpace(m[2]))
			if year == "" {
				year = ExtractYearFromText(txt)
			}
			return Boundary{IsBoundary: true, Name: name, Year: year}
		}
	}

	// "<name> - <word>" without the prefix.
	if m := standaloneTrailRe.FindStringSubmatch(txt); m != nil {
		name := strings.TrimSpace(m[1])
		if KnownParshah(name) {
			return Boundary{IsBoundary: true, Name: name}
		}
	}

	// Bare known name: only with a qualifying previous paragraph.
	normalized := normalizeQuotes(txt)
	if _, ok := parshahNames[normalized]; ok {
		prev := strings.TrimSpace(prevText)
		switch prev {
		case "", "*", "ה", "***", "* * *":
			return Boundary{IsBoundary: true, Name: normalized}
		}
		if parenthesizedRe.MatchString(prev) {
			return Boundary{IsBoundary: true, Name: normalized}
		}
	}

	return Boundary{}
}
