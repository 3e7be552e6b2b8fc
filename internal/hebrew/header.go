package hebrew

import (
	"regexp"
	"strings"
)

// Date/place/occasion prefixes that mark legacy title lines in the corpus.
var headerHints = []*regexp.Regexp{
	regexp.MustCompile(`^דברות`),
	regexp.MustCompile(`^סדר`),
	regexp.MustCompile(`^פרשת`),
	regexp.MustCompile(`^שנת`),
	regexp.MustCompile(`^תש["׳]`),
	regexp.MustCompile(`^ס"ג`),
	regexp.MustCompile(`^בעיר`),
	regexp.MustCompile(`^ב"ה`),
	regexp.MustCompile(`^ליקוטי`),
	regexp.MustCompile(`^במסיבת`),
	regexp.MustCompile(`^מוצ"ש`),
	regexp.MustCompile(`^מוצאי`),
	regexp.MustCompile(`^מוצש"ק`),
	regexp.MustCompile(`^בבית.*התורה`),
	regexp.MustCompile(`^שבת`),
	regexp.MustCompile(`^פרשת.*שנת`),
	regexp.MustCompile(`^כ"ק`),
	regexp.MustCompile(`לפ"ק$`),
	regexp.MustCompile(`^יום.*פרשת.*שנת`),
	regexp.MustCompile(`^יום\s+[א-ת]['"]`),
}

var headerPunct = regexp.MustCompile(`[.!?,\[\]*]`)

// IsOldHeader reports whether a paragraph looks like a legacy title line
// that header filtering should discard. Empty and single-character
// paragraphs are always preserved. Short unpunctuated lines are assumed to
// be titles.
func IsOldHeader(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return false
	}
	if len([]rune(t)) == 1 {
		return false
	}
	for _, re := range headerHints {
		if re.MatchString(t) {
			return true
		}
	}
	return len([]rune(t)) < 25 && !headerPunct.MatchString(t)
}

// ShouldStartContent reports whether a paragraph looks like substantive
// body content, either a bracketed quotation or a long paragraph. Such a
// paragraph ends the header block.
func ShouldStartContent(text string) bool {
	t := strings.TrimSpace(text)
	if strings.ContainsAny(t, "[]") {
		return true
	}
	return len([]rune(t)) >= 60
}
