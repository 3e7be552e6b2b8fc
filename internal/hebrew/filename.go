package hebrew

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	mekorosRe  = regexp.MustCompile(`^me?koros0*(\d*)$`)
	hakdomoRe  = regexp.MustCompile(`^hakdomo0*(\d*)$`)
	chelekRe   = regexp.MustCompile(`^(?:chelek|חלק)0*(\d+)([a-z])?$`)
	perekRe    = regexp.MustCompile(`^perek0*(\d+)([a-z])?$`)
	trailNumRe = regexp.MustCompile(`^(.*?)(\d+)$`)
)

// ExtractHeading4Info derives a Hebrew H4 label from a filename stem.
//
//	perek1    → "פרק א"
//	perek01a  → "פרק א 1" (trailing letter becomes its alphabet position)
//	mekoros2  → "מקורות ב"
//	hakdomo   → "הקדמה"
//
// Returns "" when no vocabulary pattern matches.
func ExtractHeading4Info(stem string) string {
	s := strings.ToLower(strings.TrimSpace(stem))

	if m := mekorosRe.FindStringSubmatch(s); m != nil {
		return withOptionalNumber("מקורות", m[1])
	}
	if m := hakdomoRe.FindStringSubmatch(s); m != nil {
		return withOptionalNumber("הקדמה", m[1])
	}
	if m := chelekRe.FindStringSubmatch(s); m != nil {
		return numberedLabel("חלק", m[1], m[2], false)
	}
	if m := perekRe.FindStringSubmatch(s); m != nil {
		return numberedLabel("פרק", m[1], m[2], false)
	}
	return ""
}

// ExtractDafHeadings derives the H3/H4 pair for daf-mode files.
//
//	perek1a  → ("פרק א", "חלק א")
//	perek1   → ("פרק א", "")
//	mekoros2 → ("מקורות ב", "")
//
// An unmatched stem falls back to the stem itself as H3, with a trailing
// number (if any) peeled off into a "חלק" H4.
func ExtractDafHeadings(stem string) (h3, h4 string) {
	s := strings.ToLower(strings.TrimSpace(stem))

	if m := mekorosRe.FindStringSubmatch(s); m != nil {
		return withOptionalNumber("מקורות", m[1]), ""
	}
	if m := hakdomoRe.FindStringSubmatch(s); m != nil {
		return withOptionalNumber("הקדמה", m[1]), ""
	}
	if m := chelekRe.FindStringSubmatch(s); m != nil {
		return numberedLabel("חלק", m[1], "", false), letterChelek(m[2])
	}
	if m := perekRe.FindStringSubmatch(s); m != nil {
		return numberedLabel("פרק", m[1], "", false), letterChelek(m[2])
	}

	// Last resort: the stem is its own heading.
	if m := trailNumRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[2])
		return m[1], "חלק " + NumberToGematria(n)
	}
	return s, ""
}

func withOptionalNumber(label, num string) string {
	if num == "" {
		return label
	}
	n, _ := strconv.Atoi(num)
	return label + " " + NumberToGematria(n)
}

// numberedLabel renders "<label> <gematria(num)>", appending the trailing
// letter's alphabet position as a decimal when asGematria is false.
func numberedLabel(label, num, letter string, asGematria bool) string {
	n, _ := strconv.Atoi(num)
	out := label + " " + NumberToGematria(n)
	if letter != "" {
		pos := int(letter[0]-'a') + 1
		if asGematria {
			out += " " + NumberToGematria(pos)
		} else {
			out += " " + strconv.Itoa(pos)
		}
	}
	return out
}

// letterChelek maps an optional trailing latin letter to a "חלק" H4 via its
// alphabet position (a=1, b=2, ...).
func letterChelek(letter string) string {
	if letter == "" {
		return ""
	}
	return "חלק " + NumberToGematria(int(letter[0]-'a')+1)
}

// Hebrew-calendar years in this corpus start with taf-shin and run 3-4
// letters, possibly with a geresh or gershayim inserted (תש״כ, תשנ״ט).
var (
	yearSplitRe = regexp.MustCompile(`[\s\-–—_]+`)
	yearRe      = regexp.MustCompile(`^תש[\x{0590}-\x{05FF}״׳"]{1,3}$`)
	yearTextRe  = regexp.MustCompile(`תש[\x{0590}-\x{05FF}״׳"]{1,3}`)
)

// yearLetters counts the letters of a year token with quote marks removed.
func yearLetters(tok string) int {
	return len([]rune(normalizeQuotes(tok)))
}

// ExtractYear finds a Hebrew year token in a filename stem (תש״כ, תשנ״ט...).
// Returns "" when absent; a year is never required.
func ExtractYear(stem string) string {
	for _, part := range yearSplitRe.Split(strings.TrimSpace(stem), -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n := yearLetters(part); yearRe.MatchString(part) && n >= 3 && n <= 4 {
			return part
		}
	}
	// Fallback: any token with the תש prefix and plausible length.
	for _, part := range yearSplitRe.Split(strings.TrimSpace(stem), -1) {
		r := []rune(part)
		if len(r) >= 3 && len(r) <= 4 && strings.HasPrefix(part, "תש") {
			return part
		}
	}
	return ""
}

// ExtractYearFromText finds the first Hebrew year token inside free text.
func ExtractYearFromText(text string) string {
	if text == "" {
		return ""
	}
	for _, m := range yearTextRe.FindAllString(text, -1) {
		if n := yearLetters(m); n >= 3 && n <= 4 {
			return m
		}
	}
	return ""
}
