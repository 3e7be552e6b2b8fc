// Package hebrew provides the text heuristics shared by the format handlers:
// gematria numeral conversion, filename pattern extraction, Hebrew-calendar
// year detection, legacy header classification and parshah boundary
// detection.
package hebrew

import "strconv"

// Letter tables for gematria composition. 50 is rendered with the final-nun
// form, matching the corpus's existing output; hundreds past 400 stack on ת
// (500 → תק ... 900 → תתק).
var (
	gematriaOnes     = []string{"", "א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט"}
	gematriaTens     = []string{"", "י", "כ", "ל", "מ", "ן", "ס", "ע", "פ", "צ"}
	gematriaHundreds = []string{"", "ק", "ר", "ש", "ת", "תק", "תר", "תש", "תת", "תתק"}
)

// gematriaValues decodes individual letters, accepting both medial and final
// forms where they exist.
var gematriaValues = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 20, 'ך': 20, 'ל': 30, 'מ': 40, 'ם': 40, 'נ': 50, 'ן': 50,
	'ס': 60, 'ע': 70, 'פ': 80, 'ף': 80, 'צ': 90, 'ץ': 90,
	'ק': 100, 'ר': 200, 'ש': 300, 'ת': 400,
}

// NumberToGematria converts a positive integer to Hebrew numeral notation:
// 1 → א, 11 → יא, 21 → כא, 115 → קטו. The values 15 and 16 are rendered as
// טו and טז rather than the letter sums, which would spell a divine name.
// Input outside [1, 999] falls back to the decimal string.
func NumberToGematria(n int) string {
	if n <= 0 || n > 999 {
		return strconv.Itoa(n)
	}

	result := ""
	if n >= 100 {
		result += gematriaHundreds[n/100]
		n %= 100
	}

	if n == 15 {
		return result + "טו"
	}
	if n == 16 {
		return result + "טז"
	}

	if n >= 10 {
		result += gematriaTens[n/10]
		n %= 10
	}
	if n > 0 {
		result += gematriaOnes[n]
	}
	return result
}

// GematriaToNumber sums the letter values of a Hebrew numeral string.
// Returns 0 for empty input or any non-numeral rune.
func GematriaToNumber(s string) int {
	total := 0
	for _, r := range s {
		v, ok := gematriaValues[r]
		if !ok {
			return 0
		}
		total += v
	}
	return total
}

// Common Hebrew words of numeral length that must never be read as section
// numbers.
var gematriaDenylist = map[string]struct{}{
	"מבוא": {}, "פרק": {}, "חלק": {}, "סימן": {}, "דרוש": {}, "מאמר": {},
	"שיחה": {}, "הקדמה": {}, "תוכן": {}, "ענין": {}, "דבר": {}, "מכתב": {},
	"נושא": {}, "הערות": {}, "הגהות": {}, "ביאור": {}, "פסוק": {}, "דין": {},
	"הלכה": {}, "מצוה": {}, "הערה": {},
}

// IsValidGematriaNumber reports whether text reads as a gematria numeral
// rather than an ordinary word. Single letters always count as numerals;
// strings of 2–4 letters count unless denylisted; anything longer never
// does.
func IsValidGematriaNumber(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}
	if len(runes) == 1 {
		return true
	}
	if _, blocked := gematriaDenylist[text]; blocked {
		return false
	}
	return len(runes) <= 4
}
