package hebrew

import (
	"regexp"
	"strings"
)

var (
	footnoteMarkerRe = regexp.MustCompile(`>[\d\x{0590}-\x{05FF}]+<`)
	printerCodeRe    = regexp.MustCompile(`(BNARF|OISAR|BSNF)\s+[A-Z]\s+\d+\*?`)
	angleBracketRe   = regexp.MustCompile(`[<>]`)
	digitsRe         = regexp.MustCompile(`\d+\.?\d*`)
	multiDashRe      = regexp.MustCompile(`[-–—]{2,}`)
	latinRe          = regexp.MustCompile(`[A-Za-z]+`)
	multiSpaceRe     = regexp.MustCompile(`\s+`)
)

// ContainsHebrew reports whether s has at least one character in the
// Hebrew Unicode block.
func ContainsHebrew(s string) bool {
	for _, r := range s {
		if r >= 0x0590 && r <= 0x05FF {
			return true
		}
	}
	return false
}

// CleanDOSText strips typesetting artifacts from CP862-era Hebrew text:
// footnote markers like >3< or >3ט<, printer control words, stray
// numbers, Latin codes, and runs of dashes. Dot-prefixed formatting
// lines and lines with no Hebrew at all are dropped; empty lines are
// kept as paragraph breaks.
func CleanDOSText(text string) string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			cleaned = append(cleaned, "")
			continue
		}
		if strings.HasPrefix(line, ".") {
			continue
		}
		if !ContainsHebrew(line) {
			continue
		}

		line = footnoteMarkerRe.ReplaceAllString(line, "")
		line = printerCodeRe.ReplaceAllString(line, "")
		line = angleBracketRe.ReplaceAllString(line, "")
		line = digitsRe.ReplaceAllString(line, "")
		line = strings.ReplaceAll(line, "*", "")
		line = multiDashRe.ReplaceAllString(line, "")
		line = latinRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(multiSpaceRe.ReplaceAllString(line, " "))

		if line != "" && ContainsHebrew(line) {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
