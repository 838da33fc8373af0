package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	trailingDigitsRe = regexp.MustCompile(`\d+$`)
	nonWordDotRe     = regexp.MustCompile(`[^\w.]`)
	localDelimiters  = regexp.MustCompile(`[._\-]+`)
)

// FromEmailAddress derives a name candidate from the local part of an email
// address: trailing digit runs and stray punctuation are dropped, the rest
// split, filtered, and capitalized. Returns "" for non-addresses.
func (e *Extractor) FromEmailAddress(addr string) string {
	at := strings.Index(addr, "@")
	if at <= 0 {
		return ""
	}
	local := addr[:at]
	local = trailingDigitsRe.ReplaceAllString(local, "")
	local = nonWordDotRe.ReplaceAllString(local, "")

	var kept []string
	for _, part := range localDelimiters.Split(local, -1) {
		if utf8.RuneCountInString(part) <= 1 || allDigitsRe.MatchString(part) {
			continue
		}
		kept = append(kept, capitalize(part))
	}
	return strings.Join(kept, " ")
}
