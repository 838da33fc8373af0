package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	digitRunRe = regexp.MustCompile(`\d{3,}`)
	oddSymbols = "@#$%^&*()_+={}[]|\\:;\"<>,?/~`!"
)

// IsPlausibleName decides whether s is syntactically an acceptable human
// name. Every check is a necessary condition; any failure rejects.
func (e *Extractor) IsPlausibleName(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	words := strings.Fields(s)
	if len(words) == 0 || len(words) > 6 {
		return false
	}

	if len(words) == 1 {
		// A single-word name must look like "Cher", not "cv" or "RESUME".
		if !startsUpper(s) || utf8.RuneCountInString(s) <= 2 || isAllUpper(s) {
			return false
		}
	}

	if digitRunRe.MatchString(s) {
		return false
	}
	if countAny(s, oddSymbols) > 1 {
		return false
	}

	if _, isHeader := e.headerSet[strings.ToLower(s)]; isHeader {
		return false
	}

	for _, w := range words {
		if startsUpper(w) {
			continue
		}
		if _, ok := e.connectorSet[strings.ToLower(w)]; !ok {
			return false
		}
	}

	// Multi-word strings that are entirely lowercase once delimiters are
	// stripped are section fragments, not names.
	stripped := strings.NewReplacer(" ", "", "-", "", ".", "").Replace(s)
	if stripped != "" && isAllLower(stripped) && len(words) > 1 {
		return false
	}

	return true
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func isAllUpper(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper) && !strings.ContainsFunc(s, unicode.IsLower)
}

func isAllLower(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower) && !strings.ContainsFunc(s, unicode.IsUpper)
}

func countAny(s, chars string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(chars, r) {
			n++
		}
	}
	return n
}
