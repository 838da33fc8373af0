package extract

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	copySuffixRe   = regexp.MustCompile(`(?i)\s*\(?\d+\)?$|\s*[-_]?copy\s*$`)
	resumeTokenRe  = regexp.MustCompile(`(?i)^\W*(resume|cv|bio|profile)\W*|\W*(resume|cv|bio|profile)\W*$`)
	fileDelimiters = regexp.MustCompile(`[_\-\s.]+`)
	allDigitsRe    = regexp.MustCompile(`^\d+$`)
)

const maxFilenameToken = 25

// FromFileName derives a name candidate from a resume file name: copy
// suffixes and resume/cv tokens are stripped, the remainder is split on
// delimiters, junk tokens discarded, and the rest capitalized. Returns ""
// when nothing survives; plausibility is the caller's job.
func (e *Extractor) FromFileName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.TrimSpace(copySuffixRe.ReplaceAllString(base, ""))
	base = strings.TrimSpace(resumeTokenRe.ReplaceAllString(base, ""))

	var kept []string
	for _, part := range fileDelimiters.Split(base, -1) {
		if utf8.RuneCountInString(part) <= 1 || utf8.RuneCountInString(part) >= maxFilenameToken {
			continue
		}
		if allDigitsRe.MatchString(part) {
			continue
		}
		if _, stop := e.stopWordSet[strings.ToLower(part)]; stop {
			continue
		}
		kept = append(kept, capitalize(part))
	}
	return strings.Join(kept, " ")
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(lower)
	return strings.ToUpper(string(r)) + lower[size:]
}
