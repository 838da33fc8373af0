package extract

import (
	"regexp"

	"github.com/talentops/resume-intake/internal/core/domain"
)

// Phone extraction is a cascade of progressively looser patterns. The first
// match that survives validation wins; a match with fewer than 7 digits is
// rejected and the next pattern gets a try.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\+?\d{1,4}[-.\s]?)?(\(?\d{2,5}\)?[-.\s]?)?(\d{2,5}[-.\s]?\d{3,4}|\d{7,10})\b`),
	regexp.MustCompile(`\b(?:\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})\b`),
	regexp.MustCompile(`\b\d{7,15}\b`),
}

// phoneFromText returns the normalized phone number found in text, or "".
func phoneFromText(text string) string {
	for _, re := range phonePatterns {
		match := re.FindString(text)
		if match == "" {
			continue
		}
		digits := domain.NormalizePhone(match)
		if len(digits) >= 7 {
			return digits
		}
	}
	return ""
}
