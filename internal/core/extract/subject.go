package extract

import (
	"context"
	"regexp"
	"strings"
)

var (
	nonAlnumRe = regexp.MustCompile(`[\W_]+`)
	capRunRe   = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+){1,3}\b`)
)

const minSubjectLenForNER = 10

// FromEmailSubject extracts a name candidate from a subject line. Known
// application keywords and job titles are stripped first; capitalized-word
// runs, PERSON spans from the recognizer, and the whole cleaned subject all
// compete. The longest plausible candidate wins; "" when none do.
func (e *Extractor) FromEmailSubject(ctx context.Context, subject string) string {
	clean := e.subjectCleanRe.ReplaceAllString(subject, "")
	clean = e.titleCleanRe.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(nonAlnumRe.ReplaceAllString(clean, " "))

	candidates := capRunRe.FindAllString(clean, -1)

	var capitalized []string
	for _, word := range strings.Fields(clean) {
		capitalized = append(capitalized, capitalize(word))
	}
	if whole := strings.Join(capitalized, " "); whole != "" {
		candidates = append(candidates, whole)
	}

	if e.ner != nil && len(subject) > minSubjectLenForNER {
		if spans, err := e.ner.PersonSpans(ctx, subject); err == nil {
			candidates = append(candidates, spans...)
		}
	}

	return e.longestPlausible(candidates)
}

// longestPlausible returns the longest candidate passing the plausibility
// filter, or "".
func (e *Extractor) longestPlausible(candidates []string) string {
	best := ""
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if len(c) > len(best) && e.IsPlausibleName(c) {
			best = c
		}
	}
	return best
}
