package extract

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

const (
	nameSearchLines    = 10
	nameSearchMaxChars = 4000
	directNameLines    = 5
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// headerNoiseRe strips job titles and contact labels from a candidate name
// line before plausibility checking.
var headerNoiseRe = regexp.MustCompile(`(?i)(\s*-\s*|\s*\|\s*|\s*,\s*)\s*(software engineer|data scientist|manager|developer|analyst|specialist|contact|email|phone|profile|summary|experience|education|skills|cv|resume|sr\.|jr\.)\W*`)

// ResumeFields is everything the heuristic pass pulls out of raw resume text.
type ResumeFields struct {
	Name       string
	Email      string
	Phone      string
	Experience string
	Skills     []string
}

// FromResumeText runs the full heuristic field extraction over extracted
// resume text. Every field fails soft to its zero value.
func (e *Extractor) FromResumeText(ctx context.Context, text string) ResumeFields {
	return ResumeFields{
		Name:       e.nameFromResumeText(ctx, text),
		Email:      emailFromText(text),
		Phone:      phoneFromText(text),
		Experience: e.experienceFromText(text),
		Skills:     e.skillsFromText(text),
	}
}

// nameFromResumeText collects PERSON spans from the document head plus the
// top lines with title noise stripped, then picks the best plausible
// candidate, preferring multi-word names and then length.
func (e *Extractor) nameFromResumeText(ctx context.Context, text string) string {
	lines := strings.Split(text, "\n")

	head := lines
	if len(head) > nameSearchLines {
		head = head[:nameSearchLines]
	}
	searchText := strings.Join(head, "\n")
	if len(searchText) > nameSearchMaxChars {
		searchText = searchText[:nameSearchMaxChars]
	}

	var candidates []string
	if e.ner != nil {
		spans, err := e.ner.PersonSpans(ctx, searchText)
		if err == nil {
			for _, span := range spans {
				candidates = append(candidates, strings.TrimSpace(span))
			}
		}
	}

	top := lines
	if len(top) > directNameLines {
		top = top[:directNameLines]
	}
	for _, line := range top {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		candidates = append(candidates, strings.TrimSpace(headerNoiseRe.ReplaceAllString(line, "")))
	}

	return e.bestPlausible(candidates)
}

// bestPlausible filters for plausibility and prefers multi-word candidates,
// breaking ties by length.
func (e *Extractor) bestPlausible(candidates []string) string {
	var plausible []string
	for _, c := range candidates {
		if e.IsPlausibleName(c) {
			plausible = append(plausible, c)
		}
	}
	if len(plausible) == 0 {
		return ""
	}

	var multiWord []string
	for _, c := range plausible {
		if strings.Contains(strings.TrimSpace(c), " ") {
			multiWord = append(multiWord, c)
		}
	}
	if len(multiWord) > 0 {
		return longest(multiWord)
	}
	return longest(plausible)
}

func longest(candidates []string) string {
	best := ""
	for _, c := range candidates {
		if len(c) > len(best) {
			best = c
		}
	}
	return best
}

func emailFromText(text string) string {
	match := emailRe.FindString(text)
	if match == "" {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(match))
}

// skillsFromText matches the fixed skill vocabulary against the lower-cased
// text using word boundaries, returning the sorted de-duplicated hit set.
func (e *Extractor) skillsFromText(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	var found []string
	for _, sp := range e.skillPatterns {
		if _, dup := seen[sp.skill]; dup {
			continue
		}
		if sp.re.MatchString(lower) {
			seen[sp.skill] = struct{}{}
			found = append(found, sp.skill)
		}
	}
	sort.Strings(found)
	return found
}
