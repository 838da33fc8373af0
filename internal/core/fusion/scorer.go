// Package fusion reconciles the name candidates produced by the extraction
// layer into a single winning candidate name.
package fusion

import (
	"strings"
	"unicode/utf8"

	"github.com/talentops/resume-intake/internal/core/domain"
)

// Base confidence per source, ordered by general reliability of the signal.
var sourceBaseScores = map[domain.NameSource]float64{
	domain.SourceParserEngine:        5.0,
	domain.SourceResumeText:          4.5,
	domain.SourceSenderDisplayName:   4.3,
	domain.SourceEmailBodyContext:    4.0,
	domain.SourceEmailSubjectContext: 3.8,
	domain.SourceFileName:            3.0,
	domain.SourceEmailLocalPart:      2.0,
}

const (
	multiWordBonus  = 0.5
	goodLengthBonus = 0.2
	minGoodLength   = 5
	maxGoodLength   = 30
)

// PlausibilityFilter is the syntactic name filter the scorer gates on.
type PlausibilityFilter interface {
	IsPlausibleName(s string) bool
}

// Scorer assigns a confidence to a (name, source) pair. Implausible names
// score zero regardless of source.
type Scorer struct {
	filter PlausibilityFilter
}

func NewScorer(filter PlausibilityFilter) *Scorer {
	return &Scorer{filter: filter}
}

func (s *Scorer) Score(name string, source domain.NameSource) float64 {
	if !s.filter.IsPlausibleName(name) {
		return 0
	}

	score := sourceBaseScores[source]

	if strings.Contains(strings.TrimSpace(name), " ") {
		score += multiWordBonus
	}
	if n := utf8.RuneCountInString(name); n >= minGoodLength && n <= maxGoodLength {
		score += goodLengthBonus
	}
	return score
}

// Candidate builds a scored NameCandidate, for callers assembling the
// resolver input.
func (s *Scorer) Candidate(text string, source domain.NameSource) domain.NameCandidate {
	return domain.NameCandidate{
		Text:       text,
		Source:     source,
		Confidence: s.Score(text, source),
	}
}
