// Package extract derives candidate field values from the individual signals
// carried by an incoming resume document: the extracted text, the file name,
// the email address, the subject line, and the message body. Extractors are
// total: malformed input yields no candidate, never an error.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/talentops/resume-intake/internal/core/ports"
)

// Extractor holds the compiled vocabulary and the injected entity
// recognizer. Construct once, share freely; it is immutable after New.
type Extractor struct {
	vocab          Vocabulary
	ner            ports.EntityRecognizer
	now            func() time.Time
	skillPatterns  []skillPattern
	headerSet      map[string]struct{}
	connectorSet   map[string]struct{}
	stopWordSet    map[string]struct{}
	subjectCleanRe *regexp.Regexp
	titleCleanRe   *regexp.Regexp
	expHeaderRes   []*regexp.Regexp
	expEnderRes    []*regexp.Regexp
}

type skillPattern struct {
	skill string
	re    *regexp.Regexp
}

// Option tweaks extractor construction.
type Option func(*Extractor)

// WithClock overrides the wall clock used by experience date arithmetic.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

func New(vocab Vocabulary, ner ports.EntityRecognizer, opts ...Option) *Extractor {
	e := &Extractor{
		vocab:        vocab,
		ner:          ner,
		now:          time.Now,
		headerSet:    lowerSet(vocab.SectionHeaders),
		connectorSet: lowerSet(vocab.Connectors),
		stopWordSet:  lowerSet(vocab.FilenameStopWords),
	}

	e.skillPatterns = make([]skillPattern, 0, len(vocab.Skills))
	for _, s := range vocab.Skills {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(s)) + `\b`)
		if err != nil {
			continue
		}
		e.skillPatterns = append(e.skillPatterns, skillPattern{skill: s, re: re})
	}

	e.subjectCleanRe = wordListPattern(vocab.SubjectKeywords)
	e.titleCleanRe = wordListPattern(vocab.JobTitles)

	for _, h := range vocab.ExperienceHeaders {
		e.expHeaderRes = append(e.expHeaderRes, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(h)))
	}
	for _, h := range vocab.ExperienceEnders {
		e.expEnderRes = append(e.expEnderRes, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(h)))
	}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

func lowerSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// wordListPattern builds a case-insensitive whole-word alternation for a
// fixed keyword list.
func wordListPattern(words []string) *regexp.Regexp {
	if len(words) == 0 {
		return regexp.MustCompile(`\b\B`) // matches nothing
	}
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
