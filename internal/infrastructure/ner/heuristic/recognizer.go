// Package heuristic is an in-process EntityRecognizer. It has no model: a
// PERSON span is approximated by a run of capitalized words. The port exists
// so a real NER service can replace it without touching the extraction
// layer.
package heuristic

import (
	"context"
	"regexp"
)

// Runs of two to four capitalized words, allowing a middle initial.
var personRunRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+(?:[A-Z]\.?\s+)?[A-Z][a-z]+){1,3}\b`)

type Recognizer struct{}

func New() *Recognizer {
	return &Recognizer{}
}

func (r *Recognizer) PersonSpans(_ context.Context, text string) ([]string, error) {
	return personRunRe.FindAllString(text, -1), nil
}
