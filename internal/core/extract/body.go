package extract

import (
	"context"
	"regexp"
	"strings"
)

const (
	bodyScanLines   = 10
	bodyNERMaxChars = 1500
)

var (
	salutationRe = regexp.MustCompile(`(?i:Dear|Hi|Hello|Greetings)[,\s:]+\s*([A-Z][a-z]+(?: [A-Z][a-z]+){0,2})\b`)
	introRe      = regexp.MustCompile(`(?i:My name is|I am)\s+([A-Z][a-z]+(?: [A-Z][a-z]+){1,3})\b`)
	signatureRe  = regexp.MustCompile(`(?i:Sincerely|Regards|Best regards|Thanks|Yours respectfully)[,\s]*\s*([A-Z][a-z]+(?: [A-Z][a-z]+){0,2})\s*$`)
)

// FromEmailBody extracts a name candidate from an email body. The opening
// lines are scanned for salutations and self-introductions, the closing
// lines for signatures; the first and last non-empty lines compete as raw
// candidates, as do PERSON spans over the body head. The longest plausible
// candidate wins; "" when none do.
func (e *Extractor) FromEmailBody(ctx context.Context, body string) string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	var candidates []string

	head := lines
	if len(head) > bodyScanLines {
		head = head[:bodyScanLines]
	}
	for i, line := range head {
		if m := salutationRe.FindStringSubmatch(line); m != nil {
			candidates = append(candidates, m[1])
		}
		if m := introRe.FindStringSubmatch(line); m != nil {
			candidates = append(candidates, m[1])
		}
		if i == 0 {
			candidates = append(candidates, line)
		}
	}

	tail := lines
	if len(tail) > bodyScanLines {
		tail = tail[len(tail)-bodyScanLines:]
	}
	for i := len(tail) - 1; i >= 0; i-- {
		line := tail[i]
		if m := signatureRe.FindStringSubmatch(line); m != nil {
			candidates = append(candidates, m[1])
		}
		if i == len(tail)-1 {
			candidates = append(candidates, line)
		}
	}

	if e.ner != nil {
		nerText := body
		if len(nerText) > bodyNERMaxChars {
			nerText = nerText[:bodyNERMaxChars]
		}
		if spans, err := e.ner.PersonSpans(ctx, nerText); err == nil {
			candidates = append(candidates, spans...)
		}
	}

	return e.longestPlausible(candidates)
}
