package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/talentops/resume-intake/internal/core/domain"
	"github.com/talentops/resume-intake/internal/core/extract"
	"github.com/talentops/resume-intake/internal/core/fusion"
)

const minPhoneDigits = 7

// RecordBuilder merges the parser engine output, the heuristic resume
// fields, and the email context of one document into a normalized candidate
// record.
type RecordBuilder struct {
	fields   *extract.Extractor
	scorer   *fusion.Scorer
	resolver *fusion.Resolver
}

func NewRecordBuilder(fields *extract.Extractor, scorer *fusion.Scorer, resolver *fusion.Resolver) *RecordBuilder {
	return &RecordBuilder{fields: fields, scorer: scorer, resolver: resolver}
}

func (b *RecordBuilder) Build(
	ctx context.Context,
	doc domain.IncomingDocument,
	parsed domain.ParsedResume,
	resume extract.ResumeFields,
) domain.CandidateRecord {
	email := firstNonEmpty(domain.NormalizeEmail(parsed.Email), domain.NormalizeEmail(resume.Email))

	rec := domain.CandidateRecord{
		CandidateName:   b.resolveName(ctx, doc, parsed, resume, email),
		EmailID:         orUnknown(email),
		PhoneNumber:     orUnknown(b.mergePhone(parsed, resume)),
		TotalExperience: orUnknown(mergeExperience(parsed, resume)),
		Skills:          mergeSkills(parsed.Skills, resume.Skills),
		FileName:        doc.FileName,
		SourceDate:      domain.Unknown,
		Month:           domain.Unknown,
		Year:            domain.Unknown,
	}

	if doc.HasReceivedTime() {
		rec.SourceDate = doc.ReceivedAt.Format("2006-01-02 15:04:05")
		rec.Month = doc.ReceivedAt.Month().String()
		rec.Year = strconv.Itoa(doc.ReceivedAt.Year())
	}
	return rec
}

// resolveName gathers every name signal for the document, scores each, and
// hands the lot to the fusion resolver.
func (b *RecordBuilder) resolveName(
	ctx context.Context,
	doc domain.IncomingDocument,
	parsed domain.ParsedResume,
	resume extract.ResumeFields,
	email string,
) string {
	var candidates []domain.NameCandidate
	add := func(text string, source domain.NameSource) {
		if text = strings.TrimSpace(text); text != "" {
			candidates = append(candidates, b.scorer.Candidate(text, source))
		}
	}

	add(parsed.Name, domain.SourceParserEngine)
	add(resume.Name, domain.SourceResumeText)
	add(doc.SenderDisplayName, domain.SourceSenderDisplayName)
	add(b.fields.FromFileName(doc.FileName), domain.SourceFileName)
	if doc.EmailSubject != "" {
		add(b.fields.FromEmailSubject(ctx, doc.EmailSubject), domain.SourceEmailSubjectContext)
	}
	if doc.EmailBody != "" {
		add(b.fields.FromEmailBody(ctx, doc.EmailBody), domain.SourceEmailBodyContext)
	}
	if email != "" {
		add(b.fields.FromEmailAddress(email), domain.SourceEmailLocalPart)
	}

	return b.resolver.Resolve(candidates)
}

// mergePhone prefers the parser engine number over the heuristic one,
// accepting whichever normalizes to at least seven digits.
func (b *RecordBuilder) mergePhone(parsed domain.ParsedResume, resume extract.ResumeFields) string {
	if p := domain.NormalizePhone(parsed.Phone); len(p) >= minPhoneDigits {
		return p
	}
	if p := domain.NormalizePhone(resume.Phone); len(p) >= minPhoneDigits {
		return p
	}
	return ""
}

// mergeExperience prefers a positive parser engine year count over the
// heuristic experience string.
func mergeExperience(parsed domain.ParsedResume, resume extract.ResumeFields) string {
	if parsed.ExperienceYears > 0 {
		return fmt.Sprintf("%d years", int(parsed.ExperienceYears))
	}
	return resume.Experience
}

// mergeSkills unions both skill lists, trimmed, de-duplicated, and sorted.
func mergeSkills(parserSkills, heuristicSkills []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range [][]string{parserSkills, heuristicSkills} {
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func orUnknown(v string) string {
	if v == "" {
		return domain.Unknown
	}
	return v
}
