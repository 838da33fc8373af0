package domain

import (
	"sort"
	"strings"
)

// Unknown is the sentinel written into any field no signal could fill.
const Unknown = "unknown"

type RecordStatus string

const (
	StatusNew       RecordStatus = "New"
	StatusDuplicate RecordStatus = "Duplicate"
	StatusExisting  RecordStatus = "Existing"
)

// CandidateRecord is one normalized row of the persistent dataset. Only
// Status changes after construction, and only during reconciliation.
type CandidateRecord struct {
	SourceDate      string
	Month           string
	Year            string
	Skills          []string
	CandidateName   string
	TotalExperience string
	EmailID         string
	PhoneNumber     string
	FileName        string
	Status          RecordStatus
}

// SkillList renders the skill set the way the store persists it.
func (r CandidateRecord) SkillList() string {
	if len(r.Skills) == 0 {
		return Unknown
	}
	return strings.Join(r.Skills, ", ")
}

// ContactKeys returns the normalized phone and email identity signals,
// omitting empty or unknown values.
func (r CandidateRecord) ContactKeys() []string {
	keys := make([]string, 0, 2)
	if p := NormalizePhone(r.PhoneNumber); p != "" {
		keys = append(keys, p)
	}
	if e := NormalizeEmail(r.EmailID); e != "" {
		keys = append(keys, e)
	}
	return keys
}

// FileSkillKey builds the hard-exclusion key from the file name and the
// frozen skill set. ok is false when either half is empty.
func (r CandidateRecord) FileSkillKey() (key string, ok bool) {
	name := strings.ToLower(strings.TrimSpace(r.FileName))
	if name == "" || name == strings.ToLower(Unknown) {
		return "", false
	}
	skills := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) == 0 {
		return "", false
	}
	sort.Strings(skills)
	return name + "|" + strings.Join(skills, ";"), true
}

// Dataset is the ordered accumulated record set. Order is load order for
// persisted rows followed by insertion order for the current run, and the
// store rewrites it in that same order, which keeps reconciliation
// deterministic across runs.
type Dataset []CandidateRecord

// NormalizePhone strips every non-digit and drops a leading "91" country
// code when the remainder is a 10-digit subscriber number. Unknown and
// empty inputs normalize to "".
func NormalizePhone(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), Unknown) {
		return ""
	}
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		digits = digits[2:]
	}
	return digits
}

// NormalizeEmail lower-cases and trims. Unknown normalizes to "".
func NormalizeEmail(raw string) string {
	e := strings.ToLower(strings.TrimSpace(raw))
	if e == strings.ToLower(Unknown) {
		return ""
	}
	return e
}

// ParseSkillList splits a persisted skill cell back into the skill set.
func ParseSkillList(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" || strings.EqualFold(cell, Unknown) {
		return nil
	}
	parts := strings.Split(cell, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
