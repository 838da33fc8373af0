package usecase

import "github.com/talentops/resume-intake/internal/core/domain"

// Decision is the dedup policy verdict for one incoming record.
type Decision int

const (
	// DecisionDiscard drops the record entirely: its (file name, skill set)
	// pair already exists in the store.
	DecisionDiscard Decision = iota
	// DecisionDuplicate appends the record flagged Duplicate: it shares a
	// contact key with a stored record.
	DecisionDuplicate
	// DecisionNew appends the record as New.
	DecisionNew
)

// dedupIndex is a snapshot of the store's identity keys, built once from the
// dataset as loaded at run start. It is deliberately not updated while the
// run appends records; the reconciler performs the global sweep afterwards.
type dedupIndex struct {
	contacts   map[string]struct{}
	fileSkills map[string]struct{}
}

func newDedupIndex(ds domain.Dataset) *dedupIndex {
	idx := &dedupIndex{
		contacts:   make(map[string]struct{}),
		fileSkills: make(map[string]struct{}),
	}
	for _, rec := range ds {
		for _, key := range rec.ContactKeys() {
			idx.contacts[key] = struct{}{}
		}
		if key, ok := rec.FileSkillKey(); ok {
			idx.fileSkills[key] = struct{}{}
		}
	}
	return idx
}

func (idx *dedupIndex) Decide(rec domain.CandidateRecord) Decision {
	if key, ok := rec.FileSkillKey(); ok {
		if _, exists := idx.fileSkills[key]; exists {
			return DecisionDiscard
		}
	}
	for _, key := range rec.ContactKeys() {
		if _, exists := idx.contacts[key]; exists {
			return DecisionDuplicate
		}
	}
	return DecisionNew
}
