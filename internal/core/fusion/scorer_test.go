package fusion

import (
	"math"
	"testing"

	"github.com/talentops/resume-intake/internal/core/domain"
)

type filterFake struct {
	reject map[string]bool
}

func (f *filterFake) IsPlausibleName(s string) bool {
	return !f.reject[s]
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreAddsBonuses(t *testing.T) {
	s := NewScorer(&filterFake{})

	// Multi-word, good length: base + 0.5 + 0.2.
	if got := s.Score("John Smith", domain.SourceResumeText); !almostEqual(got, 5.2) {
		t.Errorf("Score(resume text) = %v, want 5.2", got)
	}
	// Single short word: base only.
	if got := s.Score("Cher", domain.SourceFileName); !almostEqual(got, 3.0) {
		t.Errorf("Score(filename) = %v, want 3.0", got)
	}
	// Single word of good length: base + 0.2.
	if got := s.Score("Madonna", domain.SourceEmailLocalPart); !almostEqual(got, 2.2) {
		t.Errorf("Score(local part) = %v, want 2.2", got)
	}
}

func TestScoreRanksSourcesByReliability(t *testing.T) {
	s := NewScorer(&filterFake{})
	order := []domain.NameSource{
		domain.SourceParserEngine,
		domain.SourceResumeText,
		domain.SourceSenderDisplayName,
		domain.SourceEmailBodyContext,
		domain.SourceEmailSubjectContext,
		domain.SourceFileName,
		domain.SourceEmailLocalPart,
	}
	prev := math.Inf(1)
	for _, src := range order {
		got := s.Score("John Smith", src)
		if got >= prev {
			t.Fatalf("source %s scored %v, not below previous %v", src, got, prev)
		}
		prev = got
	}
}

func TestScoreZeroForImplausibleName(t *testing.T) {
	s := NewScorer(&filterFake{reject: map[string]bool{"RESUME": true}})
	if got := s.Score("RESUME", domain.SourceParserEngine); got != 0 {
		t.Fatalf("Score(implausible) = %v, want 0", got)
	}
}
