package fusion

import (
	"testing"

	"github.com/talentops/resume-intake/internal/core/domain"
)

func TestResolvePicksHighestConfidence(t *testing.T) {
	r := NewResolver()
	winner := r.Resolve([]domain.NameCandidate{
		{Text: "Smith John", Source: domain.SourceFileName, Confidence: 3.7},
		{Text: "Priya Sharma", Source: domain.SourceResumeText, Confidence: 5.2},
	})
	if winner != "Priya Sharma" {
		t.Fatalf("Resolve() = %q, want %q", winner, "Priya Sharma")
	}
}

func TestResolveAbsorbsNearDuplicateVariants(t *testing.T) {
	r := NewResolver()
	// "John Smith" and "Jon Smith" are the same person; the variant must
	// not form a competing group even though it is a distinct string.
	winner := r.Resolve([]domain.NameCandidate{
		{Text: "John Smith", Source: domain.SourceResumeText, Confidence: 5.2},
		{Text: "Jon Smith", Source: domain.SourceFileName, Confidence: 3.7},
	})
	if winner != "John Smith" {
		t.Fatalf("Resolve() = %q, want %q", winner, "John Smith")
	}
}

func TestResolveReturnsUnknownWithoutPlausibleCandidates(t *testing.T) {
	r := NewResolver()
	winner := r.Resolve([]domain.NameCandidate{
		{Text: "RESUME", Source: domain.SourceFileName, Confidence: 0},
	})
	if winner != domain.Unknown {
		t.Fatalf("Resolve() = %q, want %q", winner, domain.Unknown)
	}
	if got := r.Resolve(nil); got != domain.Unknown {
		t.Fatalf("Resolve(nil) = %q, want %q", got, domain.Unknown)
	}
}

func TestResolveIsDeterministicAcrossEqualConfidence(t *testing.T) {
	r := NewResolver()
	candidates := []domain.NameCandidate{
		{Text: "Anita Desai", Source: domain.SourceEmailBodyContext, Confidence: 4.7},
		{Text: "Ravi Varma Kumar", Source: domain.SourceSenderDisplayName, Confidence: 4.7},
	}
	first := r.Resolve(candidates)
	for i := 0; i < 10; i++ {
		if got := r.Resolve(candidates); got != first {
			t.Fatalf("Resolve() flapped: %q then %q", first, got)
		}
	}
	// Equal confidence breaks by length, longest first.
	if first != "Ravi Varma Kumar" {
		t.Fatalf("Resolve() = %q, want longest candidate", first)
	}
}

func TestNewResolverWithThresholdRejectsBadValues(t *testing.T) {
	if r := NewResolverWithThreshold(0); r.threshold != DefaultSimilarityThreshold {
		t.Fatalf("threshold = %d, want default", r.threshold)
	}
	if r := NewResolverWithThreshold(101); r.threshold != DefaultSimilarityThreshold {
		t.Fatalf("threshold = %d, want default", r.threshold)
	}
	if r := NewResolverWithThreshold(90); r.threshold != 90 {
		t.Fatalf("threshold = %d, want 90", r.threshold)
	}
}
