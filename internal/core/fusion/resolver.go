package fusion

import (
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/talentops/resume-intake/internal/core/domain"
)

// DefaultSimilarityThreshold is the token-sort-ratio (0-100) above which two
// candidates are treated as the same underlying name.
const DefaultSimilarityThreshold = 85

// Resolver picks one winning name out of all scored candidates for a
// document. Candidates are walked greedily in (confidence desc, length desc)
// order; a candidate fuzzily matching an already accepted representative is
// absorbed into that group rather than competing on its own. This stops a
// low-confidence near-duplicate of the best name from winning on string
// length alone.
type Resolver struct {
	threshold int
}

func NewResolver() *Resolver {
	return &Resolver{threshold: DefaultSimilarityThreshold}
}

func NewResolverWithThreshold(threshold int) *Resolver {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultSimilarityThreshold
	}
	return &Resolver{threshold: threshold}
}

// Resolve returns the winning name, or domain.Unknown when no candidate is
// plausible. Deterministic: the same candidate sequence always yields the
// same winner.
func (r *Resolver) Resolve(candidates []domain.NameCandidate) string {
	valid := make([]domain.NameCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Confidence > 0 {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return domain.Unknown
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Confidence != valid[j].Confidence {
			return valid[i].Confidence > valid[j].Confidence
		}
		return len(valid[i].Text) > len(valid[j].Text)
	})

	var representatives []string
	for _, c := range valid {
		if !r.covered(c.Text, representatives) {
			representatives = append(representatives, c.Text)
		}
	}
	return representatives[0]
}

func (r *Resolver) covered(name string, representatives []string) bool {
	for _, rep := range representatives {
		if fuzzy.TokenSortRatio(name, rep) > r.threshold {
			return true
		}
	}
	return false
}
