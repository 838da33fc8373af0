package usecase

import "github.com/talentops/resume-intake/internal/core/domain"

// reconcile performs the final global sweep over the combined dataset: one
// left-to-right pass in which the first record carrying a given contact key
// keeps its status and every later record sharing a key becomes Duplicate.
// A Duplicate flag set by the insert-time policy is never downgraded.
// Dataset order is stable (stored rows first, then this run's insertions)
// and the store rewrites it unchanged, so the pass is deterministic across
// runs.
func reconcile(ds domain.Dataset) {
	seen := make(map[string]struct{})
	for i := range ds {
		keys := ds[i].ContactKeys()

		collides := false
		for _, key := range keys {
			if _, ok := seen[key]; ok {
				collides = true
				break
			}
		}
		for _, key := range keys {
			seen[key] = struct{}{}
		}

		if collides {
			ds[i].Status = domain.StatusDuplicate
		}
	}
}
