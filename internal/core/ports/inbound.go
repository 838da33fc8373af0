package ports

import (
	"context"

	"github.com/talentops/resume-intake/internal/core/domain"
)

// BatchProcessor runs one full extract-fuse-dedup-reconcile pass over a
// batch of incoming documents.
type BatchProcessor interface {
	Run(ctx context.Context, docs []domain.IncomingDocument) (domain.BatchSummary, error)
}
