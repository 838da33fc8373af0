package ports

import (
	"context"
	"io"

	"github.com/talentops/resume-intake/internal/core/domain"
)

// DocumentSource produces the batch of incoming resume documents for one
// processing pass.
type DocumentSource interface {
	Collect(ctx context.Context) ([]domain.IncomingDocument, error)
}

// TextExtractor turns a stored document into plain text. Failures are
// per-document: the pipeline skips the document and continues.
type TextExtractor interface {
	Extract(ctx context.Context, doc domain.IncomingDocument) (string, error)
}

// EntityRecognizer finds PERSON-labeled spans in arbitrary text. No other
// guarantees: spans may be noisy and are filtered for plausibility by the
// caller.
type EntityRecognizer interface {
	PersonSpans(ctx context.Context, text string) ([]string, error)
}

// ResumeParser is the dedicated parser engine capability. A failed parse is
// not fatal; the pipeline falls back to heuristic extraction.
type ResumeParser interface {
	Parse(ctx context.Context, doc domain.IncomingDocument) (domain.ParsedResume, error)
}

// RecordStore loads the accumulated dataset at the start of a pass and
// rewrites it in full at the end.
type RecordStore interface {
	Load(ctx context.Context) (domain.Dataset, error)
	Save(ctx context.Context, ds domain.Dataset) error
}

// EventPublisher announces completed processing passes to downstream
// consumers.
type EventPublisher interface {
	PublishBatchProcessed(ctx context.Context, summary domain.BatchSummary) error
}

// ObjectStorage persists collected attachment payloads.
type ObjectStorage interface {
	// SaveUnique writes data under name, suffixing the name on collision,
	// and returns the path actually written.
	SaveUnique(ctx context.Context, name string, data io.Reader) (string, error)
}
