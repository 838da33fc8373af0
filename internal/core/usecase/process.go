package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/talentops/resume-intake/internal/core/domain"
	"github.com/talentops/resume-intake/internal/core/extract"
	"github.com/talentops/resume-intake/internal/core/ports"
)

// ProcessBatchUseCase runs one full pass: extract every document, fuse its
// name signals, apply the dedup policy against the store snapshot, reconcile
// the combined dataset, and rewrite the store. Per-document failures are
// isolated; only a failed save aborts the run.
type ProcessBatchUseCase struct {
	store   ports.RecordStore
	text    ports.TextExtractor
	parser  ports.ResumeParser
	fields  *extract.Extractor
	builder *RecordBuilder
	log     *slog.Logger
}

func NewProcessBatchUseCase(
	store ports.RecordStore,
	text ports.TextExtractor,
	parser ports.ResumeParser,
	fields *extract.Extractor,
	builder *RecordBuilder,
	log *slog.Logger,
) *ProcessBatchUseCase {
	return &ProcessBatchUseCase{
		store:   store,
		text:    text,
		parser:  parser,
		fields:  fields,
		builder: builder,
		log:     log,
	}
}

func (uc *ProcessBatchUseCase) Run(ctx context.Context, docs []domain.IncomingDocument) (domain.BatchSummary, error) {
	summary := domain.BatchSummary{
		StartedAt: time.Now(),
		Collected: len(docs),
	}

	combined := uc.loadBaseline(ctx)
	idx := newDedupIndex(combined)
	appended := 0

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		rec, ok := uc.buildRecord(ctx, doc)
		if !ok {
			summary.Failed++
			continue
		}

		switch idx.Decide(rec) {
		case DecisionDiscard:
			uc.log.Info("discarding duplicate submission",
				"file", doc.FileName, "reason", "file name and skill set already stored")
			summary.Discarded++
			continue
		case DecisionDuplicate:
			rec.Status = domain.StatusDuplicate
			summary.Duplicate++
		case DecisionNew:
			rec.Status = domain.StatusNew
			summary.New++
		}

		combined = append(combined, rec)
		appended++
		summary.Processed++
	}

	summary.DatasetSize = len(combined)
	if appended == 0 {
		uc.log.Info("no records appended, store left untouched")
		return summary, nil
	}

	reconcile(combined)

	if err := uc.store.Save(ctx, combined); err != nil {
		return summary, domain.WrapError(domain.ErrStoreSave, "save dataset", err)
	}
	return summary, nil
}

// loadBaseline loads the persisted dataset. A load failure is downgraded to
// an empty baseline: the run proceeds without historical dedup context.
func (uc *ProcessBatchUseCase) loadBaseline(ctx context.Context) domain.Dataset {
	loaded, err := uc.store.Load(ctx)
	if err != nil {
		uc.log.Warn("record store load failed, starting with empty baseline", "error", err)
		return nil
	}
	for i := range loaded {
		if loaded[i].Status == "" {
			loaded[i].Status = domain.StatusExisting
		}
	}
	return loaded
}

// buildRecord extracts one document and merges its signals into a record.
// ok is false when text extraction produced nothing usable.
func (uc *ProcessBatchUseCase) buildRecord(ctx context.Context, doc domain.IncomingDocument) (domain.CandidateRecord, bool) {
	text, err := uc.text.Extract(ctx, doc)
	if err != nil {
		uc.log.Warn("text extraction failed, skipping document", "file", doc.FileName, "error", err)
		return domain.CandidateRecord{}, false
	}
	if strings.TrimSpace(text) == "" {
		uc.log.Warn("no text extracted, skipping document", "file", doc.FileName)
		return domain.CandidateRecord{}, false
	}

	var parsed domain.ParsedResume
	if uc.parser != nil {
		parsed, err = uc.parser.Parse(ctx, doc)
		if err != nil {
			uc.log.Warn("parser engine failed, using heuristic extraction only",
				"file", doc.FileName, "error", err)
			parsed = domain.ParsedResume{}
		}
	}

	resume := uc.fields.FromResumeText(ctx, text)
	return uc.builder.Build(ctx, doc, parsed, resume), true
}
