package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/talentops/resume-intake/internal/config"
	"github.com/talentops/resume-intake/internal/core/extract"
	"github.com/talentops/resume-intake/internal/core/fusion"
	"github.com/talentops/resume-intake/internal/core/ports"
	"github.com/talentops/resume-intake/internal/core/usecase"
	"github.com/talentops/resume-intake/internal/infrastructure/collector/imapmail"
	"github.com/talentops/resume-intake/internal/infrastructure/collector/localdir"
	"github.com/talentops/resume-intake/internal/infrastructure/extractor/doctext"
	"github.com/talentops/resume-intake/internal/infrastructure/ner/heuristic"
	"github.com/talentops/resume-intake/internal/infrastructure/parser/parserhttp"
	"github.com/talentops/resume-intake/internal/infrastructure/queue/nats"
	"github.com/talentops/resume-intake/internal/infrastructure/storage/localfs"
	storeexcel "github.com/talentops/resume-intake/internal/infrastructure/store/excel"
	storepostgres "github.com/talentops/resume-intake/internal/infrastructure/store/postgres"
	"github.com/talentops/resume-intake/internal/observability/logging"
	"github.com/talentops/resume-intake/internal/observability/metrics"
)

const serviceName = "resume-intake"

type App struct {
	Config  config.Config
	Log     *slog.Logger
	Metrics *metrics.BatchMetrics

	Source    ports.DocumentSource
	Store     ports.RecordStore
	Publisher ports.EventPublisher
	ProcessUC ports.BatchProcessor

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	log := logging.NewJSONLogger(serviceName, cfg.LogLevel)

	vocab, err := config.LoadVocabulary(cfg.VocabularyPath)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	source, err := newSource(cfg, storage, log)
	if err != nil {
		return nil, err
	}
	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var publisher ports.EventPublisher
	var closePublisher func()
	if cfg.NATSURL != "" {
		natsPub, err := nats.New(cfg.NATSURL, cfg.NATSSubject)
		if err != nil {
			closeStore()
			return nil, fmt.Errorf("init event publisher: %w", err)
		}
		publisher = natsPub
		closePublisher = natsPub.Close
	}

	var parser ports.ResumeParser
	if cfg.ParserURL != "" {
		parser = parserhttp.New(cfg.ParserURL, parserhttp.Options{
			Timeout:           cfg.ParserTimeout,
			RequestsPerSecond: cfg.ParserRPS,
		})
	}

	fields := extract.New(vocab, heuristic.New())
	scorer := fusion.NewScorer(fields)
	builder := usecase.NewRecordBuilder(fields, scorer, fusion.NewResolver())
	processUC := usecase.NewProcessBatchUseCase(store, doctext.New(), parser, fields, builder, log)

	return &App{
		Config:    cfg,
		Log:       log,
		Metrics:   metrics.NewBatchMetrics(serviceName),
		Source:    source,
		Store:     store,
		Publisher: publisher,
		ProcessUC: processUC,
		closeFn: func() {
			if closePublisher != nil {
				closePublisher()
			}
			closeStore()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

func newSource(cfg config.Config, storage ports.ObjectStorage, log *slog.Logger) (ports.DocumentSource, error) {
	extensions := splitList(cfg.AttachmentExtensions)
	switch cfg.Collector {
	case "imap":
		return imapmail.New(cfg.IMAPAddr, cfg.IMAPUsername, cfg.IMAPPassword, storage, log, imapmail.Options{
			Mailbox:           cfg.IMAPMailbox,
			Lookback:          time.Duration(cfg.IMAPLookbackHours) * time.Hour,
			AllowedExtensions: extensions,
			SkipFileKeywords:  splitList(cfg.AttachmentSkipWords),

			AttachmentNameKeywords: splitList(cfg.AttachmentNameKeywords),
			SubjectKeywords:        splitList(cfg.SubjectKeywords),
			BodyKeywords:           splitList(cfg.BodyKeywords),
		}), nil
	case "localdir":
		return localdir.New(cfg.DropDir, log, extensions), nil
	default:
		return nil, fmt.Errorf("unknown collector %q", cfg.Collector)
	}
}

func newStore(ctx context.Context, cfg config.Config) (ports.RecordStore, func(), error) {
	switch cfg.Store {
	case "excel":
		return storeexcel.New(cfg.ExcelPath, cfg.DetailsPath), func() {}, nil
	case "postgres":
		db, err := storepostgres.OpenDB(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		store := storepostgres.NewStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		return store, func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func splitList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
