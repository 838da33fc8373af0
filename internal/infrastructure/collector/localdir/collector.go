// Package localdir collects resume documents from a directory drop. Used
// for backfills and local testing; there is no email context, so every name
// signal has to come from the file itself.
package localdir

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/talentops/resume-intake/internal/core/domain"
)

type Collector struct {
	dir         string
	log         *slog.Logger
	allowedExts map[string]struct{}
}

func New(dir string, log *slog.Logger, extensions []string) *Collector {
	if len(extensions) == 0 {
		extensions = []string{".pdf", ".docx"}
	}
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	return &Collector{dir: dir, log: log, allowedExts: allowed}
}

// Collect lists matching files in name order so repeated runs over the same
// drop produce the same processing sequence.
func (c *Collector) Collect(_ context.Context) ([]domain.IncomingDocument, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read drop dir %s: %w", c.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := c.allowedExts[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	docs := make([]domain.IncomingDocument, 0, len(names))
	for _, name := range names {
		docs = append(docs, domain.IncomingDocument{
			ID:       uuid.NewString(),
			FilePath: filepath.Join(c.dir, name),
			FileName: name,
		})
	}
	c.log.Info("drop directory collected", "dir", c.dir, "documents", len(docs))
	return docs, nil
}
