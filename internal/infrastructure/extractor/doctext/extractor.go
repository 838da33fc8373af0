// Package doctext extracts plain text from the binary resume formats the
// collectors accept.
package doctext

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/talentops/resume-intake/internal/core/domain"
)

type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Extract dispatches on file extension. Unknown extensions fail with
// ErrUnsupportedFormat; read or parse problems fail with
// ErrExtractionFailed. Both are per-document errors.
func (e *Extractor) Extract(_ context.Context, doc domain.IncomingDocument) (string, error) {
	switch strings.ToLower(filepath.Ext(doc.FileName)) {
	case ".pdf":
		text, err := pdfText(doc.FilePath)
		if err != nil {
			return "", domain.WrapError(domain.ErrExtractionFailed, "extract pdf", err)
		}
		return text, nil
	case ".docx":
		text, err := docxText(doc.FilePath)
		if err != nil {
			return "", domain.WrapError(domain.ErrExtractionFailed, "extract docx", err)
		}
		return text, nil
	default:
		return "", domain.WrapError(domain.ErrUnsupportedFormat, "extract text",
			errors.New("extension "+filepath.Ext(doc.FileName)))
	}
}
