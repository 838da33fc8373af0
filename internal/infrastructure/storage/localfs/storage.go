// Package localfs stores downloaded attachments on the local filesystem.
// Two senders frequently attach files with identical names, so writes never
// overwrite: collisions get a numeric suffix and the caller learns the path
// actually used.
package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Storage struct {
	basePath string
}

func New(basePath string) (*Storage, error) {
	if basePath == "" {
		basePath = "./data/resumes"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Storage{basePath: basePath}, nil
}

// SaveUnique writes data under name, appending " (n)" before the extension
// when the name is taken. It returns the path written.
func (s *Storage) SaveUnique(_ context.Context, name string, data io.Reader) (string, error) {
	name = filepath.Base(name)
	path := filepath.Join(s.basePath, name)

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		} else if err != nil {
			return "", fmt.Errorf("stat file: %w", err)
		}
		path = filepath.Join(s.basePath, fmt.Sprintf("%s (%d)%s", stem, n, ext))
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}

// Open reads a previously stored file by its full path or base name.
func (s *Storage) Open(_ context.Context, name string) (io.ReadCloser, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.basePath, filepath.Base(name))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return f, nil
}
