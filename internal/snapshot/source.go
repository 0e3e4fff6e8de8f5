// Package snapshot owns the load-once, serve-many lifecycle of the three
// retail datasets. A snapshot is built fully in isolation and then published
// atomically; concurrent readers only ever observe complete table sets.
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Source retrieves raw dataset byte streams keyed by dataset file name. It
// stands in for whatever retrieval mechanism the deployment uses; the core
// only ever sees the stream.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// DirSource serves dataset streams from files under a local directory.
type DirSource struct {
	root string
}

// NewDirSource returns a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{root: dir}
}

// Open opens the named dataset file. Names must be plain file names; path
// traversal and absolute paths are rejected.
func (s *DirSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("empty dataset name")
	}
	if strings.Contains(name, "..") || filepath.IsAbs(name) {
		return nil, fmt.Errorf("invalid dataset name %q", name)
	}
	return os.Open(filepath.Join(s.root, filepath.Clean(name)))
}

// MemSource serves dataset streams from an in-memory map, for tests.
type MemSource map[string][]byte

// Open returns a reader over the named in-memory dataset.
func (s MemSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	data, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("dataset %q not found", name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
