package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// FileStore is a file-based ordering store for CLI applications.
// Orderings are stored as JSON files named after the ordering.
// Names must already be validated with errors.ValidateName.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string

	// Logger receives a warning for every file List has to skip.
	Logger *log.Logger
}

// NewFileStore creates a new file-based store.
// If baseDir is empty, defaults to $XDG_DATA_HOME/lehmer/orderings or
// ~/.local/share/lehmer/orderings.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		baseDir = dir
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{baseDir: baseDir, Logger: log.Default()}, nil
}

// DefaultDir returns the default FileStore directory.
func DefaultDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "lehmer", "orderings"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "lehmer", "orderings"), nil
}

// Dir returns the directory holding the ordering files.
func (s *FileStore) Dir() string {
	return s.baseDir
}

func (s *FileStore) orderingPath(name string) string {
	return filepath.Join(s.baseDir, name+".json")
}

func (s *FileStore) Get(ctx context.Context, name string) (*Ordering, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(s.orderingPath(name), name)
}

func (s *FileStore) read(path, name string) (*Ordering, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(name)
		}
		return nil, unavailable(err, "read ordering %q", name)
	}

	var o Ordering
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, unavailable(err, "parse ordering %q", name)
	}
	return &o, nil
}

func (s *FileStore) Put(ctx context.Context, o *Ordering) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ordering: %w", err)
	}

	// Write to a temp file first so readers never see a partial document.
	path := s.orderingPath(o.Name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return unavailable(err, "write ordering %q", o.Name)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return unavailable(err, "write ordering %q", o.Name)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.orderingPath(name))
	if os.IsNotExist(err) {
		return notFound(name)
	}
	if err != nil {
		return unavailable(err, "delete ordering %q", name)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]*Ordering, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, unavailable(err, "list orderings")
	}

	var out []*Ordering
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		o, err := s.read(filepath.Join(s.baseDir, e.Name()), name)
		if err != nil {
			s.Logger.Warn("skipping unreadable ordering", "file", filepath.Join(s.baseDir, e.Name()), "err", err)
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *FileStore) Close() error {
	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
