package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// FileStore keeps the best score as plain text in a single file.
// It is safe for concurrent use.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the file at path.
// The file is not touched until Load or Save is called.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load returns the stored high score.
// A missing or unparsable file counts as no high score and yields 0.
func (f *FileStore) Load() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *FileStore) load() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return score
}

// Save overwrites the stored high score.
func (f *FileStore) Save(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(score)
}

func (f *FileStore) save(score int) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", f.path, err)
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}

// Record stores score only if it beats the value on disk and returns the
// resulting best. Concurrent sessions use it so a lower score never
// replaces a higher one.
func (f *FileStore) Record(score int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	best := f.load()
	if score <= best {
		return best, nil
	}
	if err := f.save(score); err != nil {
		return best, err
	}
	return score, nil
}
