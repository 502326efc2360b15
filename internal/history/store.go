// Package history defines the persistence boundary for REPL command history
// and provides the reference file-backed store.
//
// Stores are best-effort by contract: a load failure yields an empty history
// and a save failure is silently dropped. Session startup and teardown must
// never be derailed by history persistence.
package history

import (
	"os"
	"path/filepath"
	"strings"
)

// Store is the persistence contract consumed by the session: load an ordered
// list of entries at startup, save it at teardown. Implementations must not
// fail outward.
type Store interface {
	// Load returns the persisted history, oldest first. Missing or
	// corrupt data yields an empty result.
	Load() []string

	// Save persists the history. Best-effort; failures are dropped.
	Save(history []string)
}

// DefaultMaxEntries bounds a FileStore when no limit is configured.
const DefaultMaxEntries = 2000

// FileStore persists history to a text file, one entry per line, UTF-8,
// trimmed to the newest MaxEntries.
type FileStore struct {
	path       string
	maxEntries int
}

// NewFileStore creates a file-backed store at path. maxEntries <= 0 selects
// DefaultMaxEntries.
func NewFileStore(path string, maxEntries int) *FileStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &FileStore{path: path, maxEntries: maxEntries}
}

// Load reads the history file, skipping blank lines and keeping only the
// newest entries. Any error yields an empty history.
func (s *FileStore) Load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) > s.maxEntries {
		lines = lines[len(lines)-s.maxEntries:]
	}

	var out []string
	for _, ln := range lines {
		if strings.TrimSpace(ln) != "" {
			out = append(out, ln)
		}
	}
	return out
}

// Save writes the newest entries one per line, flattening embedded newlines
// so the file stays line-oriented. Failures are dropped.
func (s *FileStore) Save(history []string) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	if len(history) > s.maxEntries {
		history = history[len(history)-s.maxEntries:]
	}

	var b strings.Builder
	for _, ln := range history {
		b.WriteString(strings.ReplaceAll(ln, "\n", " "))
		b.WriteByte('\n')
	}
	os.WriteFile(s.path, []byte(b.String()), 0o644) //nolint:errcheck
}
