package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	s := NewFileStore(path, 100)

	s.Save([]string{"one", "two", "three"})
	got := s.Load()

	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("Load() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Load() = %v, want %v", got, want)
		}
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent"), 100)
	if got := s.Load(); got != nil {
		t.Errorf("Load() on missing file = %v, want nil", got)
	}
}

func TestFileStoreLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(path, []byte("one\n\n   \ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path, 100)
	got := s.Load()
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("Load() = %v, want [one two]", got)
	}
}

func TestFileStoreTrimsToNewest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	s := NewFileStore(path, 2)

	s.Save([]string{"a", "b", "c", "d"})
	got := s.Load()
	if len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Errorf("Load() = %v, want [c d]", got)
	}
}

func TestFileStoreLoadTrimsOversizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(path, []byte("a\nb\nc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path, 2)
	got := s.Load()
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("Load() = %v, want [b c]", got)
	}
}

func TestFileStoreSaveFlattensNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	s := NewFileStore(path, 100)

	s.Save([]string{"multi\nline"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "multi line\n" {
		t.Errorf("file contents = %q, want %q", data, "multi line\n")
	}
}

func TestFileStoreSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history")
	s := NewFileStore(path, 100)

	s.Save([]string{"entry"})
	if got := s.Load(); len(got) != 1 || got[0] != "entry" {
		t.Errorf("Load() = %v, want [entry]", got)
	}
}

func TestFileStoreSaveFailureIsSilent(t *testing.T) {
	// Parent path is a file, so MkdirAll fails; Save must not panic.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(filepath.Join(blocker, "history"), 100)
	s.Save([]string{strings.Repeat("x", 10)})
}
