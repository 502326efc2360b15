package editor

import (
	"math/rand"
	"testing"
)

func TestInsertAndMove(t *testing.T) {
	e := New()
	e.Insert("hello")
	if e.Buffer() != "hello" || e.Pos() != 5 {
		t.Fatalf("buffer = %q pos = %d, want hello 5", e.Buffer(), e.Pos())
	}

	e.Home()
	e.Insert("> ")
	if e.Buffer() != "> hello" || e.Pos() != 2 {
		t.Fatalf("buffer = %q pos = %d, want \"> hello\" 2", e.Buffer(), e.Pos())
	}

	e.End()
	if e.Pos() != 7 {
		t.Errorf("End() pos = %d, want 7", e.Pos())
	}
	e.MoveRight()
	if e.Pos() != 7 {
		t.Errorf("MoveRight at end moved cursor to %d", e.Pos())
	}
	e.Home()
	e.MoveLeft()
	if e.Pos() != 0 {
		t.Errorf("MoveLeft at start moved cursor to %d", e.Pos())
	}

	e.Insert("")
	if e.Buffer() != "> hello" {
		t.Errorf("empty Insert changed buffer to %q", e.Buffer())
	}
}

func TestBackspaceDelete(t *testing.T) {
	e := New()
	e.Insert("abc")

	e.Backspace()
	if e.Buffer() != "ab" || e.Pos() != 2 {
		t.Fatalf("after backspace: %q pos %d", e.Buffer(), e.Pos())
	}

	e.Home()
	e.Backspace() // no-op at start
	if e.Buffer() != "ab" || e.Pos() != 0 {
		t.Fatalf("backspace at start: %q pos %d", e.Buffer(), e.Pos())
	}

	e.Delete()
	if e.Buffer() != "b" || e.Pos() != 0 {
		t.Fatalf("after delete: %q pos %d", e.Buffer(), e.Pos())
	}

	e.End()
	e.Delete() // no-op at end
	if e.Buffer() != "b" {
		t.Fatalf("delete at end changed buffer to %q", e.Buffer())
	}
}

func TestKillLine(t *testing.T) {
	e := New()
	e.Insert("some text")
	e.KillLine()
	if e.Buffer() != "" || e.Pos() != 0 {
		t.Errorf("after KillLine: %q pos %d", e.Buffer(), e.Pos())
	}
}

func TestKillToEnd(t *testing.T) {
	e := New()
	e.Insert("hello world")
	e.Home()
	e.MoveRight()
	e.MoveRight()
	e.MoveRight()
	e.MoveRight()
	e.MoveRight()

	e.KillToEnd()
	if e.Buffer() != "hello" {
		t.Errorf("buffer = %q, want hello", e.Buffer())
	}
	if e.KillBuffer() != " world" {
		t.Errorf("kill buffer = %q, want \" world\"", e.KillBuffer())
	}

	// Killing at end empties the kill buffer.
	e.End()
	e.KillToEnd()
	if e.KillBuffer() != "" {
		t.Errorf("kill buffer at end = %q, want empty", e.KillBuffer())
	}
}

func TestBackwardKillWord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantPos int
	}{
		{"single word", "hello", "", 0},
		{"two words", "hello world", "hello ", 6},
		{"trailing spaces", "hello world   ", "hello ", 6},
		{"only spaces", "   ", "", 0},
		{"empty", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			e.Insert(tt.input)
			e.BackwardKillWord()
			if e.Buffer() != tt.want || e.Pos() != tt.wantPos {
				t.Errorf("got %q pos %d, want %q pos %d",
					e.Buffer(), e.Pos(), tt.want, tt.wantPos)
			}
		})
	}
}

func TestCommitHistoryRules(t *testing.T) {
	e := New()

	e.CommitHistory("first")
	e.CommitHistory("first") // duplicate of newest: dropped
	e.CommitHistory("")
	e.CommitHistory("   ")       // whitespace only: dropped
	e.CommitHistory("second\n")  // trailing newline trimmed
	e.CommitHistory("first")     // not a duplicate of newest anymore

	want := []string{"first", "second", "first"}
	got := e.History()
	if len(got) != len(want) {
		t.Fatalf("history = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("history = %v, want %v", got, want)
		}
	}
}

func TestHistoryBrowseRoundTrip(t *testing.T) {
	e := New()
	e.CommitHistory("one")
	e.CommitHistory("two")

	// Type a partial line, browse up, then back down: partial line returns.
	e.Insert("abc")
	e.HistoryPrev()
	if e.Buffer() != "two" {
		t.Fatalf("after up: %q, want two", e.Buffer())
	}
	e.HistoryNext()
	if e.Buffer() != "abc" || e.Pos() != 3 {
		t.Fatalf("after down: %q pos %d, want abc 3", e.Buffer(), e.Pos())
	}
}

func TestHistoryBrowseFloorAndCeiling(t *testing.T) {
	e := New()
	e.CommitHistory("one")
	e.CommitHistory("two")

	e.HistoryPrev()
	e.HistoryPrev()
	e.HistoryPrev() // stays at oldest
	if e.Buffer() != "one" {
		t.Fatalf("after repeated up: %q, want one", e.Buffer())
	}

	e.HistoryNext()
	if e.Buffer() != "two" {
		t.Fatalf("after down: %q, want two", e.Buffer())
	}
	e.HistoryNext() // past newest: browse ends, empty saved-current restored
	if e.Buffer() != "" {
		t.Fatalf("after down past newest: %q, want empty", e.Buffer())
	}
	e.HistoryNext() // not browsing: no-op
	if e.Buffer() != "" {
		t.Fatalf("HistoryNext when not browsing changed buffer to %q", e.Buffer())
	}
}

func TestHistoryPrevEmptyHistory(t *testing.T) {
	e := New()
	e.Insert("draft")
	e.HistoryPrev()
	if e.Buffer() != "draft" {
		t.Errorf("HistoryPrev with no history changed buffer to %q", e.Buffer())
	}
}

func TestKillLineCancelsBrowse(t *testing.T) {
	e := New()
	e.CommitHistory("one")
	e.HistoryPrev()
	e.KillLine()
	e.HistoryNext() // browse was cancelled: no-op
	if e.Buffer() != "" {
		t.Errorf("buffer = %q, want empty", e.Buffer())
	}
}

// Cursor must stay within [0, len(buffer)] for any operation sequence.
func TestCursorBoundsInvariant(t *testing.T) {
	e := New()
	rng := rand.New(rand.NewSource(1))

	ops := []func(){
		func() { e.Insert("x") },
		func() { e.Insert("ab cd") },
		func() { e.Backspace() },
		func() { e.Delete() },
		func() { e.MoveLeft() },
		func() { e.MoveRight() },
		func() { e.Home() },
		func() { e.End() },
		func() { e.KillLine() },
		func() { e.KillToEnd() },
		func() { e.BackwardKillWord() },
		func() { e.HistoryPrev() },
		func() { e.HistoryNext() },
		func() { e.CommitHistory(e.Buffer()) },
	}

	for i := 0; i < 5000; i++ {
		ops[rng.Intn(len(ops))]()
		if e.Pos() < 0 || e.Pos() > len([]rune(e.Buffer())) {
			t.Fatalf("step %d: pos %d out of range for buffer %q", i, e.Pos(), e.Buffer())
		}
	}
}
