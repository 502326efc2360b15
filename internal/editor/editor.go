package editor

import (
	"strings"
	"unicode"
)

// LineEditor holds the edit buffer, cursor, kill buffer, and command history.
//
// Invariant: 0 <= Pos() <= len(Buffer()) after every operation.
type LineEditor struct {
	buf []rune
	pos int

	kill []rune

	history []string

	// History browse state. browsing is the explicit "not browsing" tag;
	// histIndex is only meaningful while browsing is true.
	browsing     bool
	histIndex    int
	savedCurrent string
}

// New creates an empty line editor.
func New() *LineEditor {
	return &LineEditor{}
}

// Buffer returns the current buffer contents.
func (e *LineEditor) Buffer() string {
	return string(e.buf)
}

// Pos returns the cursor position within the buffer.
func (e *LineEditor) Pos() int {
	return e.pos
}

// KillBuffer returns the text removed by the last kill-to-end.
func (e *LineEditor) KillBuffer() string {
	return string(e.kill)
}

// SetLine replaces the buffer and places the cursor at the end.
func (e *LineEditor) SetLine(text string) {
	e.buf = []rune(text)
	e.pos = len(e.buf)
}

// Insert splices text at the cursor and advances the cursor past it.
// Empty input is a no-op.
func (e *LineEditor) Insert(text string) {
	if text == "" {
		return
	}
	ins := []rune(text)
	e.buf = append(e.buf[:e.pos], append(append([]rune(nil), ins...), e.buf[e.pos:]...)...)
	e.pos += len(ins)
}

// Backspace removes the character before the cursor. No-op at buffer start.
func (e *LineEditor) Backspace() {
	if e.pos <= 0 {
		return
	}
	e.buf = append(e.buf[:e.pos-1], e.buf[e.pos:]...)
	e.pos--
}

// Delete removes the character at the cursor. No-op at buffer end.
func (e *LineEditor) Delete() {
	if e.pos >= len(e.buf) {
		return
	}
	e.buf = append(e.buf[:e.pos], e.buf[e.pos+1:]...)
}

// MoveLeft moves the cursor one position left.
func (e *LineEditor) MoveLeft() {
	if e.pos > 0 {
		e.pos--
	}
}

// MoveRight moves the cursor one position right.
func (e *LineEditor) MoveRight() {
	if e.pos < len(e.buf) {
		e.pos++
	}
}

// Home moves the cursor to the buffer start.
func (e *LineEditor) Home() {
	e.pos = 0
}

// End moves the cursor to the buffer end.
func (e *LineEditor) End() {
	e.pos = len(e.buf)
}

// KillLine clears the entire buffer and cancels any active history browse.
// Bound to Ctrl-U.
func (e *LineEditor) KillLine() {
	e.buf = nil
	e.pos = 0
	e.browsing = false
}

// KillToEnd removes from the cursor to the buffer end into the kill buffer.
// Removing nothing leaves the kill buffer empty. Bound to Ctrl-K.
func (e *LineEditor) KillToEnd() {
	if e.pos >= len(e.buf) {
		e.kill = nil
		return
	}
	e.kill = append([]rune(nil), e.buf[e.pos:]...)
	e.buf = e.buf[:e.pos]
}

// BackwardKillWord removes the word before the cursor: trailing whitespace
// first, then the non-whitespace run. Bound to Ctrl-W.
func (e *LineEditor) BackwardKillWord() {
	if e.pos == 0 {
		return
	}
	i := e.pos
	for i > 0 && unicode.IsSpace(e.buf[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(e.buf[i-1]) {
		i--
	}
	e.buf = append(e.buf[:i], e.buf[e.pos:]...)
	e.pos = i
}

// startBrowse snapshots the current buffer on the first history navigation
// since the last edit or commit.
func (e *LineEditor) startBrowse() {
	if e.browsing {
		return
	}
	e.savedCurrent = string(e.buf)
	e.histIndex = len(e.history)
	e.browsing = true
}

// HistoryPrev loads the previous history entry into the buffer.
func (e *LineEditor) HistoryPrev() {
	if len(e.history) == 0 {
		return
	}
	e.startBrowse()
	if e.histIndex > 0 {
		e.histIndex--
	}
	e.SetLine(e.history[e.histIndex])
}

// HistoryNext loads the next history entry. Moving past the newest entry
// ends the browse and restores the buffer saved when browsing started.
func (e *LineEditor) HistoryNext() {
	if !e.browsing {
		return
	}
	if e.histIndex < len(e.history)-1 {
		e.histIndex++
		e.SetLine(e.history[e.histIndex])
		return
	}
	e.browsing = false
	e.SetLine(e.savedCurrent)
}

// CommitHistory appends a submitted line to history. Trailing newlines are
// trimmed; blank lines and lines equal to the newest entry are discarded.
// Browsing state is always cleared.
func (e *LineEditor) CommitHistory(line string) {
	line = strings.TrimRight(line, "\n")
	e.browsing = false
	if strings.TrimSpace(line) == "" {
		return
	}
	if n := len(e.history); n > 0 && e.history[n-1] == line {
		return
	}
	e.history = append(e.history, line)
}

// History returns the committed history, oldest first.
func (e *LineEditor) History() []string {
	out := make([]string, len(e.history))
	copy(out, e.history)
	return out
}

// SetHistory replaces the history, e.g. from a persisted store at startup.
func (e *LineEditor) SetHistory(entries []string) {
	e.history = append([]string(nil), entries...)
	e.browsing = false
}
