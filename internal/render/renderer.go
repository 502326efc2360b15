package render

import (
	"io"
	"strings"
)

const (
	// minWidth is the narrowest terminal the layout will believe in.
	minWidth = 20

	// fallbackWidth is assumed when the width query fails.
	fallbackWidth = 80
)

// WidthFunc reports the terminal column count. Called once per redraw.
type WidthFunc func() (int, error)

// Renderer paints a wrapped prompt+buffer block and tracks its footprint.
//
// The origin is the first row of the current block. lastRows and curRow
// describe the terminal's visual state as this program understands it; the
// terminal itself is never queried beyond the column count.
type Renderer struct {
	out   io.Writer
	width WidthFunc

	lastRows int // rows the block occupied after the last paint
	curRow   int // cursor row within the block, [0, lastRows)
}

// New creates a renderer writing to out. If width is nil the fallback
// width is used for every layout.
func New(out io.Writer, width WidthFunc) *Renderer {
	return &Renderer{out: out, width: width, lastRows: 1}
}

// Rows returns the number of rows the block occupied after the last paint.
func (r *Renderer) Rows() int {
	return r.lastRows
}

// cols returns the usable column count: queried per redraw, clamped to
// minWidth, fallbackWidth when the query fails.
func (r *Renderer) cols() int {
	if r.width == nil {
		return fallbackWidth
	}
	w, err := r.width()
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	if w < minWidth {
		return minWidth
	}
	return w
}

// moveToOrigin returns the cursor to column 1 of the block's first row.
func (r *Renderer) moveToOrigin() {
	r.setCol(1)
	r.moveUp(r.curRow)
}

// Redraw repaints the whole block for the given prompt, buffer, and cursor.
//
// It paints max(previous, new) rows, clearing each before writing, so a
// shrinking buffer erases its stale trailing rows, then parks the cursor on
// its target row and column.
func (r *Renderer) Redraw(prompt, buf string, pos int) {
	l := Wrap(prompt, buf, pos, r.cols())

	newRows := len(l.Rows)
	paintRows := newRows
	if r.lastRows > paintRows {
		paintRows = r.lastRows
	}

	r.moveToOrigin()
	for i := 0; i < paintRows; i++ {
		r.clearLine()
		if i < newRows {
			r.write(l.Rows[i])
		}
		if i < paintRows-1 {
			// LF rather than cursor-down: must scroll when the block
			// grows past the bottom row.
			r.write("\n")
		}
	}

	r.moveUp((paintRows - 1) - l.CursorRow)
	r.setCol(l.CursorCol + 1)

	r.lastRows = newRows
	r.curRow = l.CursorRow
}

// ClearInputBlock blanks every painted row and resets the bookkeeping to a
// single empty row, leaving the cursor at the origin in column 1.
func (r *Renderer) ClearInputBlock() {
	r.moveToOrigin()
	for i := 0; i < r.lastRows; i++ {
		r.clearLine()
		if i < r.lastRows-1 {
			r.moveDown(1)
		}
	}
	r.moveUp(r.lastRows - 1)
	r.setCol(1)
	r.lastRows = 1
	r.curRow = 0
}

// AtomicPrint removes the input block, writes msg on its own line, and
// repaints the block below it. An asynchronously arriving message can
// therefore never appear inside a partially rendered input line.
//
// The terminal is in raw mode, so message newlines are emitted as CRLF.
func (r *Renderer) AtomicPrint(prompt, buf string, pos int, msg string) {
	r.ClearInputBlock()

	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	r.write(strings.ReplaceAll(msg, "\n", "\r\n"))

	r.lastRows = 1
	r.curRow = 0
	r.Redraw(prompt, buf, pos)
}
