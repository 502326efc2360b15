package render

import "strings"

// Layout describes how a prompt and buffer map onto physical terminal rows.
type Layout struct {
	// Rows holds the physical lines to paint, prompt or indent included.
	Rows []string

	// CursorRow is the row within Rows holding the cursor.
	CursorRow int

	// CursorCol is the 0-indexed column of the cursor within its row.
	CursorCol int
}

// Wrap lays out prompt+buf for a terminal of the given column count.
//
// The first row carries the prompt; continuation rows are indented by the
// prompt's width in spaces, so every row offers width-len(prompt) columns
// for buffer text.
func Wrap(prompt, buf string, pos, width int) Layout {
	indent := strings.Repeat(" ", len(prompt))

	avail := width - len(prompt)
	if avail < 1 {
		avail = 1
	}

	var rows []string
	if len(buf) <= avail {
		rows = []string{prompt + buf}
	} else {
		rows = append(rows, prompt+buf[:avail])
		rest := buf[avail:]
		for len(rest) > avail {
			rows = append(rows, indent+rest[:avail])
			rest = rest[avail:]
		}
		rows = append(rows, indent+rest)
	}

	if pos < 0 {
		pos = 0
	}
	if pos > len(buf) {
		pos = len(buf)
	}

	var cursorRow, cursorCol int
	if pos <= avail {
		cursorRow = 0
		cursorCol = len(prompt) + pos
	} else {
		rem := pos - avail
		cursorRow = 1 + rem/avail
		cursorCol = len(indent) + rem%avail
	}

	return Layout{Rows: rows, CursorRow: cursorRow, CursorCol: cursorCol}
}
