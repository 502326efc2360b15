package render

import (
	"io"
	"strconv"
)

// csi is the two-byte Control Sequence Introducer prefix.
const csi = "\x1b["

// write pushes s to the terminal. Terminal write errors are not actionable
// mid-paint and are dropped.
func (r *Renderer) write(s string) {
	io.WriteString(r.out, s) //nolint:errcheck
}

// clearLine returns to column 1 and blanks the current row.
func (r *Renderer) clearLine() {
	r.write("\r" + csi + "2K")
}

// moveUp moves the cursor up n rows. No-op for n <= 0.
func (r *Renderer) moveUp(n int) {
	if n > 0 {
		r.write(csi + strconv.Itoa(n) + "A")
	}
}

// moveDown moves the cursor down n rows. No-op for n <= 0.
func (r *Renderer) moveDown(n int) {
	if n > 0 {
		r.write(csi + strconv.Itoa(n) + "B")
	}
}

// setCol moves the cursor to an absolute 1-indexed column.
func (r *Renderer) setCol(col int) {
	if col < 1 {
		col = 1
	}
	r.write(csi + strconv.Itoa(col) + "G")
}
