// Package render paints the prompt and edit buffer as a wrapped block of
// terminal rows and keeps the bookkeeping needed to repaint it in place.
//
// Layout is a pure function from (prompt, buffer, cursor, width) to physical
// rows plus a cursor row/column; the renderer owns only two pieces of visual
// state: how many rows the block last occupied and which row the cursor sits
// on. With those it can return to the block origin, clear stale rows, and
// interleave asynchronous messages without tearing the input line.
//
// Only four escape operations are emitted: clear-current-line, cursor up N,
// cursor down N, and set-column-absolute. Nothing is ever queried from the
// terminal beyond its column count.
//
// A Renderer is owned by exactly one goroutine (the REPL worker).
package render
