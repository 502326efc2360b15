// Package key provides key event types and raw byte-stream decoding for the
// REPL input path.
//
// The decoder consumes raw terminal bytes one event at a time:
//
//   - Control bytes map to their readline keys (Ctrl-A, Ctrl-C, ...)
//   - Printable ASCII maps to rune events
//   - ESC introduces an escape sequence parsed by an explicit state machine
//     (CSI arrows/Home/End/Delete, SS3 Home/End)
//
// Incomplete or unrecognized sequences decode to a plain Escape event rather
// than failing, so an unusual terminal can never wedge the input loop.
package key
