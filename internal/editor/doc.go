// Package editor implements the in-memory line editing model for the REPL:
// edit buffer, cursor, kill buffer, and command history with browse state.
//
// All operations are pure in-memory mutations with no terminal knowledge.
// A LineEditor is owned by exactly one goroutine (the REPL worker) and is
// not safe for concurrent use.
package editor
