// Package term integrates the REPL with the underlying terminal device:
// interactivity checks, raw-mode acquisition with guaranteed restore,
// column-count queries, and bounded-timeout input readiness.
//
// The session depends only on the Terminal interface, so tests substitute an
// in-memory implementation and never touch a real tty.
package term

import (
	"errors"
	"io"
	"time"
)

// ErrNotInteractive indicates stdin or stdout is not a terminal. Raised
// before any terminal-mode mutation, so no cleanup is required.
var ErrNotInteractive = errors.New("stdin/stdout is not a terminal")

// Terminal is the device the REPL session runs on.
//
// Read delivers raw input bytes and Write paints output; both are used only
// by the session's worker goroutine.
type Terminal interface {
	io.Reader
	io.Writer

	// Interactive reports whether both input and output are terminals.
	Interactive() bool

	// MakeRaw switches the terminal to raw mode and returns a restore
	// function that reinstates the prior attributes. The restore function
	// is safe to call on every exit path, including after errors.
	MakeRaw() (restore func(), err error)

	// Width returns the terminal column count.
	Width() (int, error)

	// AwaitInput waits up to timeout for input to become readable.
	// It never blocks longer than the timeout, so cooperative stop and
	// resize requests are observed promptly even with no keystrokes.
	AwaitInput(timeout time.Duration) (bool, error)
}
