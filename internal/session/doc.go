// Package session runs the REPL worker: a single goroutine that owns the
// terminal, the line editor, and the renderer, and interleaves synchronous
// keystroke editing with asynchronously posted messages.
//
// # Concurrency model
//
// Exactly one goroutine (the worker started by Start) writes to the
// terminal or touches editor/renderer state. Any other goroutine may call
// PostMessage, Stop, or RequestResize at any time; none of them ever block,
// regardless of backlog. The worker's only blocking points are a
// poll-interval-bounded wait for input readiness and the synchronous reads
// that complete an already-started escape sequence.
//
// Messages posted before a poll cycle are fully printed before that cycle
// processes its next key event, and per-producer order is preserved.
//
// # Lifecycle
//
// A session moves through not-started, running, stopping, finished; finished
// is terminal and signaled exactly once, on every exit path. History is
// loaded best-effort at loop start and saved best-effort at teardown, and
// the terminal mode is always restored, including on panics escaping the
// loop body.
package session
