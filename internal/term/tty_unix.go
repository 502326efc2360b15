//go:build unix

package term

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TTY is the real terminal backed by a pair of file descriptors,
// conventionally stdin and stdout.
type TTY struct {
	in  *os.File
	out *os.File
}

// NewTTY returns a terminal on stdin/stdout.
func NewTTY() *TTY {
	return &TTY{in: os.Stdin, out: os.Stdout}
}

// NewTTYFiles returns a terminal on explicit files.
func NewTTYFiles(in, out *os.File) *TTY {
	return &TTY{in: in, out: out}
}

// Interactive reports whether both ends are terminals.
func (t *TTY) Interactive() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// MakeRaw puts the input terminal into raw mode. The returned restore
// reinstates the saved attributes; restore errors are dropped because the
// process is exiting the terminal either way.
func (t *TTY) MakeRaw() (func(), error) {
	fd := int(t.in.Fd())
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() {
		term.Restore(fd, saved) //nolint:errcheck
	}, nil
}

// Width returns the column count of the output terminal.
func (t *TTY) Width() (int, error) {
	w, _, err := term.GetSize(int(t.out.Fd()))
	return w, err
}

// AwaitInput polls the input fd with select(2), bounded by timeout.
// An EINTR (e.g. a signal delivered to the process) counts as "not ready"
// so the caller's loop re-checks its request flags.
func (t *TTY) AwaitInput(timeout time.Duration) (bool, error) {
	fd := int(t.in.Fd())

	var fds unix.FdSet
	fds.Zero()
	fds.Set(fd)

	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	n, err := unix.Select(fd+1, &fds, nil, nil, &tv)
	if err == unix.EINTR {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Read reads raw bytes from the input terminal.
func (t *TTY) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write writes to the output terminal.
func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}
