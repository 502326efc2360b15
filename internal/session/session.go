package session

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/replkit/internal/editor"
	"github.com/dshills/replkit/internal/history"
	"github.com/dshills/replkit/internal/input/key"
	"github.com/dshills/replkit/internal/keymap"
	"github.com/dshills/replkit/internal/logging"
	"github.com/dshills/replkit/internal/render"
	"github.com/dshills/replkit/internal/term"
)

// defaultPollInterval bounds the worker's wait for input readiness; stop,
// resize, and message requests are observed at least this often.
const defaultPollInterval = 50 * time.Millisecond

// Handler is invoked on the worker goroutine for every non-empty submitted
// line. It may call any of the session's thread-safe methods. Returning
// ErrStopRequested shuts the session down; any other error is reported as an
// asynchronous diagnostic message and the loop continues.
type Handler func(line string, s *Session) error

// Options configures a session. The zero value selects a "> " prompt, the
// process tty, the readline keymap, and no history persistence.
type Options struct {
	// Prompt is the static prompt text. Default "> ".
	Prompt string

	// PromptFunc, when set, is queried before every paint and overrides
	// Prompt.
	PromptFunc func() string

	// PollInterval bounds the input readiness wait.
	PollInterval time.Duration

	// History is the persistence boundary; nil disables persistence.
	History history.Store

	// Terminal overrides the device. Default is the process tty.
	Terminal term.Terminal

	// Keymap overrides the key bindings.
	Keymap keymap.Keymap

	// Logger receives worker diagnostics. It must not write to the
	// terminal the session owns. Default discards.
	Logger *logging.Logger
}

// Session owns the REPL worker goroutine and its thread-safe entry points.
type Session struct {
	handler Handler
	prompt  string
	promptF func() string
	poll    time.Duration
	store   history.Store
	term    term.Terminal
	km      keymap.Keymap
	log     *logging.Logger

	// Worker-confined state. Only the goroutine inside Run touches these.
	ed   *editor.LineEditor
	rend *render.Renderer

	mu      sync.Mutex
	queue   []string
	started bool
	running bool

	stop     atomic.Bool
	resize   atomic.Bool
	finished chan struct{}
	finOnce  sync.Once
}

// New creates a session that will invoke handler for submitted lines.
func New(handler Handler, opts Options) *Session {
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	if opts.Terminal == nil {
		opts.Terminal = term.NewTTY()
	}
	if opts.Keymap == nil {
		opts.Keymap = keymap.NewReadline()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	return &Session{
		handler:  handler,
		prompt:   opts.Prompt,
		promptF:  opts.PromptFunc,
		poll:     opts.PollInterval,
		store:    opts.History,
		term:     opts.Terminal,
		km:       opts.Keymap,
		log:      opts.Logger,
		ed:       editor.New(),
		finished: make(chan struct{}),
	}
}

// PostMessage enqueues text for asynchronous display. Never blocks; safe
// from any goroutine.
func (s *Session) PostMessage(text string) {
	s.enqueue(text)
}

// Stop requests loop shutdown. Idempotent; safe from any goroutine and any
// state, including after the worker has already finished.
func (s *Session) Stop() {
	s.stop.Store(true)
	s.enqueue("") // wakeup token
}

// RequestResize requests a full redraw, e.g. forwarded from a SIGWINCH
// handler. Never blocks; safe from any goroutine.
func (s *Session) RequestResize() {
	s.resize.Store(true)
	s.enqueue("") // wakeup token
}

// Start spawns the worker goroutine. Idempotent per session lifetime: only
// the first call has an effect, and a finished session stays finished —
// create a new Session to run again.
func (s *Session) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		if err := s.Run(); err != nil && !errors.Is(err, term.ErrNotInteractive) {
			s.log.Error("repl worker: %v", err)
		}
	}()
}

// Join blocks until the worker has finished. Returns immediately if the
// session was never started.
func (s *Session) Join() {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return
	}
	<-s.finished
}

// Finished returns a channel closed exactly once when the worker exits.
func (s *Session) Finished() <-chan struct{} {
	return s.finished
}

// Running reports whether the worker loop is currently executing.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// History returns a copy of the committed line history. It reads
// worker-confined editor state: call it only from the line handler (which
// runs on the worker goroutine) or after the session has finished.
func (s *Session) History() []string {
	return s.ed.History()
}

// Run executes the worker loop on the calling goroutine. Most callers use
// Start; Run is for frontends that dedicate their main goroutine to the
// REPL. The finished signal fires on every exit path.
func (s *Session) Run() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.started = true
	s.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			s.log.Error("repl worker panic: %v", p)
		}
	}()
	defer s.finish()

	if !s.term.Interactive() {
		return term.ErrNotInteractive
	}

	s.loadHistory()
	s.rend = render.New(s.term, s.term.Width)
	dec := key.NewDecoder(s.term)

	restore, err := s.term.MakeRaw()
	if err != nil {
		return err
	}
	// Teardown order: save history, restore terminal mode, trailing
	// newline. Runs on every exit path, panics included.
	defer func() { io.WriteString(s.term, "\n") }() //nolint:errcheck
	defer restore()
	defer s.saveHistory()

	s.rend.Redraw(s.promptText(), s.ed.Buffer(), s.ed.Pos())

	return s.loop(dec)
}

// loop is the worker body: drain messages, honor resize, poll for input,
// decode and dispatch one key event.
func (s *Session) loop(dec *key.Decoder) error {
	for !s.stop.Load() {
		for _, msg := range s.drain() {
			if msg == "" {
				continue // wakeup token
			}
			s.rend.AtomicPrint(s.promptText(), s.ed.Buffer(), s.ed.Pos(), msg)
		}

		if s.resize.CompareAndSwap(true, false) {
			s.rend.Redraw(s.promptText(), s.ed.Buffer(), s.ed.Pos())
		}

		ready, err := s.term.AwaitInput(s.poll)
		if err != nil {
			return err
		}
		if !ready {
			continue
		}

		ev, err := dec.Decode()
		if err != nil {
			if errors.Is(err, io.EOF) {
				continue // input closed; requests still drain each tick
			}
			return err
		}
		if ev.Key == key.KeyNone {
			continue
		}

		res := s.km.Dispatch(s.ed, ev)
		switch {
		case res.Exit:
			s.Stop()

		case res.Submit:
			s.submit(res.Line)

		case res.Redraw:
			s.rend.Redraw(s.promptText(), s.ed.Buffer(), s.ed.Pos())
		}
	}
	return nil
}

// submit echoes the committed line as normal scrollback, runs the handler,
// and repaints the (now empty) input block.
func (s *Session) submit(line string) {
	prompt := s.promptText()
	s.rend.ClearInputBlock()
	io.WriteString(s.term, prompt+line+"\r\n") //nolint:errcheck

	if line != "" {
		s.invokeHandler(line)
	}

	s.rend.Redraw(s.promptText(), s.ed.Buffer(), s.ed.Pos())
}

// invokeHandler runs the external handler, converting a stop request into
// Stop and anything else that goes wrong into a posted diagnostic.
func (s *Session) invokeHandler(line string) {
	defer func() {
		if p := recover(); p != nil {
			s.PostMessage(fmt.Sprintf("[handler error] panic: %v", p))
		}
	}()

	if s.handler == nil {
		return
	}
	if err := s.handler(line, s); err != nil {
		if errors.Is(err, ErrStopRequested) {
			s.Stop()
			return
		}
		s.PostMessage(fmt.Sprintf("[handler error] %v", err))
	}
}

func (s *Session) promptText() string {
	if s.promptF != nil {
		return s.promptF()
	}
	return s.prompt
}

func (s *Session) enqueue(text string) {
	s.mu.Lock()
	s.queue = append(s.queue, text)
	s.mu.Unlock()
}

// drain removes and returns all queued messages in FIFO order.
func (s *Session) drain() []string {
	s.mu.Lock()
	msgs := s.queue
	s.queue = nil
	s.mu.Unlock()
	return msgs
}

// loadHistory seeds the editor from the store. Best-effort.
func (s *Session) loadHistory() {
	if s.store == nil {
		return
	}
	s.ed.SetHistory(s.store.Load())
}

// saveHistory persists the editor history. Best-effort.
func (s *Session) saveHistory() {
	if s.store == nil {
		return
	}
	s.store.Save(s.ed.History())
}

// finish marks the session finished exactly once.
func (s *Session) finish() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
	s.finOnce.Do(func() { close(s.finished) })
}
