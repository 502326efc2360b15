package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/replkit/internal/logging"
	"github.com/dshills/replkit/internal/session"
)

const helpText = `commands:
  /help                 show this help
  /send target message  send a message to a target (@name or channel)
  /history              show the lines committed this session
  exit | quit           leave the session`

// chat is the demo line handler: a stand-in for a real message backend,
// identified like a peer so posted messages read as chat traffic.
type chat struct {
	id  string
	log *logging.Logger
}

func newChat(log *logging.Logger) *chat {
	return &chat{
		id:  uuid.NewString()[:8],
		log: log,
	}
}

// handleLine runs on the REPL worker for every submitted line. It may call
// the session's thread-safe methods freely; returning ErrStopRequested ends
// the session.
func (c *chat) handleLine(line string, s *session.Session) error {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return nil

	case line == "exit" || line == "quit":
		c.log.Info("exit requested")
		return session.ErrStopRequested

	case line == "/help":
		s.PostMessage(helpText)
		return nil

	case line == "/history":
		s.PostMessage(formatHistory(s.History()))
		return nil

	case strings.HasPrefix(line, "/send"):
		return c.send(line, s)

	case strings.HasPrefix(line, "/"):
		return fmt.Errorf("unknown command %q (try /help)", line)

	default:
		s.PostMessage(fmt.Sprintf("[%s] %s", c.id, line))
		return nil
	}
}

// formatHistory renders committed lines oldest first, one per numbered row.
func formatHistory(entries []string) string {
	if len(entries) == 0 {
		return "history is empty"
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%3d  %s", i+1, e)
	}
	return b.String()
}

// send parses "/send target[,target...] message" and echoes the delivery.
func (c *chat) send(line string, s *session.Session) error {
	fields := strings.SplitN(line, " ", 3)
	if len(fields) < 3 {
		return fmt.Errorf("usage: /send target message")
	}
	targets := strings.Split(fields[1], ",")
	payload := fields[2]

	c.log.Info("send targets=%v payload=%q", targets, payload)
	s.PostMessage(fmt.Sprintf("[%s → %s] %s", c.id, strings.Join(targets, ","), payload))
	return nil
}

// producer posts a message every couple of seconds from outside the REPL
// goroutine, exercising the async display path.
func (c *chat) producer(s *session.Session) {
	i := 0
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-s.Finished():
			return
		case t := <-ticker.C:
			i++
			s.PostMessage(fmt.Sprintf("[external] message %d @ %s", i, t.Format("15:04:05")))
		}
	}
}
