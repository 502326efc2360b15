// Package keymap maps key events to line editor operations.
//
// Dispatch is a pure function over the editor and one event: it mutates the
// editor as the binding requires and reports exactly one outcome (redraw,
// submit, exit, or nothing) for the session loop to act on.
package keymap

import (
	"github.com/dshills/replkit/internal/editor"
	"github.com/dshills/replkit/internal/input/key"
)

// Result is the outcome of dispatching one key event.
// At most one of Redraw, Submit, Exit is set.
type Result struct {
	// Redraw requests a repaint of the prompt and buffer.
	Redraw bool

	// Submit is true when Enter committed the buffer; Line holds the
	// committed text (possibly empty).
	Submit bool
	Line   string

	// Exit requests session shutdown (Ctrl-C).
	Exit bool
}

// Keymap dispatches key events against a line editor.
type Keymap interface {
	Dispatch(ed *editor.LineEditor, ev key.Event) Result
}

// Readline implements the default readline-style bindings.
type Readline struct{}

// NewReadline returns the default keymap.
func NewReadline() Readline {
	return Readline{}
}

// Dispatch applies ev to ed and returns the outcome. Events with no binding
// produce a zero Result.
func (Readline) Dispatch(ed *editor.LineEditor, ev key.Event) Result {
	switch ev.Key {
	case key.KeyCtrlC:
		return Result{Exit: true}

	case key.KeyEnter:
		line := ed.Buffer()
		ed.CommitHistory(line)
		ed.SetLine("")
		return Result{Submit: true, Line: line}

	case key.KeyRune:
		ed.Insert(string(ev.Rune))
		return Result{Redraw: true}

	case key.KeyBackspace:
		ed.Backspace()
		return Result{Redraw: true}

	case key.KeyDelete:
		ed.Delete()
		return Result{Redraw: true}

	case key.KeyLeft:
		ed.MoveLeft()
		return Result{Redraw: true}

	case key.KeyRight:
		ed.MoveRight()
		return Result{Redraw: true}

	case key.KeyHome, key.KeyCtrlA:
		ed.Home()
		return Result{Redraw: true}

	case key.KeyEnd, key.KeyCtrlE:
		ed.End()
		return Result{Redraw: true}

	case key.KeyUp, key.KeyCtrlP:
		ed.HistoryPrev()
		return Result{Redraw: true}

	case key.KeyDown, key.KeyCtrlN:
		ed.HistoryNext()
		return Result{Redraw: true}

	case key.KeyCtrlU:
		ed.KillLine()
		return Result{Redraw: true}

	case key.KeyCtrlK:
		ed.KillToEnd()
		return Result{Redraw: true}

	case key.KeyCtrlW:
		ed.BackwardKillWord()
		return Result{Redraw: true}
	}

	return Result{}
}
