// Package editor implements the interactive line editor: a rune buffer
// driven by logical key events, with prefix completion answered from the
// history trie. The logical cursor always sits at the end of the buffer;
// mid-line editing is not supported.
package editor

import (
	"errors"

	"github.com/bastiangx/treeline/internal/term"
	"github.com/bastiangx/treeline/internal/utils"
	"github.com/bastiangx/treeline/pkg/config"
	"github.com/bastiangx/treeline/pkg/trie"
)

// ErrInterrupted is returned by ReadLine when the user hits the interrupt
// key. The caller terminates the session without further output.
var ErrInterrupted = errors.New("interrupted")

// Console is the terminal surface the editor draws on.
type Console interface {
	ReadEvent() (term.Event, error)
	WriteString(s string) error
	MoveLeft(n int) error
	ClearToEnd() error
	ClearLine() error
	Flush() error
}

// Editor reads one line at a time from a Console, consulting the history
// trie for tab completion. Completion only ever displays candidates; the
// buffer is never mutated by it.
type Editor struct {
	console Console
	history *trie.Trie
	render  *renderer
	buf     []rune
}

// New creates an editor over console, completing against history.
func New(console Console, history *trie.Trie, cfg *config.Config) *Editor {
	return &Editor{
		console: console,
		history: history,
		render:  newRenderer(cfg),
	}
}

// History returns the trie backing completion.
func (e *Editor) History() *trie.Trie {
	return e.history
}

// ReadLine runs one input cycle: prompt, edit, commit. It returns the raw
// buffer contents on Enter (not trimmed), ErrInterrupted on the interrupt
// key, and any terminal failure as-is.
func (e *Editor) ReadLine() (string, error) {
	e.buf = e.buf[:0]
	if err := e.printPrompt(); err != nil {
		return "", err
	}

	for {
		ev, err := e.console.ReadEvent()
		if err != nil {
			return "", err
		}

		switch ev.Kind {
		case term.EventInterrupt:
			return "", ErrInterrupted
		case term.EventEnter:
			if err := e.write("\r\n"); err != nil {
				return "", err
			}
			return string(e.buf), nil
		case term.EventBackspace:
			err = e.deleteLastChar()
		case term.EventWordBackspace:
			err = e.deleteLastWord()
		case term.EventTab:
			err = e.listCompletions()
		case term.EventRune:
			err = e.appendRune(ev.Rune)
		default:
			continue
		}
		if err != nil {
			return "", err
		}
	}
}

func (e *Editor) appendRune(r rune) error {
	e.buf = append(e.buf, r)
	return e.write(string(r))
}

func (e *Editor) deleteLastChar() error {
	if len(e.buf) == 0 {
		return nil
	}
	e.buf = e.buf[:len(e.buf)-1]
	if err := e.console.MoveLeft(1); err != nil {
		return err
	}
	if err := e.console.ClearToEnd(); err != nil {
		return err
	}
	return e.console.Flush()
}

// deleteLastWord truncates the buffer to the part before its last space.
// A single-word buffer is cleared entirely and the prompt redrawn.
// Assumes the cursor is at the end of the line.
func (e *Editor) deleteLastWord() error {
	head, removed, ok := utils.SplitLastWord(string(e.buf))
	if !ok {
		e.buf = e.buf[:0]
		if err := e.console.ClearLine(); err != nil {
			return err
		}
		return e.printPrompt()
	}

	e.buf = []rune(head)
	if err := e.console.MoveLeft(removed); err != nil {
		return err
	}
	if err := e.console.ClearToEnd(); err != nil {
		return err
	}
	return e.console.Flush()
}

// listCompletions prints every history entry prefixed by the current buffer,
// then redraws the prompt and the unmodified buffer.
func (e *Editor) listCompletions() error {
	if err := e.console.WriteString("\r\n"); err != nil {
		return err
	}

	walker := e.history.WordsWithPrefix(string(e.buf))
	shown := 0
	for {
		word, ok := walker.Next()
		if !ok {
			break
		}
		if e.render.limit > 0 && shown >= e.render.limit {
			break
		}
		if err := e.console.WriteString(e.render.candidate(word) + "\r\n"); err != nil {
			return err
		}
		shown++
	}

	if err := e.console.WriteString(e.render.prompt()); err != nil {
		return err
	}
	return e.write(string(e.buf))
}

func (e *Editor) printPrompt() error {
	return e.write(e.render.prompt())
}

func (e *Editor) write(s string) error {
	if err := e.console.WriteString(s); err != nil {
		return err
	}
	return e.console.Flush()
}
