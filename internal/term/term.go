// Package term wraps raw terminal access for the interactive prompt: scoped
// raw mode, decoding of key bytes into logical events, and the handful of
// ANSI output primitives the editor needs to keep the display in sync with
// its buffer.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal owns buffered access to the tty. Raw mode is acquired with
// EnableRaw and must be released with Restore on every exit path.
type Terminal struct {
	in       *bufio.Reader
	out      *bufio.Writer
	fd       int
	oldState *term.State
}

// New returns a Terminal over stdin/stdout.
func New() *Terminal {
	return &Terminal{
		in:  bufio.NewReader(os.Stdin),
		out: bufio.NewWriter(os.Stdout),
		fd:  int(os.Stdin.Fd()),
	}
}

// NewWithIO returns a Terminal over arbitrary streams. Raw mode calls are
// no-ops when the input is not a real tty, which keeps the editor testable.
func NewWithIO(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
		fd:  -1,
	}
}

// EnableRaw switches the tty into raw input mode.
func (t *Terminal) EnableRaw() error {
	if t.fd < 0 || !term.IsTerminal(t.fd) {
		return nil
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// Restore puts the tty back into its pre-raw state. Safe to call more than
// once and when raw mode was never enabled.
func (t *Terminal) Restore() {
	if t.oldState == nil {
		return
	}
	term.Restore(t.fd, t.oldState)
	t.oldState = nil
}

// WriteString queues s for output.
func (t *Terminal) WriteString(s string) error {
	_, err := t.out.WriteString(s)
	return err
}

// MoveLeft queues a cursor move of n columns to the left.
func (t *Terminal) MoveLeft(n int) error {
	if n <= 0 {
		return nil
	}
	_, err := fmt.Fprintf(t.out, "\x1b[%dD", n)
	return err
}

// ClearToEnd queues an erase from the cursor to the end of the line.
func (t *Terminal) ClearToEnd() error {
	_, err := t.out.WriteString("\x1b[K")
	return err
}

// ClearLine queues an erase of the whole current line and returns the
// cursor to column zero.
func (t *Terminal) ClearLine() error {
	_, err := t.out.WriteString("\r\x1b[2K")
	return err
}

// Flush writes all queued output to the tty.
func (t *Terminal) Flush() error {
	return t.out.Flush()
}
