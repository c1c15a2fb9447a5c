package cli

import (
	"io"
	"strings"
	"testing"

	"github.com/bastiangx/treeline/internal/term"
	"github.com/bastiangx/treeline/pkg/config"
	"github.com/bastiangx/treeline/pkg/editor"
	"github.com/bastiangx/treeline/pkg/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedConsole struct {
	events []term.Event
	out    strings.Builder
}

func (c *scriptedConsole) ReadEvent() (term.Event, error) {
	if len(c.events) == 0 {
		return term.Event{}, io.EOF
	}
	ev := c.events[0]
	c.events = c.events[1:]
	return ev, nil
}

func (c *scriptedConsole) WriteString(s string) error { c.out.WriteString(s); return nil }
func (c *scriptedConsole) MoveLeft(n int) error       { return nil }
func (c *scriptedConsole) ClearToEnd() error          { return nil }
func (c *scriptedConsole) ClearLine() error           { return nil }
func (c *scriptedConsole) Flush() error               { return nil }

func typed(lines ...string) []term.Event {
	var events []term.Event
	for _, line := range lines {
		for _, r := range line {
			events = append(events, term.Event{Kind: term.EventRune, Rune: r})
		}
		events = append(events, term.Event{Kind: term.EventEnter})
	}
	return events
}

func newSession(events []term.Event) (*Session, *trie.Trie) {
	cfg := config.DefaultConfig()
	history := trie.New()
	ed := editor.New(&scriptedConsole{events: events}, history, cfg)
	return NewSession(ed, cfg), history
}

func TestSessionRecordsCommittedLines(t *testing.T) {
	session, history := newSession(typed("build", "test", "quit"))

	require.NoError(t, session.Run())

	assert.ElementsMatch(t, []string{"build", "test"}, history.Words().Collect())
}

func TestSessionExitWordsAreNotRecorded(t *testing.T) {
	for _, word := range []string{"q", "quit", "exit", "QUIT", "Exit"} {
		session, history := newSession(typed(word))

		require.NoError(t, session.Run())
		assert.Empty(t, history.Words().Collect(), "exit word %q must not be stored", word)
	}
}

func TestSessionTrimsBeforeInsert(t *testing.T) {
	session, history := newSession(typed("  build  ", "quit"))

	require.NoError(t, session.Run())
	assert.Equal(t, []string{"build"}, history.Words().Collect())
}

func TestSessionSkipsBlankLines(t *testing.T) {
	session, history := newSession(typed("", "   ", "quit"))

	require.NoError(t, session.Run())
	assert.Empty(t, history.Words().Collect())
}

func TestSessionEndsOnInterrupt(t *testing.T) {
	events := typed("half")
	// Replace the trailing Enter with an interrupt mid-line.
	events[len(events)-1] = term.Event{Kind: term.EventInterrupt}
	session, history := newSession(events)

	require.NoError(t, session.Run())
	assert.Empty(t, history.Words().Collect())
}

func TestSessionSurfacesTerminalFailure(t *testing.T) {
	session, _ := newSession(typed("no exit word follows"))

	err := session.Run()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSessionHistoryVisibleToNextCompletion(t *testing.T) {
	events := typed("hello world")
	events = append(events, term.Event{Kind: term.EventRune, Rune: 'h'})
	events = append(events, term.Event{Kind: term.EventTab})
	events = append(events, typed("ello quit")...)

	cfg := config.DefaultConfig()
	history := trie.New()
	console := &scriptedConsole{events: events}
	ed := editor.New(console, history, cfg)
	session := NewSession(ed, cfg)

	err := session.Run()
	assert.ErrorIs(t, err, io.EOF)

	// The entry committed in cycle one is listed by the tab press in
	// cycle two: once from the echo, once from the candidate listing.
	assert.GreaterOrEqual(t, strings.Count(console.out.String(), "hello world"), 2)
}
