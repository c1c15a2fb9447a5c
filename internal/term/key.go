package term

// EventKind classifies one decoded key event.
type EventKind int

const (
	// EventRune is a plain printable character.
	EventRune EventKind = iota
	// EventEnter commits the current line.
	EventEnter
	// EventTab requests a completion listing.
	EventTab
	// EventBackspace deletes the last character.
	EventBackspace
	// EventWordBackspace deletes the last word.
	EventWordBackspace
	// EventInterrupt terminates the session immediately.
	EventInterrupt
	// EventIgnored covers keys the editor does not handle.
	EventIgnored
)

// Event is one logical key event read from the tty.
type Event struct {
	Kind EventKind
	Rune rune
}

const (
	ctrlC     = 0x03
	ctrlH     = 0x08
	tab       = 0x09
	lineFeed  = 0x0a
	carriage  = 0x0d
	ctrlW     = 0x17
	escape    = 0x1b
	backspace = 0x7f
)

// ReadEvent blocks until one key event is available and decodes it. Escape
// sequences (arrow keys and the like) are consumed whole and reported as
// ignored: mid-line cursor movement is unsupported.
func (t *Terminal) ReadEvent() (Event, error) {
	b, err := t.in.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch b {
	case ctrlC:
		return Event{Kind: EventInterrupt}, nil
	case carriage, lineFeed:
		return Event{Kind: EventEnter}, nil
	case tab:
		return Event{Kind: EventTab}, nil
	case backspace:
		return Event{Kind: EventBackspace}, nil
	case ctrlH, ctrlW:
		// Ctrl+Backspace arrives as 0x08 on most terminals; Ctrl+W is the
		// conventional word-erase key.
		return Event{Kind: EventWordBackspace}, nil
	case escape:
		if err := t.discardEscapeSequence(); err != nil {
			return Event{}, err
		}
		return Event{Kind: EventIgnored}, nil
	}

	if b < 0x20 {
		return Event{Kind: EventIgnored}, nil
	}

	// Multi-byte UTF-8 input: hand the lead byte back and let bufio
	// assemble the full code point.
	if err := t.in.UnreadByte(); err != nil {
		return Event{}, err
	}
	r, _, err := t.in.ReadRune()
	if err != nil {
		return Event{}, err
	}
	return Event{Kind: EventRune, Rune: r}, nil
}

// discardEscapeSequence consumes the remainder of a CSI or SS3 sequence
// following a lone ESC byte.
func (t *Terminal) discardEscapeSequence() error {
	b, err := t.in.ReadByte()
	if err != nil {
		return err
	}
	switch b {
	case '[':
		// CSI: parameter and intermediate bytes end with a final byte in
		// the 0x40..0x7e range.
		for {
			b, err = t.in.ReadByte()
			if err != nil {
				return err
			}
			if b >= 0x40 && b <= 0x7e {
				return nil
			}
		}
	case 'O':
		// SS3: exactly one final byte follows.
		_, err = t.in.ReadByte()
		return err
	default:
		// Alt+key or a bare ESC pair; the byte is already consumed.
		return nil
	}
}
