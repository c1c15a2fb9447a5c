// Package cli runs the interactive prompt session: one editor, one history
// trie, looping until an exit word is committed or the user interrupts.
package cli

import (
	"errors"
	"strings"

	"github.com/bastiangx/treeline/internal/utils"
	"github.com/bastiangx/treeline/pkg/config"
	"github.com/bastiangx/treeline/pkg/editor"
	"github.com/charmbracelet/log"
)

// Session drives the edit loop. Everything runs on the calling goroutine;
// history mutations from one commit are visible to the next completion
// query without any locking.
type Session struct {
	editor *editor.Editor
	cfg    *config.Config
}

// NewSession handles initialization of the Session with an editor and config
func NewSession(ed *editor.Editor, cfg *config.Config) *Session {
	return &Session{
		editor: ed,
		cfg:    cfg,
	}
}

// Run loops reading committed lines. Each accepted line is trimmed and
// inserted into the history; exit words (compared case-insensitively) end
// the session without being recorded. Returns nil on exit word or
// interrupt, and the underlying error on any terminal failure.
func (s *Session) Run() error {
	for {
		line, err := s.editor.ReadLine()
		if errors.Is(err, editor.ErrInterrupted) {
			log.Debug("Session interrupted")
			return nil
		}
		if err != nil {
			return err
		}

		if utils.IsExitWord(line, s.cfg.CLI.ExitWords) {
			log.Debug("Exit word committed, ending session")
			return nil
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		s.editor.History().Insert(trimmed)
		log.Debug("Recorded entry", "entry", trimmed)
	}
}
