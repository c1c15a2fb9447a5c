package editor

import (
	"github.com/bastiangx/treeline/pkg/config"
	"github.com/charmbracelet/lipgloss"
)

// renderer holds the lipgloss styles for the prompt and the completion
// candidates, driven by the [prompt] and [completion] config sections.
type renderer struct {
	promptText     string
	promptStyle    lipgloss.Style
	candidateStyle lipgloss.Style
	indent         string
	limit          int
}

func newRenderer(cfg *config.Config) *renderer {
	return &renderer{
		promptText:     cfg.Prompt.Text,
		promptStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Prompt.Color)),
		candidateStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Completion.Color)),
		indent:         cfg.Completion.Indent,
		limit:          cfg.Completion.Limit,
	}
}

func (r *renderer) prompt() string {
	return r.promptStyle.Render(r.promptText)
}

func (r *renderer) candidate(word string) string {
	return r.candidateStyle.Render(r.indent + word)
}
