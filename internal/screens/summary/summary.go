package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// SummaryScreen displays the result of a finished drill.
type SummaryScreen struct {
	result  *session.Result
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. saveErr is shown when persisting failed.
func New(result *session.Result, saveErr error) *SummaryScreen {
	return &SummaryScreen{result: result, saveErr: saveErr}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	if res == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var b strings.Builder

	b.WriteString(center.Inherit(theme.Title).Render("Drill complete!"))
	b.WriteString("\n\n")
	b.WriteString(center.Inherit(theme.Body).Render(fmt.Sprintf("Questions: %d", len(res.Questions))))
	b.WriteString("\n\n")

	lines := res.Summary.Lines()
	if len(lines) == 0 {
		b.WriteString(center.Inherit(theme.Hint).Render("No statistics were requested."))
		b.WriteString("\n")
	} else {
		b.WriteString(center.Inherit(theme.Stat).Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	switch {
	case s.saveErr != nil:
		b.WriteString("\n")
		b.WriteString(center.Inherit(theme.Failure).Render("Could not save results: " + s.saveErr.Error()))
	case res.Saved > 0:
		b.WriteString("\n")
		b.WriteString(center.Inherit(theme.Hint).Render(fmt.Sprintf("Saved %d answers.", res.Saved)))
	}

	return b.String()
}
