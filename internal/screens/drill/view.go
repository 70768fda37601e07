package drill

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

func positionLabel(i, n int) string {
	return fmt.Sprintf("%d/%d", i, n)
}

func (s *DrillScreen) View(width, height int) string {
	if s.errMsg != "" {
		return theme.Failure.
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n" + s.errMsg)
	}
	if s.finishing {
		return theme.Hint.
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n  Saving results...")
	}

	var b strings.Builder

	info := theme.Hint.Render(fmt.Sprintf("  Policy: %s   Correct: %d / %d",
		s.engine.Policy(), s.correct, s.resolved))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(theme.Rule.Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if q := s.engine.Current(); q != nil {
		b.WriteString(theme.Prompt.
			Width(width).
			Align(lipgloss.Center).
			Render(q.Prompt()))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.input.View()))
	b.WriteString("\n\n")

	if fb := s.feedback(); fb != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(fb))
		b.WriteString("\n\n")
	}

	bar := components.NewProgressBar("Progress", s.engine.Index(), s.engine.Len(), min(width-4, 60))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar.View()))

	return b.String()
}

// feedback renders the outcome of the previous answer with the same words
// the line protocol prints.
func (s *DrillScreen) feedback() string {
	if s.last == nil {
		return ""
	}
	if !s.last.Resolved() {
		return theme.Invalid.Render(s.last.Invalid.Message)
	}
	result := strconv.FormatBool(s.last.Correct)
	if s.last.Correct {
		return theme.Correct.Render("✓ " + result)
	}
	return theme.Incorrect.Render("✗ " + result)
}
