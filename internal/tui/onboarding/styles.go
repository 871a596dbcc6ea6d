package onboarding

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/onboardr/internal/tui/theme"
)

const inputWidth = 50

// inputStyles builds the shared text input styles for a theme. Also
// used to restyle live inputs when the theme switches mid-screen.
func inputStyles(th *theme.Theme) textinput.Styles {
	return textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(th.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(th.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	}
}

// newInput creates a themed text input in the shared style.
func newInput(th *theme.Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetStyles(inputStyles(th))
	ti.SetWidth(inputWidth)
	return ti
}

// newPasswordInput creates a themed input with masked echo.
func newPasswordInput(th *theme.Theme, placeholder string) textinput.Model {
	ti := newInput(th, placeholder)
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}

// renderField renders a labeled input with an optional inline error.
func renderField(th *theme.Theme, label string, input textinput.Model, errMsg string) string {
	s := th.S()

	boxStyle := lipgloss.NewStyle().
		Width(inputWidth + 4).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.BgSurface1))

	parts := []string{
		s.FieldLabel.Render(label),
		boxStyle.Render(input.View()),
	}
	if errMsg != "" {
		parts = append(parts, s.FieldError.Bold(true).Render("✗ "+errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
