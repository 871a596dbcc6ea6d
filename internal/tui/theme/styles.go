package theme

import "charm.land/lipgloss/v2"

// Styles contains pre-built lipgloss styles shared across the TUI.
type Styles struct {
	HeaderTitle lipgloss.Style
	Subtitle    lipgloss.Style
	FieldLabel  lipgloss.Style
	FieldError  lipgloss.Style
	Hint        lipgloss.Style
	Link        lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
}
