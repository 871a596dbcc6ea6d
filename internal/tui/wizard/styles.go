package wizard

import (
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/onboardr/internal/tui/theme"
)

// RenderHintBar renders a hint bar with the given key-description pairs,
// styled from the active theme.
// Example: RenderHintBar(th, "tab", "next field", "enter", "submit")
// Returns: "tab next field • enter submit"
func RenderHintBar(th *theme.Theme, pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.FgSubtle)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.FgMuted))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.BgOverlay))

	var result string
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i]
		desc := pairs[i+1]

		if i > 0 {
			result += " " + separatorStyle.Render("•") + " "
		}

		result += keyStyle.Render(key) + " " + descStyle.Render(desc)
	}

	return result
}
