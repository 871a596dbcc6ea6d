package onboarding

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/onboardr/internal/provider"
	"github.com/mark3labs/onboardr/internal/settings"
	"github.com/mark3labs/onboardr/internal/tui/theme"
	"github.com/mark3labs/onboardr/internal/tui/wizard"
)

// CompletionStep is the success screen shown after provider setup.
// Its primary action records the completion flag and exits.
type CompletionStep struct {
	store settings.Store
	theme *theme.Theme

	width  int
	height int
}

// NewCompletionStep creates the completion screen.
func NewCompletionStep(store settings.Store, th *theme.Theme) *CompletionStep {
	return &CompletionStep{
		store: store,
		theme: th,
	}
}

func (c *CompletionStep) Init() tea.Cmd {
	return nil
}

func (c *CompletionStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return func() tea.Msg {
				return CompleteOnboardingMsg{}
			}
		}
	}
	return nil
}

func (c *CompletionStep) View() string {
	s := c.theme.S()

	var configured []string
	for _, id := range provider.All {
		if c.store.ProviderSettings(id).ChatCapable() {
			configured = append(configured, provider.DisplayName(id))
		}
	}

	summary := "No AI provider configured yet. You can add one later in settings."
	if len(configured) > 0 {
		summary = fmt.Sprintf("Ready to go with %s.", joinAnd(configured))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.Success.Bold(true).Render("✓ You're all set"),
		"",
		s.Subtitle.Render(summary),
		"",
		s.Hint.Render(wizard.RenderHintBar(c.theme, "enter", "start the editor")),
	)
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		out := ""
		for i, it := range items[:len(items)-1] {
			if i > 0 {
				out += ", "
			}
			out += it
		}
		return out + ", and " + items[len(items)-1]
	}
}

// SetSize updates the step dimensions.
// SetTheme restyles the step for a switched theme.
func (c *CompletionStep) SetTheme(th *theme.Theme) {
	c.theme = th
}

func (c *CompletionStep) SetSize(width, height int) {
	c.width = width
	c.height = height
}

func (c *CompletionStep) Focus() {}
func (c *CompletionStep) Blur()  {}
