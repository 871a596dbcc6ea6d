package onboarding

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	glamour "charm.land/glamour/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/onboardr/internal/flow"
	"github.com/mark3labs/onboardr/internal/tui/theme"
	"github.com/mark3labs/onboardr/internal/tui/wizard"
)

const welcomeBody = `Welcome to **onboardr**, the guided setup for your editor.

In a couple of short steps you will:

- Sign in or create an account
- Connect an AI provider for chat and completions
- Optionally import your existing editor settings

Nothing is sent anywhere until you finish.`

// WelcomeStep is the shared first screen of both flows. It renders a
// short markdown blurb and offers a flow toggle.
type WelcomeStep struct {
	flow   flow.FlowType
	theme  *theme.Theme
	width  int
	height int
	body   string
}

// NewWelcomeStep creates the welcome screen for the given flow.
func NewWelcomeStep(f flow.FlowType, th *theme.Theme) *WelcomeStep {
	return &WelcomeStep{
		flow:  f,
		theme: th,
		body:  renderMarkdown(welcomeBody, inputWidth+4, th.IsDark),
	}
}

// renderMarkdown renders markdown with glamour, falling back to the
// raw text if rendering fails.
func renderMarkdown(content string, width int, dark bool) string {
	if width > 120 {
		width = 120
	}
	style := "light"
	if dark {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSuffix(rendered, "\n")
}

func (w *WelcomeStep) Init() tea.Cmd {
	return nil
}

func (w *WelcomeStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return w.Submit()
		case "ctrl+s":
			target := flow.FlowSignUp
			if w.flow == flow.FlowSignUp {
				target = flow.FlowSignIn
			}
			return func() tea.Msg {
				return SwitchFlowMsg{Flow: target}
			}
		}
	}
	return nil
}

func (w *WelcomeStep) View() string {
	s := w.theme.S()

	var toggle string
	if w.flow == flow.FlowSignIn {
		toggle = wizard.RenderHintBar(w.theme, "ctrl+s", "create an account instead")
	} else {
		toggle = wizard.RenderHintBar(w.theme, "ctrl+s", "sign in instead")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		w.body,
		"",
		s.Hint.Render(toggle),
	)
}

// SetSize updates the step dimensions.
// SetTheme restyles the step and re-renders the markdown body for the
// new palette's light/dark variant.
func (w *WelcomeStep) SetTheme(th *theme.Theme) {
	w.theme = th
	w.body = renderMarkdown(welcomeBody, inputWidth+4, th.IsDark)
}

func (w *WelcomeStep) SetSize(width, height int) {
	w.width = width
	w.height = height
}

func (w *WelcomeStep) Focus() {}
func (w *WelcomeStep) Blur()  {}

// Submit advances past the welcome screen.
func (w *WelcomeStep) Submit() tea.Cmd {
	return func() tea.Msg {
		return AdvanceMsg{}
	}
}
