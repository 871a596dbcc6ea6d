package onboarding

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/onboardr/internal/flow"
	"github.com/mark3labs/onboardr/internal/forms"
	"github.com/mark3labs/onboardr/internal/tui/theme"
	"github.com/mark3labs/onboardr/internal/tui/wizard"
)

// ResetRequestStep asks for the account email to send a reset code to.
type ResetRequestStep struct {
	theme *theme.Theme

	emailInput textinput.Model
	emailErr   string
	submitErr  string

	width  int
	height int
}

// NewResetRequestStep creates the forgot-password form.
func NewResetRequestStep(th *theme.Theme) *ResetRequestStep {
	email := newInput(th, "you@example.com")
	email.Focus()

	return &ResetRequestStep{
		theme:      th,
		emailInput: email,
	}
}

func (r *ResetRequestStep) Init() tea.Cmd {
	return textinput.Blink
}

func (r *ResetRequestStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return r.Submit()
		case "tab":
			return func() tea.Msg {
				return wizard.TabExitForwardMsg{}
			}
		case "shift+tab":
			return func() tea.Msg {
				return wizard.TabExitBackwardMsg{}
			}
		case "ctrl+s":
			// Back to sign in
			return func() tea.Msg {
				return GoToPageMsg{Page: flow.PageCredentials}
			}
		default:
			r.emailErr = ""
			r.submitErr = ""
		}
	}

	var cmd tea.Cmd
	r.emailInput, cmd = r.emailInput.Update(msg)
	return cmd
}

func (r *ResetRequestStep) View() string {
	s := r.theme.S()

	parts := []string{
		s.Subtitle.Render("We'll send a 6-digit code to your email."),
		"",
		renderField(r.theme, "Email", r.emailInput, r.emailErr),
	}
	if r.submitErr != "" {
		parts = append(parts, "", s.FieldError.Bold(true).Render("✗ "+r.submitErr))
	}
	parts = append(parts, "", s.Hint.Render(wizard.RenderHintBar(r.theme, "ctrl+s", "back to sign in")))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetSize updates the step dimensions.
// SetTheme restyles the step for a switched theme, keeping typed input.
func (r *ResetRequestStep) SetTheme(th *theme.Theme) {
	r.theme = th
	r.emailInput.SetStyles(inputStyles(th))
}

func (r *ResetRequestStep) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Focus focuses the email field.
func (r *ResetRequestStep) Focus() {
	r.emailInput.Focus()
}

// Blur blurs the email field.
func (r *ResetRequestStep) Blur() {
	r.emailInput.Blur()
}

// SetSubmitError surfaces a failed submission inline.
func (r *ResetRequestStep) SetSubmitError(msg string) {
	r.submitErr = msg
}

// Submit validates the email and emits ResetRequestedMsg.
func (r *ResetRequestStep) Submit() tea.Cmd {
	email := strings.TrimSpace(r.emailInput.Value())

	r.emailErr = ""
	if err := forms.ValidateEmail(email); err != nil {
		r.emailErr = err.Message
		return nil
	}

	return func() tea.Msg {
		return ResetRequestedMsg{Email: email}
	}
}
