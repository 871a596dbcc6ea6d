package onboarding

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/onboardr/internal/forms"
	"github.com/mark3labs/onboardr/internal/tui/theme"
	"github.com/mark3labs/onboardr/internal/tui/wizard"
)

// PasswordMode selects the wording of the password step.
type PasswordMode int

const (
	PasswordCreate PasswordMode = iota // Sign-up: choose a password
	PasswordReset                      // Sign-in: replace a forgotten one
)

// PasswordStep collects a new password and its confirmation. Used for
// both the create-password and reset-password screens.
type PasswordStep struct {
	mode  PasswordMode
	theme *theme.Theme

	passwordInput textinput.Model
	confirmInput  textinput.Model
	focusIndex    int

	passwordErr string
	confirmErr  string
	submitErr   string

	width  int
	height int
}

// NewPasswordStep creates the password form for the given mode.
func NewPasswordStep(mode PasswordMode, th *theme.Theme) *PasswordStep {
	password := newPasswordInput(th, "new password")
	password.Focus()
	confirm := newPasswordInput(th, "repeat password")

	return &PasswordStep{
		mode:          mode,
		theme:         th,
		passwordInput: password,
		confirmInput:  confirm,
	}
}

func (p *PasswordStep) Init() tea.Cmd {
	return textinput.Blink
}

func (p *PasswordStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return p.Submit()
		case "tab":
			if p.focusIndex == 0 {
				p.setFocus(1)
				return nil
			}
			return func() tea.Msg {
				return wizard.TabExitForwardMsg{}
			}
		case "shift+tab":
			if p.focusIndex == 1 {
				p.setFocus(0)
				return nil
			}
			return func() tea.Msg {
				return wizard.TabExitBackwardMsg{}
			}
		default:
			p.passwordErr = ""
			p.confirmErr = ""
			p.submitErr = ""
		}
	}

	var cmd tea.Cmd
	if p.focusIndex == 0 {
		p.passwordInput, cmd = p.passwordInput.Update(msg)
	} else {
		p.confirmInput, cmd = p.confirmInput.Update(msg)
	}
	return cmd
}

func (p *PasswordStep) setFocus(index int) {
	p.focusIndex = index
	if index == 0 {
		p.passwordInput.Focus()
		p.confirmInput.Blur()
	} else {
		p.passwordInput.Blur()
		p.confirmInput.Focus()
	}
}

func (p *PasswordStep) View() string {
	s := p.theme.S()

	label := "New password"
	if p.mode == PasswordCreate {
		label = "Choose a password"
	}

	parts := []string{
		renderField(p.theme, label, p.passwordInput, p.passwordErr),
		"",
		renderField(p.theme, "Confirm password", p.confirmInput, p.confirmErr),
	}
	if p.submitErr != "" {
		parts = append(parts, "", s.FieldError.Bold(true).Render("✗ "+p.submitErr))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetSize updates the step dimensions.
// SetTheme restyles the step for a switched theme, keeping typed input.
func (p *PasswordStep) SetTheme(th *theme.Theme) {
	p.theme = th
	p.passwordInput.SetStyles(inputStyles(th))
	p.confirmInput.SetStyles(inputStyles(th))
}

func (p *PasswordStep) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Focus focuses the password field.
func (p *PasswordStep) Focus() {
	p.setFocus(0)
}

// FocusLast focuses the confirmation field.
func (p *PasswordStep) FocusLast() {
	p.setFocus(1)
}

// Blur blurs both fields.
func (p *PasswordStep) Blur() {
	p.passwordInput.Blur()
	p.confirmInput.Blur()
}

// SetSubmitError surfaces a failed submission inline.
func (p *PasswordStep) SetSubmitError(msg string) {
	p.submitErr = msg
}

// Submit validates password and confirmation and emits
// PasswordSubmittedMsg.
func (p *PasswordStep) Submit() tea.Cmd {
	password := p.passwordInput.Value()
	confirm := p.confirmInput.Value()

	p.passwordErr = ""
	p.confirmErr = ""
	if err := forms.ValidatePassword(password); err != nil {
		p.passwordErr = err.Message
	}
	if err := forms.ValidateConfirm(password, confirm); err != nil {
		p.confirmErr = err.Message
	}
	if p.passwordErr != "" || p.confirmErr != "" {
		return nil
	}

	return func() tea.Msg {
		return PasswordSubmittedMsg{Password: password}
	}
}
