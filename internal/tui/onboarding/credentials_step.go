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

// CredentialsMode selects which flow the credentials step serves.
type CredentialsMode int

const (
	CredentialsSignIn CredentialsMode = iota
	CredentialsSignUp
)

// CredentialsStep handles the email + password form shared by sign-in
// and sign-up. The mode decides the links shown and the message emitted
// on submit.
type CredentialsStep struct {
	mode  CredentialsMode
	theme *theme.Theme

	emailInput    textinput.Model
	passwordInput textinput.Model
	focusIndex    int

	emailErr    string
	passwordErr string
	submitErr   string

	width  int
	height int
}

// NewCredentialsStep creates the credentials form for the given mode.
func NewCredentialsStep(mode CredentialsMode, th *theme.Theme) *CredentialsStep {
	email := newInput(th, "you@example.com")
	email.Focus()
	password := newPasswordInput(th, "password")

	return &CredentialsStep{
		mode:          mode,
		theme:         th,
		emailInput:    email,
		passwordInput: password,
	}
}

func (c *CredentialsStep) Init() tea.Cmd {
	return textinput.Blink
}

func (c *CredentialsStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return c.Submit()
		case "tab":
			if c.focusIndex == 0 {
				c.setFocus(1)
				return nil
			}
			return func() tea.Msg {
				return wizard.TabExitForwardMsg{}
			}
		case "shift+tab":
			if c.focusIndex == 1 {
				c.setFocus(0)
				return nil
			}
			return func() tea.Msg {
				return wizard.TabExitBackwardMsg{}
			}
		case "ctrl+r":
			if c.mode == CredentialsSignIn {
				return func() tea.Msg {
					return GoToPageMsg{Page: flow.PageResetRequest}
				}
			}
		case "ctrl+s":
			target := flow.FlowSignUp
			if c.mode == CredentialsSignUp {
				target = flow.FlowSignIn
			}
			return func() tea.Msg {
				return SwitchFlowMsg{Flow: target}
			}
		default:
			c.clearErrors()
		}
	}

	var cmd tea.Cmd
	if c.focusIndex == 0 {
		c.emailInput, cmd = c.emailInput.Update(msg)
	} else {
		c.passwordInput, cmd = c.passwordInput.Update(msg)
	}
	return cmd
}

func (c *CredentialsStep) setFocus(index int) {
	c.focusIndex = index
	if index == 0 {
		c.emailInput.Focus()
		c.passwordInput.Blur()
	} else {
		c.emailInput.Blur()
		c.passwordInput.Focus()
	}
}

func (c *CredentialsStep) clearErrors() {
	c.emailErr = ""
	c.passwordErr = ""
	c.submitErr = ""
}

func (c *CredentialsStep) View() string {
	s := c.theme.S()

	parts := []string{
		renderField(c.theme, "Email", c.emailInput, c.emailErr),
		"",
		renderField(c.theme, "Password", c.passwordInput, c.passwordErr),
	}

	if c.submitErr != "" {
		parts = append(parts, "", s.FieldError.Bold(true).Render("✗ "+c.submitErr))
	}

	var links string
	if c.mode == CredentialsSignIn {
		links = wizard.RenderHintBar(c.theme, "ctrl+r", "forgot password?", "ctrl+s", "create an account")
	} else {
		links = wizard.RenderHintBar(c.theme, "ctrl+s", "sign in instead")
	}
	parts = append(parts, "", s.Hint.Render(links))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetSize updates the step dimensions.
// SetTheme restyles the step for a switched theme, keeping typed input.
func (c *CredentialsStep) SetTheme(th *theme.Theme) {
	c.theme = th
	c.emailInput.SetStyles(inputStyles(th))
	c.passwordInput.SetStyles(inputStyles(th))
}

func (c *CredentialsStep) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Focus focuses the email field.
func (c *CredentialsStep) Focus() {
	c.setFocus(0)
}

// FocusLast focuses the password field (Shift+Tab from the buttons).
func (c *CredentialsStep) FocusLast() {
	c.setFocus(1)
}

// Blur blurs both fields.
func (c *CredentialsStep) Blur() {
	c.emailInput.Blur()
	c.passwordInput.Blur()
}

// SetSubmitError surfaces a failed submission inline.
func (c *CredentialsStep) SetSubmitError(msg string) {
	c.submitErr = msg
}

// Submit validates both fields and emits the flow-specific message.
// On a validation failure nothing is emitted and the errors render
// inline.
func (c *CredentialsStep) Submit() tea.Cmd {
	email := strings.TrimSpace(c.emailInput.Value())
	password := c.passwordInput.Value()

	c.clearErrors()
	if err := forms.ValidateEmail(email); err != nil {
		c.emailErr = err.Message
	}
	if err := forms.ValidatePassword(password); err != nil {
		c.passwordErr = err.Message
	}
	if c.emailErr != "" || c.passwordErr != "" {
		return nil
	}

	if c.mode == CredentialsSignUp {
		return func() tea.Msg {
			return SignUpSubmittedMsg{Email: email, Password: password}
		}
	}
	return func() tea.Msg {
		return SignInSubmittedMsg{Email: email, Password: password}
	}
}
