package onboarding

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/onboardr/internal/forms"
	"github.com/mark3labs/onboardr/internal/tui/theme"
	"github.com/mark3labs/onboardr/internal/tui/wizard"
)

// OTPMode selects the wording of the verification step.
type OTPMode int

const (
	OTPReset   OTPMode = iota // Sign-in: code from the reset email
	OTPConfirm                // Sign-up: confirm the new account
)

// OTPStep collects a six digit verification code. The step auto-submits
// the moment the sixth digit is entered; shorter input never submits.
type OTPStep struct {
	mode  OTPMode
	theme *theme.Theme

	code      string
	completed bool // Set once the full code has been emitted
	notice    string
	submitErr string

	width  int
	height int
}

// NewOTPStep creates the verification code step.
func NewOTPStep(mode OTPMode, th *theme.Theme) *OTPStep {
	return &OTPStep{
		mode:  mode,
		theme: th,
	}
}

func (o *OTPStep) Init() tea.Cmd {
	return nil
}

func (o *OTPStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		key := msg.String()
		switch {
		case key == "backspace":
			if len(o.code) > 0 {
				o.code = o.code[:len(o.code)-1]
			}
			o.submitErr = ""
			return nil
		case key == "ctrl+r":
			return func() tea.Msg {
				return ResendCodeMsg{}
			}
		case key == "tab":
			return func() tea.Msg {
				return wizard.TabExitForwardMsg{}
			}
		case key == "shift+tab":
			return func() tea.Msg {
				return wizard.TabExitBackwardMsg{}
			}
		case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
			if len(o.code) >= forms.CodeLength {
				return nil
			}
			o.code += key
			o.submitErr = ""
			if forms.CodeComplete(o.code) && !o.completed {
				o.completed = true
				code := o.code
				return func() tea.Msg {
					return CodeCompletedMsg{Code: code}
				}
			}
		}
	}
	return nil
}

func (o *OTPStep) View() string {
	s := o.theme.S()

	subtitle := "Enter the 6-digit code we emailed you."
	if o.mode == OTPConfirm {
		subtitle = "Enter the 6-digit code to confirm your account."
	}

	cellStyle := lipgloss.NewStyle().
		Width(3).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(o.theme.BgSurface1)).
		Foreground(lipgloss.Color(o.theme.FgBase))

	cells := make([]string, forms.CodeLength)
	for i := 0; i < forms.CodeLength; i++ {
		ch := " "
		if i < len(o.code) {
			ch = string(o.code[i])
		}
		cells[i] = cellStyle.Render(ch)
	}
	boxes := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	parts := []string{
		s.Subtitle.Render(subtitle),
		"",
		boxes,
	}
	if o.notice != "" {
		parts = append(parts, "", s.Success.Render(o.notice))
	}
	if o.submitErr != "" {
		parts = append(parts, "", s.FieldError.Bold(true).Render("✗ "+o.submitErr))
	}
	parts = append(parts, "", s.Hint.Render(wizard.RenderHintBar(o.theme, "0-9", "enter code", "ctrl+r", "resend code")))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetSize updates the step dimensions.
// SetTheme restyles the step for a switched theme.
func (o *OTPStep) SetTheme(th *theme.Theme) {
	o.theme = th
}

func (o *OTPStep) SetSize(width, height int) {
	o.width = width
	o.height = height
}

func (o *OTPStep) Focus() {}
func (o *OTPStep) Blur()  {}

// Code returns the digits entered so far.
func (o *OTPStep) Code() string {
	return o.code
}

// SetNotice shows a transient informational line, e.g. after a resend.
func (o *OTPStep) SetNotice(msg string) {
	o.notice = msg
}

// ClearNotice removes the transient line.
func (o *OTPStep) ClearNotice() {
	o.notice = ""
}

// SetSubmitError surfaces a failed verification inline and clears the
// code so a fresh one can be entered and auto-submitted again.
func (o *OTPStep) SetSubmitError(msg string) {
	o.submitErr = msg
	o.code = ""
	o.completed = false
}

// Submit re-emits the code when it is already complete. Used by the
// Next button; incomplete codes render a validation error instead.
func (o *OTPStep) Submit() tea.Cmd {
	if err := forms.ValidateCode(o.code); err != nil {
		o.submitErr = err.Message
		return nil
	}
	if o.completed {
		// Auto-submit already fired for this code.
		return nil
	}
	o.completed = true
	code := o.code
	return func() tea.Msg {
		return CodeCompletedMsg{Code: code}
	}
}
