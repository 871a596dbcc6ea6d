package onboarding

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mark3labs/onboardr/internal/forms"
	"github.com/mark3labs/onboardr/internal/tui/theme"
	"github.com/mark3labs/onboardr/internal/tui/wizard"
)

// DetailsStep collects first and last name during sign-up.
type DetailsStep struct {
	theme *theme.Theme

	firstInput textinput.Model
	lastInput  textinput.Model
	focusIndex int

	firstErr string
	lastErr  string

	width  int
	height int
}

// NewDetailsStep creates the name form.
func NewDetailsStep(th *theme.Theme) *DetailsStep {
	first := newInput(th, "First name")
	first.Focus()
	last := newInput(th, "Last name")

	return &DetailsStep{
		theme:      th,
		firstInput: first,
		lastInput:  last,
	}
}

func (d *DetailsStep) Init() tea.Cmd {
	return textinput.Blink
}

func (d *DetailsStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return d.Submit()
		case "tab":
			if d.focusIndex == 0 {
				d.setFocus(1)
				return nil
			}
			return func() tea.Msg {
				return wizard.TabExitForwardMsg{}
			}
		case "shift+tab":
			if d.focusIndex == 1 {
				d.setFocus(0)
				return nil
			}
			return func() tea.Msg {
				return wizard.TabExitBackwardMsg{}
			}
		default:
			d.firstErr = ""
			d.lastErr = ""
		}
	}

	var cmd tea.Cmd
	if d.focusIndex == 0 {
		d.firstInput, cmd = d.firstInput.Update(msg)
	} else {
		d.lastInput, cmd = d.lastInput.Update(msg)
	}
	return cmd
}

func (d *DetailsStep) setFocus(index int) {
	d.focusIndex = index
	if index == 0 {
		d.firstInput.Focus()
		d.lastInput.Blur()
	} else {
		d.firstInput.Blur()
		d.lastInput.Focus()
	}
}

func (d *DetailsStep) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderField(d.theme, "First name", d.firstInput, d.firstErr),
		"",
		renderField(d.theme, "Last name", d.lastInput, d.lastErr),
	)
}

// SetSize updates the step dimensions.
// SetTheme restyles the step for a switched theme, keeping typed input.
func (d *DetailsStep) SetTheme(th *theme.Theme) {
	d.theme = th
	d.firstInput.SetStyles(inputStyles(th))
	d.lastInput.SetStyles(inputStyles(th))
}

func (d *DetailsStep) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Focus focuses the first name field.
func (d *DetailsStep) Focus() {
	d.setFocus(0)
}

// FocusLast focuses the last name field.
func (d *DetailsStep) FocusLast() {
	d.setFocus(1)
}

// Blur blurs both fields.
func (d *DetailsStep) Blur() {
	d.firstInput.Blur()
	d.lastInput.Blur()
}

// Submit validates the names and emits DetailsSubmittedMsg.
func (d *DetailsStep) Submit() tea.Cmd {
	first := strings.TrimSpace(d.firstInput.Value())
	last := strings.TrimSpace(d.lastInput.Value())

	d.firstErr = ""
	d.lastErr = ""
	if err := forms.ValidateName(forms.FieldFirstName, first); err != nil {
		d.firstErr = err.Message
	}
	if err := forms.ValidateName(forms.FieldLastName, last); err != nil {
		d.lastErr = err.Message
	}
	if d.firstErr != "" || d.lastErr != "" {
		return nil
	}

	return func() tea.Msg {
		return DetailsSubmittedMsg{FirstName: first, LastName: last}
	}
}
