package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mark3labs/onboardr/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonID identifies a button for activation handling.
type ButtonID int

const (
	ButtonNone ButtonID = iota
	ButtonBack
	ButtonNext
)

// Button represents a single button in the button bar.
type Button struct {
	ID    ButtonID
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with focus tracking and
// consistent styling.
type ButtonBar struct {
	buttons []Button
	focused int // Index of focused button, -1 when none
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focused: -1,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() {
	b.Blur()
	for i := range b.buttons {
		if b.buttons[i].State != ButtonDisabled {
			b.focused = i
			b.buttons[i].State = ButtonFocused
			return
		}
	}
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() {
	b.Blur()
	for i := len(b.buttons) - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.focused = i
			b.buttons[i].State = ButtonFocused
			return
		}
	}
}

// FocusNext moves focus to the next enabled button.
// Returns false if focus would move past the last button, leaving the
// bar blurred so the caller can hand focus back to step content.
func (b *ButtonBar) FocusNext() bool {
	if b.focused < 0 {
		b.FocusFirst()
		return b.focused >= 0
	}
	for i := b.focused + 1; i < len(b.buttons); i++ {
		if b.buttons[i].State != ButtonDisabled {
			b.buttons[b.focused].State = ButtonNormal
			b.focused = i
			b.buttons[i].State = ButtonFocused
			return true
		}
	}
	b.Blur()
	return false
}

// FocusPrev moves focus to the previous enabled button.
// Returns false if focus would move before the first button.
func (b *ButtonBar) FocusPrev() bool {
	if b.focused < 0 {
		b.FocusLast()
		return b.focused >= 0
	}
	for i := b.focused - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.buttons[b.focused].State = ButtonNormal
			b.focused = i
			b.buttons[i].State = ButtonFocused
			return true
		}
	}
	b.Blur()
	return false
}

// FocusedButton returns the ID of the focused button, or ButtonNone.
func (b *ButtonBar) FocusedButton() ButtonID {
	if b.focused < 0 || b.focused >= len(b.buttons) {
		return ButtonNone
	}
	return b.buttons[b.focused].ID
}

// Blur removes focus from all buttons.
func (b *ButtonBar) Blur() {
	if b.focused >= 0 && b.focused < len(b.buttons) {
		b.buttons[b.focused].State = ButtonNormal
	}
	b.focused = -1
}

// SetEnabled enables or disables the button with the given ID.
func (b *ButtonBar) SetEnabled(id ButtonID, enabled bool) {
	for i := range b.buttons {
		if b.buttons[i].ID != id {
			continue
		}
		if enabled && b.buttons[i].State == ButtonDisabled {
			b.buttons[i].State = ButtonNormal
		} else if !enabled {
			if b.focused == i {
				b.focused = -1
			}
			b.buttons[i].State = ButtonDisabled
		}
	}
}

// Render renders the button bar with proper spacing, styled from the
// active theme.
func (b *ButtonBar) Render(th *theme.Theme) string {
	if len(b.buttons) == 0 {
		return ""
	}

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.FgBase)).
		Background(lipgloss.Color(th.BgSurface1)).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	disabledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.FgMuted)).
		Background(lipgloss.Color(th.BgSurface0)).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.BgBase)).
		Background(lipgloss.Color(th.Primary)).
		Bold(true).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	var renderedButtons []string
	for _, btn := range b.buttons {
		var rendered string
		switch btn.State {
		case ButtonDisabled:
			rendered = disabledStyle.Render(btn.Label)
		case ButtonFocused:
			rendered = focusedStyle.Render(btn.Label)
		default: // ButtonNormal
			rendered = normalStyle.Render(btn.Label)
		}
		renderedButtons = append(renderedButtons, rendered)
	}

	result := strings.Join(renderedButtons, "")

	// Center the button bar
	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, result)
}

// CreateBackNextButtons creates the standard Back/Next button set.
// nextLabel customizes the forward button (e.g., "Next", "Finish").
func CreateBackNextButtons(backEnabled, nextEnabled bool, nextLabel string) []Button {
	buttons := make([]Button, 0, 2)

	backState := ButtonNormal
	if !backEnabled {
		backState = ButtonDisabled
	}
	buttons = append(buttons, Button{
		ID:    ButtonBack,
		Label: "← Back",
		State: backState,
	})

	nextState := ButtonNormal
	if !nextEnabled {
		nextState = ButtonDisabled
	}
	buttons = append(buttons, Button{
		ID:    ButtonNext,
		Label: nextLabel,
		State: nextState,
	})

	return buttons
}
