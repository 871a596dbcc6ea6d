package onboarding

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mark3labs/onboardr/internal/flow"
	"github.com/mark3labs/onboardr/internal/tui/theme"
)

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func TestCredentialsStep_ValidationBlocksSubmit(t *testing.T) {
	c := NewCredentialsStep(CredentialsSignIn, theme.NewCatppuccinMocha())

	if cmd := c.Submit(); cmd != nil {
		t.Fatal("empty form must not submit")
	}
	if c.emailErr == "" || c.passwordErr == "" {
		t.Errorf("expected errors on both fields, got email=%q password=%q", c.emailErr, c.passwordErr)
	}

	c.emailInput.SetValue("not-an-email")
	c.passwordInput.SetValue("short")
	if cmd := c.Submit(); cmd != nil {
		t.Fatal("invalid values must not submit")
	}
	if c.emailErr == "" || c.passwordErr == "" {
		t.Error("expected shape and length errors")
	}
}

func TestCredentialsStep_SubmitEmitsFlowMessage(t *testing.T) {
	tests := []struct {
		mode CredentialsMode
	}{
		{CredentialsSignIn},
		{CredentialsSignUp},
	}
	for _, tt := range tests {
		c := NewCredentialsStep(tt.mode, theme.NewCatppuccinMocha())
		c.emailInput.SetValue("ada@example.com")
		c.passwordInput.SetValue("longenough")

		cmd := c.Submit()
		if cmd == nil {
			t.Fatal("valid form must submit")
		}

		switch msg := cmd().(type) {
		case SignInSubmittedMsg:
			if tt.mode != CredentialsSignIn {
				t.Error("sign-up mode emitted a sign-in message")
			}
			if msg.Email != "ada@example.com" {
				t.Errorf("unexpected email %q", msg.Email)
			}
		case SignUpSubmittedMsg:
			if tt.mode != CredentialsSignUp {
				t.Error("sign-in mode emitted a sign-up message")
			}
		default:
			t.Fatalf("unexpected message %T", msg)
		}
	}
}

func TestCredentialsStep_ForgotPasswordLink(t *testing.T) {
	c := NewCredentialsStep(CredentialsSignIn, theme.NewCatppuccinMocha())

	cmd := c.Update(ctrlKey('r'))
	if cmd == nil {
		t.Fatal("expected forgot-password link to emit")
	}
	msg, ok := cmd().(GoToPageMsg)
	if !ok || msg.Page != flow.PageResetRequest {
		t.Errorf("expected GoToPageMsg to reset request, got %#v", cmd())
	}

	// Sign-up mode has no reset chain
	c2 := NewCredentialsStep(CredentialsSignUp, theme.NewCatppuccinMocha())
	if cmd := c2.Update(ctrlKey('r')); cmd != nil {
		t.Error("sign-up mode must ignore ctrl+r")
	}
}
