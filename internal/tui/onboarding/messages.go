package onboarding

import "github.com/mark3labs/onboardr/internal/flow"

// AdvanceMsg is sent when a step completes without a submission, asking
// the wizard to move to the next page.
type AdvanceMsg struct{}

// SwitchFlowMsg is sent by the "Sign up instead" / "Sign in instead"
// links to change the active flow.
type SwitchFlowMsg struct {
	Flow flow.FlowType
}

// GoToPageMsg is sent by in-step links that jump to a specific page,
// such as "Forgot password?".
type GoToPageMsg struct {
	Page int
}

// SignInSubmittedMsg is sent when the sign-in credentials validate.
type SignInSubmittedMsg struct {
	Email    string
	Password string
}

// SignUpSubmittedMsg is sent when the sign-up credentials validate.
type SignUpSubmittedMsg struct {
	Email    string
	Password string
}

// DetailsSubmittedMsg is sent when the name fields validate.
type DetailsSubmittedMsg struct {
	FirstName string
	LastName  string
}

// PasswordSubmittedMsg is sent when a new password and its
// confirmation validate.
type PasswordSubmittedMsg struct {
	Password string
}

// ResetRequestedMsg is sent when the reset email validates.
type ResetRequestedMsg struct {
	Email string
}

// CodeCompletedMsg is sent when the verification code reaches exactly
// six digits.
type CodeCompletedMsg struct {
	Code string
}

// ResendCodeMsg is sent by the "Resend code" link. It re-submits
// without changing the page.
type ResendCodeMsg struct{}

// NoticeExpiredMsg dismisses a transient notice. Generation is the
// stepper generation at the time the timer was armed; a mismatch means
// the user navigated away and the message is a no-op.
type NoticeExpiredMsg struct {
	Generation uint64
}

// ImportSettingsMsg is sent when the user triggers the settings import
// on the provider setup screen.
type ImportSettingsMsg struct{}

// FinishMsg is sent by the provider setup screen's Finish button.
// Bypass skips the chat-provider gate ("Continue anyway").
type FinishMsg struct {
	Bypass bool
}

// CompleteOnboardingMsg is sent by the completion screen's primary
// button. It persists the completion flag and exits.
type CompleteOnboardingMsg struct{}
