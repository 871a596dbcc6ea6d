package forms

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// DefaultSubmitDelay is how long the simulated backend takes to answer.
// There is no real auth service behind these forms; the delay stands in for
// the network round trip.
const DefaultSubmitDelay = 1500 * time.Millisecond

// Kind names the logical submission a form performs, for logging and
// analytics.
type Kind string

const (
	KindSignIn        Kind = "sign-in"
	KindRegister      Kind = "register"
	KindResetRequest  Kind = "reset-request"
	KindSetPassword   Kind = "set-password"
	KindVerifyCode    Kind = "verify-code"
	KindResendCode    Kind = "resend-code"
)

// Request describes one submission. Generation is the stepper generation at
// the moment the user submitted; the wizard drops any Result whose
// generation no longer matches, so a timer that fires after the user has
// navigated away cannot apply a stale transition.
type Request struct {
	Kind       Kind
	Generation uint64
}

// Result is delivered as a message when a submission settles. Err is nil on
// success; a non-nil Err is surfaced inline and re-enables the submit
// control, mirroring how validation errors are shown.
type Result struct {
	Request Request
	Err     error
}

// Submitter performs a submission and returns a deferred Result. Injecting
// it keeps the screens testable: production wires a fixed-delay submitter,
// tests substitute an immediate one.
type Submitter interface {
	Submit(req Request) tea.Cmd
}

// DelaySubmitter is the production submitter: it always succeeds after a
// fixed delay.
type DelaySubmitter struct {
	Delay time.Duration
}

// Submit schedules a successful Result after the configured delay.
func (d DelaySubmitter) Submit(req Request) tea.Cmd {
	delay := d.Delay
	if delay <= 0 {
		delay = DefaultSubmitDelay
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return Result{Request: req}
	})
}

// ImmediateSubmitter settles synchronously with the configured error (nil
// for success). Test-only.
type ImmediateSubmitter struct {
	Err error
}

// Submit returns a command that yields the Result without waiting.
func (i ImmediateSubmitter) Submit(req Request) tea.Cmd {
	return func() tea.Msg {
		return Result{Request: req, Err: i.Err}
	}
}
