// Package flow implements the onboarding stepper state machine: two screen
// tables (one per flow), a tagged screen enumeration, and the controller
// that moves a page index through them.
package flow

import "sort"

// FlowType selects which screen table is active.
type FlowType int

const (
	FlowSignIn FlowType = iota
	FlowSignUp
)

// String returns the string representation of a flow type.
func (f FlowType) String() string {
	switch f {
	case FlowSignIn:
		return "sign-in"
	case FlowSignUp:
		return "sign-up"
	default:
		return "unknown"
	}
}

// ScreenID identifies one wizard screen. Screens are a closed set, so a
// lookup result is always one of these tags rather than an untyped key.
type ScreenID int

const (
	ScreenWelcome ScreenID = iota
	ScreenSignInCredentials
	ScreenResetRequest
	ScreenResetCode
	ScreenResetPassword
	ScreenSignUpCredentials
	ScreenSignUpDetails
	ScreenCreatePassword
	ScreenConfirmCode
	ScreenProviderSetup
)

// String returns a stable name for a screen, used in logs and analytics.
func (id ScreenID) String() string {
	switch id {
	case ScreenWelcome:
		return "welcome"
	case ScreenSignInCredentials:
		return "sign-in-credentials"
	case ScreenResetRequest:
		return "reset-request"
	case ScreenResetCode:
		return "reset-code"
	case ScreenResetPassword:
		return "reset-password"
	case ScreenSignUpCredentials:
		return "sign-up-credentials"
	case ScreenSignUpDetails:
		return "sign-up-details"
	case ScreenCreatePassword:
		return "create-password"
	case ScreenConfirmCode:
		return "confirm-code"
	case ScreenProviderSetup:
		return "provider-setup"
	default:
		return "unknown"
	}
}

// Screen is pure rendering data for one step. Behavior lives in the step
// components keyed off the ID; the registry carries no closures.
type Screen struct {
	ID       ScreenID
	Title    string
	Subtitle string
}

// Page index constants. Both tables share the prefix 0-1 (welcome and
// credential entry) and the terminal index, diverging in between.
const (
	PageWelcome     = 0
	PageCredentials = 1

	// sign-in branch
	PageResetRequest  = 2
	PageResetCode     = 3
	PageResetPassword = 4

	// sign-up branch
	PageDetails        = 2
	PageCreatePassword = 3
	PageConfirmCode    = 4

	// shared terminal screen
	PageProviderSetup = 5
)

// sharedPrefixEnd is the last page index common to both flow tables.
const sharedPrefixEnd = PageCredentials

// Registry holds the two immutable flow tables. Built once at startup.
type Registry struct {
	tables map[FlowType]map[int]Screen
	sorted map[FlowType][]int // defined indices, ascending
}

// NewRegistry builds the default onboarding screen tables.
func NewRegistry() *Registry {
	signIn := map[int]Screen{
		PageWelcome:       {ID: ScreenWelcome, Title: "Welcome"},
		PageCredentials:   {ID: ScreenSignInCredentials, Title: "Sign in", Subtitle: "Use your editor account to sync settings across machines."},
		PageResetRequest:  {ID: ScreenResetRequest, Title: "Reset password", Subtitle: "Enter the email for your account and we'll send a code."},
		PageResetCode:     {ID: ScreenResetCode, Title: "Check your email", Subtitle: "Enter the 6-digit code we sent you."},
		PageResetPassword: {ID: ScreenResetPassword, Title: "Set a new password"},
		PageProviderSetup: {ID: ScreenProviderSetup, Title: "Configure providers", Subtitle: "Pick the model provider that fits how you work."},
	}
	signUp := map[int]Screen{
		PageWelcome:        {ID: ScreenWelcome, Title: "Welcome"},
		PageCredentials:    {ID: ScreenSignUpCredentials, Title: "Create your account"},
		PageDetails:        {ID: ScreenSignUpDetails, Title: "About you"},
		PageCreatePassword: {ID: ScreenCreatePassword, Title: "Create a password"},
		PageConfirmCode:    {ID: ScreenConfirmCode, Title: "Confirm your email", Subtitle: "Enter the 6-digit code we sent you."},
		PageProviderSetup:  {ID: ScreenProviderSetup, Title: "Configure providers", Subtitle: "Pick the model provider that fits how you work."},
	}
	return newRegistry(map[FlowType]map[int]Screen{
		FlowSignIn: signIn,
		FlowSignUp: signUp,
	})
}

func newRegistry(tables map[FlowType]map[int]Screen) *Registry {
	sorted := make(map[FlowType][]int, len(tables))
	for flow, table := range tables {
		idx := make([]int, 0, len(table))
		for i := range table {
			idx = append(idx, i)
		}
		sort.Ints(idx)
		sorted[flow] = idx
	}
	return &Registry{tables: tables, sorted: sorted}
}

// Lookup returns the screen at (flow, page) and whether one is defined.
func (r *Registry) Lookup(flow FlowType, page int) (Screen, bool) {
	s, ok := r.tables[flow][page]
	return s, ok
}

// Clamp resolves a page index against a flow's table: a defined index is
// returned unchanged, otherwise the nearest defined index below it, falling
// back to the lowest defined index. A table may be sparse, so a miss is an
// expected input here, not an error.
func (r *Registry) Clamp(flow FlowType, page int) int {
	idx := r.sorted[flow]
	if len(idx) == 0 {
		return 0
	}
	best := idx[0]
	for _, i := range idx {
		if i > page {
			break
		}
		best = i
	}
	return best
}

// Screen returns the screen for (flow, page) after clamping. Never misses
// for a non-empty table, so callers never render a blank step.
func (r *Registry) Screen(flow FlowType, page int) Screen {
	return r.tables[flow][r.Clamp(flow, page)]
}

// SharedPrefixEnd returns the last page index common to both tables.
func (r *Registry) SharedPrefixEnd() int {
	return sharedPrefixEnd
}

// TerminalPage returns the terminal page index for a flow (the settings
// import screen that triggers completion).
func (r *Registry) TerminalPage(flow FlowType) int {
	idx := r.sorted[flow]
	if len(idx) == 0 {
		return 0
	}
	return idx[len(idx)-1]
}
