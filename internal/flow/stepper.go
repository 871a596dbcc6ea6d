package flow

// State is the top-level wizard state.
type State int

const (
	// StateActive means the wizard is visible at some (flow, page).
	StateActive State = iota
	// StateHidden means onboarding has completed; terminal until an
	// external reset flips the completion flag back.
	StateHidden
)

// Stepper owns the current flow type and page index and applies navigation
// transitions against a Registry. Every transition bumps a generation
// counter; screen components are re-created when the generation changes, so
// typed input and in-flight submission flags never leak across navigations.
// A deferred submission result stamped with an older generation is stale and
// must be dropped by the caller.
type Stepper struct {
	registry   *Registry
	flow       FlowType
	page       int
	state      State
	generation uint64
}

// NewStepper creates a stepper at Active(signIn, 0), or Hidden when
// onboarding has already been completed.
func NewStepper(registry *Registry, completed bool) *Stepper {
	s := &Stepper{
		registry: registry,
		flow:     FlowSignIn,
		page:     PageWelcome,
		state:    StateActive,
	}
	if completed {
		s.state = StateHidden
	}
	return s
}

// Flow returns the active flow type.
func (s *Stepper) Flow() FlowType { return s.flow }

// Page returns the current page index.
func (s *Stepper) Page() int { return s.page }

// State returns the top-level wizard state.
func (s *Stepper) State() State { return s.state }

// Hidden reports whether the wizard has completed and is hidden.
func (s *Stepper) Hidden() bool { return s.state == StateHidden }

// Generation returns the current navigation generation. It changes on every
// transition and identifies the screen instance currently mounted.
func (s *Stepper) Generation() uint64 { return s.generation }

// Current returns the screen for the current (flow, page) pair.
func (s *Stepper) Current() Screen {
	return s.registry.Screen(s.flow, s.page)
}

// Registry returns the screen registry the stepper resolves against.
func (s *Stepper) Registry() *Registry { return s.registry }

// Advance moves to the next page.
func (s *Stepper) Advance() {
	s.setPage(s.page + 1)
}

// Retreat moves to the previous page.
func (s *Stepper) Retreat() {
	s.setPage(s.page - 1)
}

// GoTo jumps to an absolute page index. Used by links that skip
// non-adjacent steps ("forgot password", "back to sign in").
func (s *Stepper) GoTo(page int) {
	s.setPage(page)
}

// SwitchFlow changes the active flow. Inside the shared prefix the page
// index is preserved (the credential screen occupies the same slot in both
// tables); beyond it the index is resolved against the new table so the
// switch never lands on an undefined screen.
func (s *Stepper) SwitchFlow(flow FlowType) {
	if flow == s.flow {
		return
	}
	s.flow = flow
	if s.page > s.registry.SharedPrefixEnd() {
		s.page = s.registry.Clamp(flow, s.page)
	}
	s.generation++
}

// Complete transitions to Hidden. The caller is responsible for persisting
// the completion flag; the stepper only tracks visibility.
func (s *Stepper) Complete() {
	if s.state == StateHidden {
		return
	}
	s.state = StateHidden
	s.generation++
}

// Reset returns a hidden stepper to Active(signIn, 0). Called when the
// completion flag is externally cleared.
func (s *Stepper) Reset() {
	s.state = StateActive
	s.flow = FlowSignIn
	s.page = PageWelcome
	s.generation++
}

// setPage stores a page index after resolving it against the active table,
// so out-of-range requests clamp to a defined screen instead of rendering
// nothing.
func (s *Stepper) setPage(page int) {
	s.page = s.registry.Clamp(s.flow, page)
	s.generation++
}
