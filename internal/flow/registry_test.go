package flow

import "testing"

func TestRegistry_SharedPrefix(t *testing.T) {
	r := NewRegistry()

	for page := 0; page <= r.SharedPrefixEnd(); page++ {
		si, ok := r.Lookup(FlowSignIn, page)
		if !ok {
			t.Fatalf("sign-in table missing shared prefix page %d", page)
		}
		su, ok := r.Lookup(FlowSignUp, page)
		if !ok {
			t.Fatalf("sign-up table missing shared prefix page %d", page)
		}
		if page == PageWelcome && (si.ID != ScreenWelcome || su.ID != ScreenWelcome) {
			t.Errorf("page 0 should be the welcome screen in both flows")
		}
		if page == PageCredentials {
			if si.ID != ScreenSignInCredentials {
				t.Errorf("sign-in page 1 = %v, want credentials", si.ID)
			}
			if su.ID != ScreenSignUpCredentials {
				t.Errorf("sign-up page 1 = %v, want registration", su.ID)
			}
		}
	}
}

func TestRegistry_FlowTables(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		flow FlowType
		page int
		want ScreenID
	}{
		{FlowSignIn, PageResetRequest, ScreenResetRequest},
		{FlowSignIn, PageResetCode, ScreenResetCode},
		{FlowSignIn, PageResetPassword, ScreenResetPassword},
		{FlowSignIn, PageProviderSetup, ScreenProviderSetup},
		{FlowSignUp, PageDetails, ScreenSignUpDetails},
		{FlowSignUp, PageCreatePassword, ScreenCreatePassword},
		{FlowSignUp, PageConfirmCode, ScreenConfirmCode},
		{FlowSignUp, PageProviderSetup, ScreenProviderSetup},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			s, ok := r.Lookup(tt.flow, tt.page)
			if !ok {
				t.Fatalf("Lookup(%v, %d) missing", tt.flow, tt.page)
			}
			if s.ID != tt.want {
				t.Errorf("Lookup(%v, %d) = %v, want %v", tt.flow, tt.page, s.ID, tt.want)
			}
		})
	}
}

func TestRegistry_Clamp(t *testing.T) {
	// Sparse table to exercise the clamping policy directly; the real
	// tables are dense, but sparse indices are legal registry input.
	r := newRegistry(map[FlowType]map[int]Screen{
		FlowSignIn: {
			0: {ID: ScreenWelcome},
			1: {ID: ScreenSignInCredentials},
			3: {ID: ScreenResetCode},
			9: {ID: ScreenProviderSetup},
		},
	})

	tests := []struct {
		page int
		want int
	}{
		{-5, 0}, // below range clamps to lowest defined
		{0, 0},
		{1, 1},
		{2, 1}, // gap clamps to nearest defined below
		{3, 3},
		{4, 3},
		{8, 3},
		{9, 9},
		{100, 9}, // above range clamps to highest defined
	}
	for _, tt := range tests {
		if got := r.Clamp(FlowSignIn, tt.page); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.page, got, tt.want)
		}
	}
}

func TestRegistry_ScreenNeverBlank(t *testing.T) {
	r := NewRegistry()
	for _, flow := range []FlowType{FlowSignIn, FlowSignUp} {
		for page := -2; page < 20; page++ {
			if s := r.Screen(flow, page); s.Title == "" {
				t.Errorf("Screen(%v, %d) returned a blank screen", flow, page)
			}
		}
	}
}

func TestRegistry_TerminalPage(t *testing.T) {
	r := NewRegistry()
	if got := r.TerminalPage(FlowSignIn); got != PageProviderSetup {
		t.Errorf("TerminalPage(sign-in) = %d, want %d", got, PageProviderSetup)
	}
	if got := r.TerminalPage(FlowSignUp); got != PageProviderSetup {
		t.Errorf("TerminalPage(sign-up) = %d, want %d", got, PageProviderSetup)
	}
}

func TestScreenID_String(t *testing.T) {
	ids := []ScreenID{
		ScreenWelcome, ScreenSignInCredentials, ScreenResetRequest,
		ScreenResetCode, ScreenResetPassword, ScreenSignUpCredentials,
		ScreenSignUpDetails, ScreenCreatePassword, ScreenConfirmCode,
		ScreenProviderSetup,
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		s := id.String()
		if s == "unknown" || s == "" {
			t.Errorf("ScreenID(%d) has no name", id)
		}
		if seen[s] {
			t.Errorf("duplicate screen name %q", s)
		}
		seen[s] = true
	}
}
