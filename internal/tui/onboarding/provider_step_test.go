package onboarding

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mark3labs/onboardr/internal/provider"
	"github.com/mark3labs/onboardr/internal/settings"
	"github.com/mark3labs/onboardr/internal/tui/theme"
)

func newProviderStep(intent provider.Intent) (*ProviderStep, *settings.MemoryStore) {
	store := settings.NewMemoryStore()
	return NewProviderStep(store, intent, theme.NewCatppuccinMocha()), store
}

func TestProviderStep_RestoresRememberedSelection(t *testing.T) {
	store := settings.NewMemoryStore()
	if err := store.SetProviderSelection(provider.IntentSmart, provider.OpenRouter); err != nil {
		t.Fatal(err)
	}

	p := NewProviderStep(store, provider.IntentSmart, theme.NewCatppuccinMocha())
	if got := p.SelectedProvider(); got != provider.OpenRouter {
		t.Errorf("expected remembered OpenRouter, got %q", got)
	}
}

func TestProviderStep_SelectionPersistsPerIntent(t *testing.T) {
	p, store := newProviderStep(provider.IntentSmart)

	// Move the highlight down and check the slot follows
	p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	want := p.SelectedProvider()
	if got := store.ProviderSelection(provider.IntentSmart); got != want {
		t.Errorf("slot not updated: store has %q, highlight is %q", got, want)
	}

	// Switching category must not disturb the smart slot
	p.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if p.Intent() == provider.IntentSmart {
		t.Fatal("expected intent to change")
	}
	if got := store.ProviderSelection(provider.IntentSmart); got != want {
		t.Errorf("smart slot changed to %q after category switch", got)
	}
}

func TestProviderStep_CycleIntentWraps(t *testing.T) {
	p, _ := newProviderStep(provider.IntentSmart)

	p.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if got := p.Intent(); got != provider.IntentAll {
		t.Errorf("expected wrap to all, got %v", got)
	}
	p.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if got := p.Intent(); got != provider.IntentSmart {
		t.Errorf("expected smart again, got %v", got)
	}
}

func TestProviderStep_PrivateIntentListsLocalOnly(t *testing.T) {
	p, _ := newProviderStep(provider.IntentPrivate)

	if len(p.candidates) != 1 || p.candidates[0] != provider.Ollama {
		t.Errorf("private intent should list only Ollama, got %v", p.candidates)
	}
}

func TestProviderStep_ConfiguresLocalProviderWithoutKey(t *testing.T) {
	p, store := newProviderStep(provider.IntentPrivate)

	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if p.InKeyEntry() {
		t.Fatal("Ollama must not prompt for an API key")
	}

	ps := store.ProviderSettings(provider.Ollama)
	if !ps.ChatCapable() {
		t.Error("expected Ollama configured and chat capable")
	}
	if len(ps.Models) == 0 {
		t.Error("expected default chat models seeded")
	}
}

func TestProviderStep_APIKeyEntryFlow(t *testing.T) {
	p, store := newProviderStep(provider.IntentSmart)

	// Anthropic is the smart suggestion and needs a key
	if got := p.SelectedProvider(); got != provider.Anthropic {
		t.Fatalf("expected Anthropic suggested, got %q", got)
	}

	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !p.InKeyEntry() {
		t.Fatal("expected API key input to open")
	}

	// Empty key does not save
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !p.InKeyEntry() {
		t.Fatal("empty key must keep the input open")
	}

	p.keyInput.SetValue("sk-ant-test")
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if p.InKeyEntry() {
		t.Fatal("expected key input to close after save")
	}

	ps := store.ProviderSettings(provider.Anthropic)
	if ps.APIKey != "sk-ant-test" || !ps.ChatCapable() {
		t.Errorf("unexpected provider settings %+v", ps)
	}
}

func TestProviderStep_KeyEntryEscCancels(t *testing.T) {
	p, store := newProviderStep(provider.IntentSmart)

	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if p.InKeyEntry() {
		t.Error("esc must close the key input")
	}
	if store.ProviderSettings(provider.Anthropic).DidFillInSettings {
		t.Error("cancelled entry must not configure the provider")
	}
}

func TestProviderStep_FinishAndBypassMessages(t *testing.T) {
	p, _ := newProviderStep(provider.IntentSmart)

	cmd := p.Update(tea.KeyPressMsg{Text: "f"})
	if cmd == nil {
		t.Fatal("expected finish message")
	}
	if msg, ok := cmd().(FinishMsg); !ok || msg.Bypass {
		t.Errorf("expected FinishMsg without bypass, got %#v", cmd())
	}

	cmd = p.Update(tea.KeyPressMsg{Text: "c"})
	if cmd == nil {
		t.Fatal("expected continue-anyway message")
	}
	if msg, ok := cmd().(FinishMsg); !ok || !msg.Bypass {
		t.Errorf("expected FinishMsg with bypass, got %#v", cmd())
	}
}
