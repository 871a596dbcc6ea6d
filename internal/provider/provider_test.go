package provider

import (
	"testing"
)

func TestDisplayName(t *testing.T) {
	if got := DisplayName(Anthropic); got != "Anthropic" {
		t.Errorf("DisplayName(anthropic) = %q", got)
	}
	// Unknown IDs fall through unchanged rather than failing.
	if got := DisplayName("acme"); got != "acme" {
		t.Errorf("DisplayName(acme) = %q", got)
	}
}

func TestKnown(t *testing.T) {
	for _, id := range All {
		if !Known(id) {
			t.Errorf("Known(%q) = false", id)
		}
	}
	if Known("acme") {
		t.Error("Known(acme) = true")
	}
}

func TestDefaultChatModels_Copies(t *testing.T) {
	a := DefaultChatModels(Anthropic)
	if len(a) == 0 {
		t.Fatal("every known provider needs at least one seed chat model")
	}
	a[0] = "mutated"
	if b := DefaultChatModels(Anthropic); b[0] == "mutated" {
		t.Error("DefaultChatModels must return a copy")
	}
}

func TestRequiresAPIKey(t *testing.T) {
	if RequiresAPIKey(Ollama) {
		t.Error("ollama is local and should not require an API key")
	}
	for _, id := range []string{Anthropic, OpenAI, OpenRouter} {
		if !RequiresAPIKey(id) {
			t.Errorf("%s should require an API key", id)
		}
	}
}

func TestParseIntent(t *testing.T) {
	for _, i := range Intents {
		got, err := ParseIntent(string(i))
		if err != nil || got != i {
			t.Errorf("ParseIntent(%q) = %v, %v", i, got, err)
		}
	}
	if _, err := ParseIntent("fastest"); err == nil {
		t.Error("ParseIntent should reject unknown intents")
	}
}

func TestIntent_Suggested(t *testing.T) {
	for _, i := range Intents {
		suggested := i.Suggested()
		if !Known(suggested) {
			t.Errorf("intent %s suggests unknown provider %q", i, suggested)
		}
		found := false
		for _, c := range i.Candidates() {
			if c == suggested {
				found = true
			}
		}
		if !found {
			t.Errorf("intent %s suggestion %q is not among its candidates", i, suggested)
		}
	}
}

func TestIntent_Candidates(t *testing.T) {
	if got := IntentPrivate.Candidates(); len(got) != 1 || got[0] != Ollama {
		t.Errorf("private candidates = %v, want just ollama", got)
	}
	if got := IntentAll.Candidates(); len(got) != len(All) {
		t.Errorf("all candidates = %v, want full catalog", got)
	}
}
