// Package provider describes the model providers the host editor can be
// configured to use, and the intent categories that drive the default
// suggestion on the provider setup screen.
package provider

import "fmt"

// Known provider IDs.
const (
	Anthropic  = "anthropic"
	OpenAI     = "openai"
	OpenRouter = "openrouter"
	Ollama     = "ollama"
)

// Tab order on the provider setup screen.
var All = []string{Anthropic, OpenAI, OpenRouter, Ollama}

var displayNames = map[string]string{
	Anthropic:  "Anthropic",
	OpenAI:     "OpenAI",
	OpenRouter: "OpenRouter",
	Ollama:     "Ollama",
}

// DisplayName returns the human-readable name for a provider ID.
func DisplayName(id string) string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	return id
}

// Known reports whether id names one of the supported providers.
func Known(id string) bool {
	_, ok := displayNames[id]
	return ok
}

// defaultChatModels seeds a provider's model list when the user configures
// it during onboarding. The editor refines this list later by querying the
// provider; onboarding only needs at least one chat-capable entry.
var defaultChatModels = map[string][]string{
	Anthropic:  {"claude-sonnet-4-5", "claude-haiku-4-5"},
	OpenAI:     {"gpt-5", "gpt-5-mini"},
	OpenRouter: {"openrouter/auto"},
	Ollama:     {"llama3.3", "qwen3"},
}

// DefaultChatModels returns the seed chat model list for a provider.
func DefaultChatModels(id string) []string {
	models := defaultChatModels[id]
	out := make([]string, len(models))
	copy(out, models)
	return out
}

// RequiresAPIKey reports whether a provider needs an API key to be usable.
// Ollama is local and only needs a reachable host.
func RequiresAPIKey(id string) bool {
	return id != Ollama
}

// Intent is the user's stated goal on the provider setup screen. Each
// intent remembers the provider last chosen while it was active.
type Intent string

const (
	IntentSmart   Intent = "smart"
	IntentPrivate Intent = "private"
	IntentCheap   Intent = "cheap"
	IntentAll     Intent = "all"
)

// Intents in display order.
var Intents = []Intent{IntentSmart, IntentPrivate, IntentCheap, IntentAll}

// ParseIntent validates an intent name from config or flags.
func ParseIntent(s string) (Intent, error) {
	switch Intent(s) {
	case IntentSmart, IntentPrivate, IntentCheap, IntentAll:
		return Intent(s), nil
	default:
		return "", fmt.Errorf("invalid intent %q (expected smart, private, cheap, or all)", s)
	}
}

// Label returns the selector label for an intent.
func (i Intent) Label() string {
	switch i {
	case IntentSmart:
		return "Smartest models"
	case IntentPrivate:
		return "Private / local"
	case IntentCheap:
		return "Budget friendly"
	case IntentAll:
		return "Show everything"
	default:
		return string(i)
	}
}

// Suggested returns the default provider for an intent, used to initialize
// the per-intent selection slot the first time the intent becomes active.
func (i Intent) Suggested() string {
	switch i {
	case IntentPrivate:
		return Ollama
	case IntentCheap:
		return OpenRouter
	case IntentAll:
		return OpenAI
	default:
		return Anthropic
	}
}

// Candidates returns the providers offered while an intent is active, in
// tab order.
func (i Intent) Candidates() []string {
	switch i {
	case IntentPrivate:
		return []string{Ollama}
	case IntentCheap:
		return []string{OpenRouter, Ollama}
	default:
		out := make([]string, len(All))
		copy(out, All)
		return out
	}
}
