// Package settings is the persistence capability consumed by the onboarding
// wizard: the global completion flag, per-provider configuration, and the
// per-intent provider selection slots.
package settings

import (
	"github.com/mark3labs/onboardr/internal/provider"
)

// ProviderSettings is the stored configuration for one provider.
type ProviderSettings struct {
	DidFillInSettings bool     `json:"did_fill_in_settings"`
	APIKey            string   `json:"api_key,omitempty"`
	Models            []string `json:"models,omitempty"`
}

// ChatCapable reports whether the provider is configured with at least one
// usable chat model. The terminal screen's feature gate checks this.
func (p ProviderSettings) ChatCapable() bool {
	return p.DidFillInSettings && len(p.Models) > 0
}

// Store is the settings capability. The wizard receives it by injection and
// never touches the backing file directly.
type Store interface {
	// OnboardingComplete reads the persisted completion flag.
	OnboardingComplete() bool
	// SetOnboardingComplete writes the completion flag. Idempotent.
	SetOnboardingComplete(done bool) error

	// ProviderSettings returns the stored configuration for a provider,
	// zero-valued when the provider was never configured.
	ProviderSettings(name string) ProviderSettings
	// SetProviderSettings stores a provider's configuration.
	SetProviderSettings(name string, ps ProviderSettings) error

	// ProviderSelection returns the provider remembered for an intent.
	// Slots are default-initialized on first read and never empty after
	// that.
	ProviderSelection(intent provider.Intent) string
	// SetProviderSelection remembers an explicit user choice for an
	// intent. Empty provider IDs are ignored; a slot is never cleared.
	SetProviderSelection(intent provider.Intent, providerID string) error
}

// HasChatProvider reports whether any known provider in the store is
// chat-capable.
func HasChatProvider(s Store) bool {
	for _, id := range provider.All {
		if s.ProviderSettings(id).ChatCapable() {
			return true
		}
	}
	return false
}
