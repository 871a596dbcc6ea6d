package settings

import (
	"github.com/mark3labs/onboardr/internal/provider"
)

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	complete   bool
	providers  map[string]ProviderSettings
	selections map[provider.Intent]string

	// CompleteWrites counts SetOnboardingComplete calls, letting tests
	// assert the completion flag is written exactly once per run.
	CompleteWrites int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		providers:  make(map[string]ProviderSettings),
		selections: make(map[provider.Intent]string),
	}
}

// OnboardingComplete reads the completion flag.
func (s *MemoryStore) OnboardingComplete() bool { return s.complete }

// SetOnboardingComplete writes the completion flag.
func (s *MemoryStore) SetOnboardingComplete(done bool) error {
	s.complete = done
	s.CompleteWrites++
	return nil
}

// ProviderSettings returns the stored configuration for a provider.
func (s *MemoryStore) ProviderSettings(name string) ProviderSettings {
	return s.providers[name]
}

// SetProviderSettings stores a provider's configuration.
func (s *MemoryStore) SetProviderSettings(name string, ps ProviderSettings) error {
	s.providers[name] = ps
	return nil
}

// ProviderSelection returns the provider remembered for an intent,
// initializing the slot on first read.
func (s *MemoryStore) ProviderSelection(intent provider.Intent) string {
	if sel, ok := s.selections[intent]; ok && sel != "" {
		return sel
	}
	s.selections[intent] = intent.Suggested()
	return s.selections[intent]
}

// SetProviderSelection remembers an explicit user choice for an intent.
func (s *MemoryStore) SetProviderSelection(intent provider.Intent, providerID string) error {
	if providerID == "" {
		return nil
	}
	s.selections[intent] = providerID
	return nil
}
