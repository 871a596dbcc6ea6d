package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/mark3labs/onboardr/internal/provider"
)

// fileName is the settings file inside the data directory.
const fileName = "settings.json"

// fileState is the on-disk shape of the settings store.
type fileState struct {
	OnboardingComplete bool                        `json:"onboarding_complete"`
	Providers          map[string]ProviderSettings `json:"providers"`
	Selections         map[string]string           `json:"selections"`
}

// FileStore persists settings as JSON under the data directory. Reads come
// from the in-memory copy loaded at construction; every mutation writes the
// file back immediately.
type FileStore struct {
	path  string
	state fileState
}

// NewFileStore loads (or initializes) the settings file in dataDir.
// A missing or unreadable file yields defaults rather than an error; the
// first write recreates it.
func NewFileStore(dataDir string) *FileStore {
	s := &FileStore{
		path: filepath.Join(dataDir, fileName),
		state: fileState{
			Providers:  make(map[string]ProviderSettings),
			Selections: make(map[string]string),
		},
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read settings file: %v", err)
		}
		return s
	}
	var loaded fileState
	if err := json.Unmarshal(data, &loaded); err != nil {
		logger.Warn("Failed to parse settings file, starting fresh: %v", err)
		return s
	}
	if loaded.Providers == nil {
		loaded.Providers = make(map[string]ProviderSettings)
	}
	if loaded.Selections == nil {
		loaded.Selections = make(map[string]string)
	}
	s.state = loaded
	return s
}

// OnboardingComplete reads the persisted completion flag.
func (s *FileStore) OnboardingComplete() bool {
	return s.state.OnboardingComplete
}

// SetOnboardingComplete writes the completion flag.
func (s *FileStore) SetOnboardingComplete(done bool) error {
	s.state.OnboardingComplete = done
	return s.save()
}

// ProviderSettings returns the stored configuration for a provider.
func (s *FileStore) ProviderSettings(name string) ProviderSettings {
	return s.state.Providers[name]
}

// SetProviderSettings stores a provider's configuration.
func (s *FileStore) SetProviderSettings(name string, ps ProviderSettings) error {
	s.state.Providers[name] = ps
	return s.save()
}

// ProviderSelection returns the provider remembered for an intent,
// initializing the slot to the intent's suggested provider on first read.
// Initialization is persisted so the slot survives restarts.
func (s *FileStore) ProviderSelection(intent provider.Intent) string {
	if sel, ok := s.state.Selections[string(intent)]; ok && sel != "" {
		return sel
	}
	suggested := intent.Suggested()
	s.state.Selections[string(intent)] = suggested
	if err := s.save(); err != nil {
		logger.Warn("Failed to persist selection slot init: %v", err)
	}
	return suggested
}

// SetProviderSelection remembers an explicit user choice for an intent.
// An empty provider ID is ignored so a slot, once initialized, is never
// cleared.
func (s *FileStore) SetProviderSelection(intent provider.Intent, providerID string) error {
	if providerID == "" {
		return nil
	}
	s.state.Selections[string(intent)] = providerID
	return s.save()
}

func (s *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}
