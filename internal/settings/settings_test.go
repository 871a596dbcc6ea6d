package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mark3labs/onboardr/internal/provider"
)

func TestFileStore_DefaultsWhenMissing(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.False(t, s.OnboardingComplete())
	require.Equal(t, ProviderSettings{}, s.ProviderSettings(provider.Anthropic))
}

func TestFileStore_CompletionFlagRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := NewFileStore(dir)
	require.NoError(t, s.SetOnboardingComplete(true))
	require.True(t, s.OnboardingComplete())

	// A reloaded store keeps returning true until externally reset.
	reloaded := NewFileStore(dir)
	require.True(t, reloaded.OnboardingComplete())

	require.NoError(t, reloaded.SetOnboardingComplete(false))
	require.False(t, NewFileStore(dir).OnboardingComplete())
}

func TestFileStore_ProviderSettings(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	ps := ProviderSettings{
		DidFillInSettings: true,
		APIKey:            "sk-test",
		Models:            provider.DefaultChatModels(provider.Anthropic),
	}
	require.NoError(t, s.SetProviderSettings(provider.Anthropic, ps))

	got := NewFileStore(dir).ProviderSettings(provider.Anthropic)
	require.Equal(t, ps, got)
	require.True(t, got.ChatCapable())
}

func TestFileStore_SelectionSlots(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	// First read initializes the slot to the intent's suggestion.
	require.Equal(t, provider.Ollama, s.ProviderSelection(provider.IntentPrivate))

	// Explicit choice sticks, including across reloads.
	require.NoError(t, s.SetProviderSelection(provider.IntentSmart, provider.OpenAI))
	require.Equal(t, provider.OpenAI, NewFileStore(dir).ProviderSelection(provider.IntentSmart))

	// Empty writes never clear an initialized slot.
	require.NoError(t, s.SetProviderSelection(provider.IntentSmart, ""))
	require.Equal(t, provider.OpenAI, s.ProviderSelection(provider.IntentSmart))
}

func TestFileStore_SlotInitPersists(t *testing.T) {
	dir := t.TempDir()
	_ = NewFileStore(dir).ProviderSelection(provider.IntentCheap)

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), provider.OpenRouter)
}

func TestFileStore_CorruptFileStartsFresh(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{not json"), 0600))

	s := NewFileStore(dir)
	require.False(t, s.OnboardingComplete())
	require.NoError(t, s.SetOnboardingComplete(true))
	require.True(t, NewFileStore(dir).OnboardingComplete())
}

func TestChatCapable(t *testing.T) {
	require.False(t, ProviderSettings{}.ChatCapable())
	require.False(t, ProviderSettings{DidFillInSettings: true}.ChatCapable())
	require.False(t, ProviderSettings{Models: []string{"m"}}.ChatCapable())
	require.True(t, ProviderSettings{DidFillInSettings: true, Models: []string{"m"}}.ChatCapable())
}

func TestHasChatProvider(t *testing.T) {
	s := NewMemoryStore()
	require.False(t, HasChatProvider(s))

	require.NoError(t, s.SetProviderSettings(provider.Ollama, ProviderSettings{
		DidFillInSettings: true,
		Models:            provider.DefaultChatModels(provider.Ollama),
	}))
	require.True(t, HasChatProvider(s))
}

func TestMemoryStore_MatchesFileStoreSemantics(t *testing.T) {
	s := NewMemoryStore()

	require.Equal(t, provider.Anthropic, s.ProviderSelection(provider.IntentSmart))
	require.NoError(t, s.SetProviderSelection(provider.IntentSmart, provider.Ollama))
	require.Equal(t, provider.Ollama, s.ProviderSelection(provider.IntentSmart))
	require.NoError(t, s.SetProviderSelection(provider.IntentSmart, ""))
	require.Equal(t, provider.Ollama, s.ProviderSelection(provider.IntentSmart))

	require.NoError(t, s.SetOnboardingComplete(true))
	require.True(t, s.OnboardingComplete())
	require.Equal(t, 1, s.CompleteWrites)
}
