package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/onboardr/internal/config"
	"github.com/mark3labs/onboardr/internal/provider"
	"github.com/mark3labs/onboardr/internal/settings"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show onboarding state and configured providers",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store := settings.NewFileStore(cfg.DataDir)

	if store.OnboardingComplete() {
		fmt.Println("Onboarding: complete")
	} else {
		fmt.Println("Onboarding: not complete")
	}

	fmt.Println("\nProviders:")
	for _, id := range provider.All {
		ps := store.ProviderSettings(id)
		state := "not configured"
		if ps.ChatCapable() {
			state = fmt.Sprintf("configured (%d models)", len(ps.Models))
		}
		fmt.Printf("  %-12s %s\n", provider.DisplayName(id), state)
	}

	fmt.Println("\nRemembered selection per category:")
	for _, intent := range provider.Intents {
		fmt.Printf("  %-10s %s\n", intent, provider.DisplayName(store.ProviderSelection(intent)))
	}

	return nil
}
