package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/onboardr/internal/config"
	"github.com/mark3labs/onboardr/internal/settings"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the onboarding completion flag",
	Long: `Reset the onboarding completion flag.

The wizard starts over from the first screen on the next 'onboardr run'.
Configured providers and remembered selections are kept.`,
	RunE: runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store := settings.NewFileStore(cfg.DataDir)
	if !store.OnboardingComplete() {
		fmt.Println("Onboarding is not complete; nothing to reset.")
		return nil
	}

	if err := store.SetOnboardingComplete(false); err != nil {
		return fmt.Errorf("resetting completion flag: %w", err)
	}

	fmt.Println("Onboarding reset. It will run again on the next 'onboardr run'.")
	return nil
}
