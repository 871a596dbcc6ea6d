package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mark3labs/onboardr/internal/config"
	"github.com/mark3labs/onboardr/internal/flow"
	"github.com/mark3labs/onboardr/internal/forms"
	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/mark3labs/onboardr/internal/metrics"
	"github.com/mark3labs/onboardr/internal/provider"
	"github.com/mark3labs/onboardr/internal/settings"
	"github.com/mark3labs/onboardr/internal/tui/onboarding"
	"github.com/mark3labs/onboardr/internal/tui/theme"
)

var runFlags struct {
	force bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the onboarding wizard",
	Long: `Run the onboarding wizard.

The wizard only runs while onboarding is incomplete; once finished it
exits immediately. Use --force to run it again without resetting the
completion flag, or 'onboardr reset' to reset it for good.`,
	RunE: runWizard,
}

func init() {
	runCmd.Flags().BoolVarP(&runFlags.force, "force", "f", false, "Run even if onboarding is already complete")
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}

	store := settings.NewFileStore(cfg.DataDir)

	completed := store.OnboardingComplete() && !runFlags.force
	stepper := flow.NewStepper(flow.NewRegistry(), completed)
	if completed {
		fmt.Println("Onboarding already complete. Use 'onboardr reset' to run it again.")
		return nil
	}

	// Analytics are best effort; a broken event store must not block
	// onboarding.
	var recorder metrics.Recorder
	natsRec, err := metrics.NewNATSRecorder(cmd.Context(), filepath.Join(cfg.DataDir, "events"))
	if err != nil {
		logger.Warn("Event store unavailable, analytics disabled: %v", err)
		recorder = metrics.NopRecorder{}
	} else {
		recorder = natsRec
	}
	defer func() { _ = recorder.Close() }()

	intent, err := provider.ParseIntent(cfg.DefaultIntent)
	if err != nil {
		logger.Warn("Invalid default_intent %q, using smart", cfg.DefaultIntent)
		intent = provider.IntentSmart
	}

	return onboarding.Run(onboarding.Options{
		Stepper:      stepper,
		Store:        store,
		Recorder:     recorder,
		Themes:       theme.NewManager(cfg.Theme),
		Submitter:    forms.DelaySubmitter{},
		SettingsFile: cfg.SettingsFile,
		Intent:       intent,
	})
}
