package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mark3labs/onboardr/internal/config"
	"github.com/mark3labs/onboardr/internal/metrics"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recorded onboarding events",
	RunE:  runEvents,
}

func runEvents(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	rec, err := metrics.NewNATSRecorder(cmd.Context(), filepath.Join(cfg.DataDir, "events"))
	if err != nil {
		return fmt.Errorf("opening event store: %w", err)
	}
	defer func() { _ = rec.Close() }()

	events, err := rec.History(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading events: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No events recorded.")
		return nil
	}

	for _, e := range events {
		line := fmt.Sprintf("%s  %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Name)
		for k, v := range e.Props {
			line += fmt.Sprintf(" %s=%s", k, v)
		}
		fmt.Println(line)
	}
	return nil
}
