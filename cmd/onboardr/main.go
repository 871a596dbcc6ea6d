package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/mark3labs/onboardr/internal/tui/theme"
)

const (
	logoText1 = "█▀█ █▄ █ █▄▄ █▀█ ▄▀█ █▀█ █▀▄ █▀█"
	logoText2 = "█▄█ █ ▀█ █▄█ █▄█ █▀█ █▀▄ █▄▀ █▀▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "onboardr",
	Short: "Guided first-run onboarding for your editor",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

onboardr walks new users through the editor's first-run setup: signing in
or creating an account, configuring an AI provider, and importing existing
settings. It runs once; after completion it stays hidden until reset.`

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(eventsCmd)
}
