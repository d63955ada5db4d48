// Package cmd provides the CLI commands for the Habit Hub application.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sosanka7-alt/habit-progress-hub/internal/adapters/chart"
	"github.com/sosanka7-alt/habit-progress-hub/internal/adapters/notification"
	"github.com/sosanka7-alt/habit-progress-hub/internal/adapters/tui"
	"github.com/sosanka7-alt/habit-progress-hub/internal/config"
	"github.com/sosanka7-alt/habit-progress-hub/internal/domain"
	"github.com/sosanka7-alt/habit-progress-hub/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	debugMode bool
	noNotify  bool

	// Global dependencies
	appConfig *config.Config
	notifier  *notification.Notifier
	closeLog  func() error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "habithub",
	Short: "Habit Hub - A habit grid with completion tracking",
	Long: `Habit Hub is a terminal habit tracker built around a grid of
habits and time slots. Check cells off as you go and watch the
completion donut fill up.

Run "habithub" with no arguments to open your default grid.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupApp()
	},
	RunE: runDefault,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to ~/.habithub/debug.log")
	rootCmd.PersistentFlags().BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications for this run")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Habit Hub\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
}

// initializeApp loads configuration and wires the shared adapters.
func initializeApp() error {
	// Load configuration
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		fmt.Fprintf(os.Stderr, "Warning: using default config: %v\n", err)
		appConfig = config.DefaultConfig()
	}

	if noNotify {
		appConfig.Notifications.Enabled = false
	}
	notifier = notification.New(&appConfig.Notifications)

	// The TUI owns the terminal, so debug logs go to a file or nowhere.
	if debugMode {
		logPath, err := config.GetLogPath()
		if err != nil {
			return fmt.Errorf("failed to resolve log path: %w", err)
		}
		closer, err := logger.InitFile(logPath, slog.LevelDebug)
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		closeLog = closer
	} else {
		logger.Disable()
	}

	return nil
}

// cleanupApp closes resources opened during initialization.
func cleanupApp() error {
	if closeLog != nil {
		return closeLog()
	}
	return nil
}

// runDefault implements the bare "habithub" command: a one-time variant
// picker on first run, then the saved default grid.
func runDefault(cmd *cobra.Command, args []string) error {
	if appConfig.FirstRun {
		items := []tui.PickerItem{
			{Label: "Weekly", Desc: "Track each habit across the weeks"},
			{Label: "Daily", Desc: "Track each habit across Mon-Sun"},
			{Label: "Settings", Desc: "Edit the defaults first"},
		}
		footer := "Saved as your default · switch anytime with \"habithub weekly\" or \"habithub daily\""
		result := tui.RunPicker("How do you want to track?", items, footer, &appConfig.Theme)
		if result.Aborted {
			return nil
		}

		variants := []domain.Variant{domain.VariantWeekly, domain.VariantDaily}
		if result.Index >= len(variants) {
			return runConfigMenu(cmd, args)
		}
		appConfig.Variant = string(variants[result.Index])
		appConfig.FirstRun = false
		if err := config.Save(appConfig); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}

	variant, err := domain.ValidateVariant(appConfig.Variant)
	if err != nil {
		// A hand-edited config should not brick the app.
		fmt.Fprintf(os.Stderr, "Warning: %v, falling back to weekly\n", err)
		variant = domain.VariantWeekly
	}

	return launchGrid(variant, 0, 0)
}

// launchGrid builds a tracker from config plus any flag overrides and runs
// the fullscreen grid until the user quits.
func launchGrid(variant domain.Variant, habitOverride, weekOverride int) error {
	grid := appConfig.NewGrid(variant)
	if habitOverride > 0 {
		grid.SetHabitCount(habitOverride)
	}
	if weekOverride > 0 {
		grid.SetWeekCount(weekOverride)
	}
	tracker := domain.NewTracker(grid)

	logger.Debug("launching grid",
		"variant", string(variant),
		"habits", tracker.HabitCount(),
		"slots", tracker.SlotCount())

	model := tui.NewModel(tracker, chart.New(), &appConfig.Theme)

	model.SetOnGridComplete(func(stats domain.Stats) {
		logger.Info("grid complete", "cells", stats.Total())
		if err := notifier.NotifyGridComplete(variant.Label(), stats.Total()); err != nil {
			logger.Warn("notification failed", "error", err)
		}
	})

	// Wire notification toggle: tab key in the grid flips it and persists
	// to config. The notifier reads the same config struct.
	model.SetNotifications(notifier.IsEnabled(), func(enabled bool) {
		appConfig.Notifications.Enabled = enabled
		_ = config.Save(appConfig)
	})

	return tui.Run(model)
}
