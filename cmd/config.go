package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sosanka7-alt/habit-progress-hub/internal/config"
	"github.com/sosanka7-alt/habit-progress-hub/internal/domain"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit the grid defaults",
	Long:  `Interactively configure the default variant, grid dimensions, habit names, and notifications.`,
	RunE:  runConfigMenu,
}

// runConfigMenu is also reachable from the first-run wizard.
func runConfigMenu(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	variant := domain.Variant(appConfig.Variant)

	fmt.Println()
	fmt.Println("  Current configuration:")
	fmt.Println()
	fmt.Printf("  Variant:        %s\n", variant.Label())
	fmt.Printf("  Habits:         %d (%s)\n", appConfig.Grid.Habits, strings.Join(appConfig.Grid.HabitNames, ", "))
	fmt.Printf("  Weeks:          %d (weekly only)\n", appConfig.Grid.Weeks)
	notifStatus := "off"
	if appConfig.Notifications.Enabled {
		notifStatus = "on"
	}
	fmt.Printf("  Notifications:  %s\n", notifStatus)
	if path, err := config.GetConfigPath(); err == nil {
		fmt.Printf("  Config file:    %s\n", path)
	}
	fmt.Println()
	fmt.Println("  What would you like to change?")
	fmt.Println("    [1] Edit habit count")
	fmt.Println("    [2] Edit week count")
	fmt.Println("    [3] Edit habit names")
	fmt.Println("    [v] Change default variant")
	fmt.Println("    [n] Toggle notifications")
	fmt.Println("    [q] Quit without saving")
	fmt.Print("  Choose: ")

	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(strings.ToLower(choice))

	switch choice {
	case "1":
		return editHabitCount(reader, appConfig)
	case "2":
		return editWeekCount(reader, appConfig)
	case "3":
		return editHabitNames(reader, appConfig)
	case "v":
		return editVariant(reader, appConfig)
	case "n":
		return editNotifications(reader, appConfig)
	case "q", "":
		fmt.Println("  No changes made.")
		return nil
	default:
		return fmt.Errorf("invalid choice %q", choice)
	}
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all settings to their defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("  Reset all settings to defaults? [y/N] ")
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("  No changes made.")
			return nil
		}

		fresh := config.DefaultConfig()
		if err := config.Save(fresh); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		appConfig = fresh

		fmt.Println("  Settings reset to defaults.")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
}

func editHabitCount(reader *bufio.Reader, cfg *config.Config) error {
	fmt.Printf("\n  Habit rows (%d-%d) [%d]: ", domain.MinHabits, domain.MaxHabits, cfg.Grid.Habits)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		fmt.Println("  No changes made.")
		return nil
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", input, err)
	}

	cfg.Grid.Habits = domain.ClampHabitCount(n)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: %d habit rows\n", cfg.Grid.Habits)
	return nil
}

func editWeekCount(reader *bufio.Reader, cfg *config.Config) error {
	fmt.Printf("\n  Week columns (%d-%d) [%d]: ", domain.MinWeeks, domain.MaxWeeks, cfg.Grid.Weeks)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		fmt.Println("  No changes made.")
		return nil
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", input, err)
	}

	cfg.Grid.Weeks = domain.ClampWeekCount(n)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: %d week columns\n", cfg.Grid.Weeks)
	return nil
}

func editHabitNames(reader *bufio.Reader, cfg *config.Config) error {
	grid := domain.NewGridConfig(domain.VariantWeekly, cfg.Grid.Habits, cfg.Grid.Weeks, cfg.Grid.HabitNames)
	names := grid.HabitNames()

	fmt.Println("\n  Enter to keep the current name.")
	for i, current := range names {
		fmt.Printf("  Habit %d [%s]: ", i+1, current)
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input != "" {
			names[i] = input
		}
	}

	cfg.Grid.HabitNames = names
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: %s\n", strings.Join(names, ", "))
	return nil
}

func editVariant(reader *bufio.Reader, cfg *config.Config) error {
	fmt.Printf("\n  Current variant: %s\n\n", domain.Variant(cfg.Variant).Label())
	fmt.Println("    [1] Weekly, one column per week")
	fmt.Println("    [2] Daily, one column per weekday (Mon-Sun)")
	fmt.Print("  Choose: ")

	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)

	var v domain.Variant
	switch choice {
	case "1":
		v = domain.VariantWeekly
	case "2":
		v = domain.VariantDaily
	default:
		fmt.Println("  No changes made.")
		return nil
	}

	cfg.Variant = string(v)
	cfg.FirstRun = false
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: default variant set to %s\n", v.Label())
	return nil
}

func editNotifications(reader *bufio.Reader, cfg *config.Config) error {
	current := "off"
	if cfg.Notifications.Enabled {
		current = "on"
	}

	fmt.Printf("\n  Current notifications: %s\n\n", current)
	fmt.Println("    [1] Off")
	fmt.Println("    [2] On")
	fmt.Print("  Choose: ")

	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)

	switch choice {
	case "1":
		cfg.Notifications.Enabled = false
	case "2":
		cfg.Notifications.Enabled = true
	default:
		fmt.Println("  No changes made.")
		return nil
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	status := "off"
	if cfg.Notifications.Enabled {
		status = "on"
	}
	fmt.Printf("\n  Saved: notifications %s\n", status)
	return nil
}
