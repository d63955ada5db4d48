package cmd

import (
	"github.com/sosanka7-alt/habit-progress-hub/internal/config"
	"github.com/sosanka7-alt/habit-progress-hub/internal/domain"
	"github.com/spf13/cobra"
)

var weeklyHabits int
var weeklyWeeks int

// weeklyCmd represents the weekly command
var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Open the weekly habit grid",
	Long: `Open a grid with one column per week and save weekly as your
default variant. The --habits and --weeks flags override the configured
dimensions for this run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appConfig.Variant = string(domain.VariantWeekly)
		appConfig.FirstRun = false
		_ = config.Save(appConfig)

		return launchGrid(domain.VariantWeekly, weeklyHabits, weeklyWeeks)
	},
}

func init() {
	weeklyCmd.Flags().IntVar(&weeklyHabits, "habits", 0, "Number of habit rows (1-10, default from config)")
	weeklyCmd.Flags().IntVar(&weeklyWeeks, "weeks", 0, "Number of week columns (1-12, default from config)")
}
