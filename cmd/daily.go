package cmd

import (
	"github.com/sosanka7-alt/habit-progress-hub/internal/config"
	"github.com/sosanka7-alt/habit-progress-hub/internal/domain"
	"github.com/spf13/cobra"
)

var dailyHabits int

// dailyCmd represents the daily command
var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Open the daily habit grid",
	Long: `Open a grid with one column per weekday (Mon-Sun) and save daily
as your default variant. The --habits flag overrides the configured row
count for this run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appConfig.Variant = string(domain.VariantDaily)
		appConfig.FirstRun = false
		_ = config.Save(appConfig)

		return launchGrid(domain.VariantDaily, dailyHabits, 0)
	},
}

func init() {
	dailyCmd.Flags().IntVar(&dailyHabits, "habits", 0, "Number of habit rows (1-10, default from config)")
}
