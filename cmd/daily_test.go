package cmd

import (
	"testing"
)

func TestDailyCmd(t *testing.T) {
	t.Run("daily command structure", func(t *testing.T) {
		if dailyCmd.Use != "daily" {
			t.Errorf("dailyCmd.Use = %q, want %q", dailyCmd.Use, "daily")
		}

		if dailyCmd.Short != "Open the daily habit grid" {
			t.Errorf("dailyCmd.Short = %q, want %q", dailyCmd.Short, "Open the daily habit grid")
		}
	})

	t.Run("daily command has habits flag only", func(t *testing.T) {
		if dailyCmd.Flags().Lookup("habits") == nil {
			t.Error("dailyCmd should have --habits flag")
		}
		if dailyCmd.Flags().Lookup("weeks") != nil {
			t.Error("dailyCmd should not have a --weeks flag, its slots are fixed")
		}
	})
}
