package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/sosanka7-alt/habit-progress-hub/internal/adapters/chart"
	"github.com/sosanka7-alt/habit-progress-hub/internal/adapters/tui"
	"github.com/sosanka7-alt/habit-progress-hub/internal/domain"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [weekly|daily]",
	Short: "Print a one-shot render of the grid",
	Long: `Render the grid and its completion chart once to stdout without
entering the interactive view. A few sample cells are checked so the
chart shows both segments. Useful for checking a theme tweak.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		variantStr := appConfig.Variant
		if len(args) > 0 {
			variantStr = args[0]
		}
		variant, err := domain.ValidateVariant(variantStr)
		if err != nil {
			return err
		}

		width := 80
		if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
			width = w
		}

		tracker := domain.NewTracker(appConfig.NewGrid(variant))
		seedPreview(tracker)

		model := tui.NewModel(tracker, chart.New(), &appConfig.Theme)
		model.SetSize(width, 0)

		fmt.Println()
		fmt.Println(model.View())
		return nil
	},
}

// seedPreview checks a deterministic sample of cells so the preview shows
// both chart segments and the checked cell styling.
func seedPreview(tracker *domain.Tracker) {
	for s := 0; s < tracker.SlotCount(); s++ {
		tracker.SetCell(0, s, true)
	}
	if tracker.HabitCount() > 1 {
		tracker.SetCell(1, 0, true)
		if tracker.SlotCount() > 1 {
			tracker.SetCell(1, 1, true)
		}
	}
}
