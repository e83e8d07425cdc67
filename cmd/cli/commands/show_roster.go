package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saltsync/rosterd/pkg/core/model"
	"github.com/saltsync/rosterd/pkg/core/roster"
	"github.com/saltsync/rosterd/pkg/core/services"
)

// ShowRosterCmd creates the showRoster command
func ShowRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showRoster",
		Short: "Display a stored week schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStr, _ := cmd.Flags().GetString("week")

			var week *model.WeekSchedule
			if weekStr != "" {
				if _, err := services.ParseDate(weekStr); err != nil {
					return err
				}
				w, err := app.Database.GetWeekSchedule(app.Ctx, weekStr)
				if err != nil {
					return fmt.Errorf("failed to fetch week %s: %w", weekStr, err)
				}
				week = w
			} else {
				w, err := app.Database.GetLatestWeekSchedule(app.Ctx)
				if err != nil {
					return fmt.Errorf("failed to fetch latest week: %w", err)
				}
				week = w
			}

			fmt.Printf("\nWeek starting %s\n", week.ID)
			fmt.Printf("%s\n\n", formatTemplate(app.Cfg.ActiveTemplate()))
			renderWeek(week)

			gaps := roster.CoverageGaps(*week, app.Policy())
			if len(gaps) > 0 {
				fmt.Printf("\n⚠️  Coverage gaps (%d):\n", len(gaps))
				for _, gap := range gaps {
					fmt.Printf("  - %s %s: want %d, got %d\n", gap.Date, gap.Shift, gap.Want, gap.Got)
				}
			}

			return nil
		},
	}

	cmd.Flags().String("week", "", "Week start date, YYYY-MM-DD (default: latest)")
	return cmd
}
