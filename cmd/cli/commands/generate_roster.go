package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saltsync/rosterd/pkg/core/model"
	"github.com/saltsync/rosterd/pkg/core/services"
)

// GenerateRosterCmd creates the generateRoster command
func GenerateRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateRoster",
		Short: "Generate the weekly duty roster",
		Long:  "Build and store the roster for the week containing the given date, honouring holidays, leave records and per-shift seat targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			dateStr, _ := cmd.Flags().GetString("date")
			actor, _ := cmd.Flags().GetString("actor")

			selected := time.Now().UTC()
			if dateStr != "" {
				var err error
				selected, err = services.ParseDate(dateStr)
				if err != nil {
					return err
				}
			}

			app.Logger.Debug("generateRoster command",
				zap.String("date", selected.Format(model.DateFormat)),
				zap.String("actor", actor))

			result, err := services.GenerateRoster(
				app.Ctx,
				app.Database,
				app.Cfg,
				app.Logger,
				selected,
				app.Cfg.WeekStartWeekday(),
				app.Policy(),
				actor,
			)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			fmt.Printf("\nRoster generated for week starting %s\n", result.Week.ID)
			fmt.Printf("%s\n\n", formatTemplate(app.Cfg.ActiveTemplate()))
			renderWeek(&result.Week)

			if len(result.Holidays) > 0 {
				fmt.Printf("\nHolidays considered:\n")
				for _, h := range result.Holidays {
					fmt.Printf("  - %s  %s\n", h.Date.Format(model.DateFormat), h.Label)
				}
			}

			if len(result.Gaps) > 0 {
				fmt.Printf("\n⚠️  Coverage gaps (%d):\n", len(result.Gaps))
				for _, gap := range result.Gaps {
					fmt.Printf("  - %s %s: want %d, got %d\n", gap.Date, gap.Shift, gap.Want, gap.Got)
				}
			} else {
				fmt.Printf("\n✅ All seat targets met\n")
			}

			return nil
		},
	}

	cmd.Flags().String("date", "", "Any date inside the target week, YYYY-MM-DD (default: today)")
	cmd.Flags().String("actor", "cli", "Name recorded in the audit trail")
	return cmd
}
