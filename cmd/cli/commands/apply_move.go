package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saltsync/rosterd/pkg/core/model"
	"github.com/saltsync/rosterd/pkg/core/roster"
	"github.com/saltsync/rosterd/pkg/core/services"
)

// ApplyMoveCmd creates the applyMove command
func ApplyMoveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applyMove",
		Short: "Move one employee to another shift on one day",
		Long:  "Validate a single-assignment move against the stored week and, on acceptance, persist the edited day",
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, _ := cmd.Flags().GetString("employee")
			dateStr, _ := cmd.Flags().GetString("date")
			shiftStr, _ := cmd.Flags().GetString("shift")
			weekStr, _ := cmd.Flags().GetString("week")
			emergency, _ := cmd.Flags().GetBool("emergency")
			actor, _ := cmd.Flags().GetString("actor")

			weekStart, err := resolveWeekStart(app, weekStr, dateStr)
			if err != nil {
				return err
			}

			app.Logger.Debug("applyMove command",
				zap.String("employee", employeeID),
				zap.String("date", dateStr),
				zap.String("shift", shiftStr),
				zap.Bool("emergency", emergency))

			result, err := services.ApplyShiftMove(
				app.Ctx,
				app.Database,
				app.Logger,
				app.Policy(),
				weekStart,
				employeeID,
				dateStr,
				model.Shift(shiftStr),
				emergency,
				actor,
			)
			if err != nil {
				var moveErr *roster.MoveError
				if errors.As(err, &moveErr) {
					fmt.Printf("\n❌ Move rejected: %s\n", moveErr.Reason)
					fmt.Printf("   %s\n", moveErr.Error())
					return nil
				}
				return fmt.Errorf("move failed: %w", err)
			}

			fmt.Printf("\n✅ Move applied\n")
			fmt.Printf("Employee: %s\n", result.Employee.Name)
			fmt.Printf("Date:     %s\n", result.Date)
			if result.PreviousShift != "" {
				fmt.Printf("From:     %s\n", result.PreviousShift)
			}
			fmt.Printf("To:       %s\n", result.NewShift)
			if result.Overridden {
				fmt.Printf("Mode:     ⚠️  EMERGENCY OVERRIDE\n")
			}

			return nil
		},
	}

	cmd.Flags().String("employee", "", "Employee ID (required)")
	cmd.Flags().String("date", "", "Target date, YYYY-MM-DD (required)")
	cmd.Flags().String("shift", "", "Target shift: Morning, Evening or Night (required)")
	cmd.Flags().String("week", "", "Week start date (default: the week containing --date)")
	cmd.Flags().Bool("emergency", false, "Bypass every validation rule")
	cmd.Flags().String("actor", "cli", "Name recorded in the audit trail")
	cmd.MarkFlagRequired("employee")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("shift")
	return cmd
}

// ValidateMoveCmd creates the validateMove command, a dry-run of
// applyMove that never edits the stored week.
func ValidateMoveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validateMove",
		Short: "Check whether a shift move would be accepted",
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, _ := cmd.Flags().GetString("employee")
			dateStr, _ := cmd.Flags().GetString("date")
			shiftStr, _ := cmd.Flags().GetString("shift")
			weekStr, _ := cmd.Flags().GetString("week")

			targetShift := model.Shift(shiftStr)
			if !targetShift.IsValid() {
				return fmt.Errorf("invalid target shift %q", shiftStr)
			}

			date, err := services.ParseDate(dateStr)
			if err != nil {
				return err
			}

			weekStart, err := resolveWeekStart(app, weekStr, dateStr)
			if err != nil {
				return err
			}

			week, err := app.Database.GetWeekSchedule(app.Ctx, weekStart)
			if err != nil {
				return fmt.Errorf("failed to fetch week %s: %w", weekStart, err)
			}

			employees, err := app.Database.GetEmployees(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch employees: %w", err)
			}

			if moveErr := roster.ValidateMove(employeeID, date, targetShift, week, employees, app.Policy(), false); moveErr != nil {
				fmt.Printf("\n❌ Would be rejected: %s\n", moveErr.Reason)
				return nil
			}

			fmt.Printf("\n✅ Would be accepted\n")
			return nil
		},
	}

	cmd.Flags().String("employee", "", "Employee ID (required)")
	cmd.Flags().String("date", "", "Target date, YYYY-MM-DD (required)")
	cmd.Flags().String("shift", "", "Target shift: Morning, Evening or Night (required)")
	cmd.Flags().String("week", "", "Week start date (default: the week containing --date)")
	cmd.MarkFlagRequired("employee")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("shift")
	return cmd
}

// resolveWeekStart picks the week key a move targets: an explicit
// --week wins, otherwise the target date is snapped back to the
// configured week start.
func resolveWeekStart(app *AppContext, weekStr, dateStr string) (string, error) {
	if weekStr != "" {
		if _, err := services.ParseDate(weekStr); err != nil {
			return "", err
		}
		return weekStr, nil
	}
	date, err := services.ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return services.SnapToWeekStart(date, app.Cfg.WeekStartWeekday()).Format(model.DateFormat), nil
}
