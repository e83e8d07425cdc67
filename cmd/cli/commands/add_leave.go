package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saltsync/rosterd/pkg/core/model"
	"github.com/saltsync/rosterd/pkg/core/services"
)

// AddLeaveCmd creates the addLeave command
func AddLeaveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addLeave",
		Short: "Record a leave interval for an employee",
		Long:  "Record sick or casual leave. If the latest generated week overlaps the interval, the employee is pulled out of the covered days",
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, _ := cmd.Flags().GetString("employee")
			startStr, _ := cmd.Flags().GetString("start")
			endStr, _ := cmd.Flags().GetString("end")
			kindStr, _ := cmd.Flags().GetString("kind")
			actor, _ := cmd.Flags().GetString("actor")

			if endStr == "" {
				endStr = startStr
			}

			result, err := services.AddLeave(
				app.Ctx,
				app.Database,
				app.Logger,
				employeeID,
				startStr,
				endStr,
				model.LeaveKind(kindStr),
				actor,
			)
			if err != nil {
				return fmt.Errorf("failed to record leave: %w", err)
			}

			fmt.Printf("\n✅ Leave recorded: %s to %s (%s)\n",
				result.Leave.StartDate.Format(model.DateFormat),
				result.Leave.EndDate.Format(model.DateFormat),
				result.Leave.Kind)
			if len(result.RebalancedDays) > 0 {
				fmt.Printf("Rebalanced generated days:\n")
				for _, day := range result.RebalancedDays {
					fmt.Printf("  - %s\n", day)
				}
			}

			return nil
		},
	}

	cmd.Flags().String("employee", "", "Employee ID (required)")
	cmd.Flags().String("start", "", "First day of leave, YYYY-MM-DD (required)")
	cmd.Flags().String("end", "", "Last day of leave, YYYY-MM-DD (default: same as --start)")
	cmd.Flags().String("kind", string(model.LeaveCasual), "Leave kind: Sick or Casual")
	cmd.Flags().String("actor", "cli", "Name recorded in the audit trail")
	cmd.MarkFlagRequired("employee")
	cmd.MarkFlagRequired("start")
	return cmd
}

// AddHolidayCmd creates the addHoliday command
func AddHolidayCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addHoliday",
		Short: "Declare a public holiday",
		RunE: func(cmd *cobra.Command, args []string) error {
			dateStr, _ := cmd.Flags().GetString("date")
			label, _ := cmd.Flags().GetString("label")
			actor, _ := cmd.Flags().GetString("actor")

			holiday, err := services.AddHoliday(app.Ctx, app.Database, app.Logger, dateStr, label, actor)
			if err != nil {
				return fmt.Errorf("failed to declare holiday: %w", err)
			}

			fmt.Printf("\n✅ Holiday declared: %s  %s\n", holiday.Date.Format(model.DateFormat), holiday.Label)
			fmt.Printf("Regenerate any already-generated week to apply it.\n")
			return nil
		},
	}

	cmd.Flags().String("date", "", "Holiday date, YYYY-MM-DD (required)")
	cmd.Flags().String("label", "", "Holiday name (required)")
	cmd.Flags().String("actor", "cli", "Name recorded in the audit trail")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("label")
	return cmd
}
