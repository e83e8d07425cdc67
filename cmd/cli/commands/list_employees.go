package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listEmployees",
		Short: "List roster members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			includeInactive, _ := cmd.Flags().GetBool("all")

			employees, err := app.Database.GetEmployees(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list employees: %w", err)
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Name", "Role", "Base Shift", "Week", "Shifts", "Nights", "Active"})
			shown := 0
			for _, emp := range employees {
				if !emp.Active && !includeInactive {
					continue
				}
				tw.AppendRow(table.Row{
					emp.ID,
					emp.Name,
					emp.Role,
					emp.BaseShift,
					fmt.Sprintf("%d of 2", emp.RotationPhase+1),
					emp.ShiftCount,
					emp.NightCount,
					emp.Active,
				})
				shown++
			}
			tw.Render()
			fmt.Printf("\n%d employees\n", shown)
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Include deactivated employees")
	return cmd
}

// AddEmployeeCmd creates the addEmployee command
func AddEmployeeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addEmployee",
		Short: "Add a roster member",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			roleStr, _ := cmd.Flags().GetString("role")
			shiftStr, _ := cmd.Flags().GetString("shift")
			restDayOff, _ := cmd.Flags().GetBool("rest-day-off")
			holidayOff, _ := cmd.Flags().GetBool("holiday-off")

			employee, err := newEmployee(name, roleStr, shiftStr, restDayOff, holidayOff)
			if err != nil {
				return err
			}

			if err := app.Database.InsertEmployee(app.Ctx, &employee); err != nil {
				return fmt.Errorf("failed to add employee: %w", err)
			}

			fmt.Printf("\n✅ Added %s (%s) on %s, ID %s\n", employee.Name, employee.Role, employee.BaseShift, employee.ID)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Employee name (required)")
	cmd.Flags().String("role", "", "Role: TL, Manager, Senior or Junior (required)")
	cmd.Flags().String("shift", "", "Starting base shift: Morning, Evening or Night (required)")
	cmd.Flags().Bool("rest-day-off", false, "Mark the profile as taking the weekly rest day off")
	cmd.Flags().Bool("holiday-off", false, "Mark the profile as taking public holidays off")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("role")
	cmd.MarkFlagRequired("shift")
	return cmd
}

// newEmployee validates command input and builds a fresh employee
// record. The rest-day and holiday flags are profile data; scheduling
// exemption itself follows the role.
func newEmployee(name, roleStr, shiftStr string, restDayOff, holidayOff bool) (model.Employee, error) {
	role := model.Role(roleStr)
	if !role.IsValid() {
		return model.Employee{}, fmt.Errorf("invalid role %q (want TL, Manager, Senior or Junior)", roleStr)
	}
	baseShift := model.Shift(shiftStr)
	if !baseShift.IsValid() {
		return model.Employee{}, fmt.Errorf("invalid base shift %q (want Morning, Evening or Night)", shiftStr)
	}

	return model.Employee{
		ID:         uuid.New().String(),
		Name:       name,
		Role:       role,
		Active:     true,
		RestDayOff: restDayOff,
		HolidayOff: holidayOff,
		BaseShift:  baseShift,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
