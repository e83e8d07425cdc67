package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saltsync/rosterd/pkg/core/services"
)

// AdvanceRotationCmd creates the advanceRotation command
func AdvanceRotationCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advanceRotation",
		Short: "Accept the latest week and advance the shift rotation",
		Long:  "Fold the latest generated week into the lifetime counters and move second-week employees to their next base shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, _ := cmd.Flags().GetString("actor")

			result, err := services.AdvanceRotation(app.Ctx, app.Database, app.Logger, actor)
			if err != nil {
				return fmt.Errorf("rotation advance failed: %w", err)
			}

			fmt.Printf("\nAccepted week %s\n", result.WeekID)
			fmt.Printf("Employees rotated to a new base shift: %d\n\n", result.Rotated)
			for _, emp := range result.Employees {
				fmt.Printf("  - %s: %s (week %d of 2)\n", emp.Name, emp.BaseShift, emp.RotationPhase+1)
			}

			return nil
		},
	}

	cmd.Flags().String("actor", "cli", "Name recorded in the audit trail")
	return cmd
}
