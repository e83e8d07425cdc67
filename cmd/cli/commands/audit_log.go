package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// AuditLogCmd creates the auditLog command
func AuditLogCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auditLog",
		Short: "Show recent administrative actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			records, err := app.Database.GetAuditRecords(app.Ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to fetch audit records: %w", err)
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"When", "Action", "Actor", "Employee", "Date", "Previous", "New"})
			for _, record := range records {
				tw.AppendRow(table.Row{
					record.CreatedAt.Format("2006-01-02 15:04"),
					record.Action,
					record.Actor,
					record.EmployeeID,
					record.Date,
					record.Previous,
					record.New,
				})
			}
			tw.Render()
			fmt.Printf("\n%d records\n", len(records))
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum number of records to show, newest first")
	return cmd
}
