package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// formatTemplate renders the active shift template's timings as the
// single line shown above the roster grid.
func formatTemplate(tpl model.ShiftTemplate) string {
	return fmt.Sprintf("Shift times (%s): Morning %s-%s | Evening %s-%s | Night %s-%s",
		tpl.Name,
		tpl.Morning.Start, tpl.Morning.End,
		tpl.Evening.Start, tpl.Evening.End,
		tpl.Night.Start, tpl.Night.End)
}

// renderWeek prints one week schedule as a table, one row per day.
func renderWeek(week *model.WeekSchedule) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Date", "Day", "Morning", "Evening", "Night", "Off"})
	for _, day := range week.Days {
		tw.AppendRow(table.Row{
			day.Date.Format(model.DateFormat),
			day.Date.Weekday().String(),
			strings.Join(day.Morning, ", "),
			strings.Join(day.Evening, ", "),
			strings.Join(day.Night, ", "),
			strings.Join(day.Off, ", "),
		})
	}
	tw.Render()
}
