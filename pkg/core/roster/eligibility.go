package roster

import (
	"time"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// IsExempt decides whether the employee is excused from work on the
// given date, and why. Leave cover is checked first so a team lead on
// sick leave over a holiday is reported as sick, not as a role day off.
//
// Inactive employees never reach this function: callers pre-filter the
// roster to active employees before generation.
func IsExempt(emp model.Employee, date time.Time, restDay time.Weekday, holidays []model.Holiday, leaves []model.Leave) (bool, model.OffReason) {
	for _, leave := range leaves {
		if leave.EmployeeID == emp.ID && leave.Covers(date) {
			return true, leave.OffReason()
		}
	}

	if emp.Role.IsExemptRole() && (IsRestDay(date, restDay) || IsHoliday(date, holidays)) {
		return true, model.OffReasonRole
	}

	return false, model.OffReasonNone
}
