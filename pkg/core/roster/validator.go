package roster

import (
	"fmt"
	"time"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// MoveReason is a stable rejection identifier callers can map to a
// display message.
type MoveReason string

const (
	MoveEmployeeNotFound    MoveReason = "EmployeeNotFound"
	MoveInvalidDate         MoveReason = "InvalidDate"
	MoveRoleShiftConflict   MoveReason = "RoleShiftConflict"
	MoveRestDayRoleConflict MoveReason = "RestDayRoleConflict"
	MoveShiftFull           MoveReason = "ShiftFull"
)

// MoveError is a rejected shift move. It carries the proposed move so
// the caller can render a precise message.
type MoveError struct {
	Reason     MoveReason
	EmployeeID string
	Date       string
	Shift      model.Shift
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move rejected (%s): employee %s, date %s, shift %s",
		e.Reason, e.EmployeeID, e.Date, e.Shift)
}

// ValidateMove decides whether one employee may be placed into the
// target shift on the target date of the given week. It returns nil to
// accept, or a MoveError naming the first rule that failed.
//
// With emergencyOverride set every rule is bypassed and the move is
// accepted unconditionally. The override must always be an explicit
// caller decision, never a default.
//
// ValidateMove performs no mutation: on accept, the caller owns
// removing the employee from their prior list and inserting them into
// the target (see ApplyMove).
func ValidateMove(employeeID string, targetDate time.Time, targetShift model.Shift, week *model.WeekSchedule, employees []model.Employee, policy CapacityPolicy, emergencyOverride bool) *MoveError {
	if emergencyOverride {
		return nil
	}

	dateStr := model.DateOnly(targetDate).Format(model.DateFormat)
	reject := func(reason MoveReason) *MoveError {
		return &MoveError{
			Reason:     reason,
			EmployeeID: employeeID,
			Date:       dateStr,
			Shift:      targetShift,
		}
	}

	var employee *model.Employee
	for i := range employees {
		if employees[i].ID == employeeID {
			employee = &employees[i]
			break
		}
	}
	if employee == nil {
		return reject(MoveEmployeeNotFound)
	}

	day := week.DayFor(targetDate)
	if day == nil {
		return reject(MoveInvalidDate)
	}

	if employee.Role == model.RoleTeamLead &&
		(targetShift == model.ShiftEvening || targetShift == model.ShiftNight) {
		return reject(MoveRoleShiftConflict)
	}

	if IsRestDay(targetDate, policy.RestDay) && employee.Role.IsExemptRole() {
		return reject(MoveRestDayRoleConflict)
	}

	if cap := policy.MoveCap(targetShift); cap != MorningUnbounded && day.Occupancy(targetShift) >= cap {
		return reject(MoveShiftFull)
	}

	return nil
}
