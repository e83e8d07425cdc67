package roster

import "github.com/saltsync/rosterd/pkg/core/model"

// Advance returns the employee list with each rotating employee's base
// shift moved one week forward. Team leads and managers do not rotate.
//
// Every base shift is held for two consecutive weeks, tracked by
// RotationPhase: phase 0 stays put for a second week, phase 1 moves to
// the next shift (Morning to Evening to Night and back) and resets.
// The full cycle is therefore six weeks long:
//
//	Morning, Morning, Evening, Evening, Night, Night
//
// Advance is a pure mapping; the input slice is not modified. It is
// intended to run exactly once per accepted week, immediately after
// generation, and is the only place base-shift state changes.
func Advance(employees []model.Employee) []model.Employee {
	advanced := make([]model.Employee, len(employees))
	for i, emp := range employees {
		if emp.Role.IsExemptRole() {
			advanced[i] = emp
			continue
		}
		if emp.RotationPhase == 0 {
			emp.RotationPhase = 1
		} else {
			emp.BaseShift = nextShift(emp.BaseShift)
			emp.RotationPhase = 0
		}
		advanced[i] = emp
	}
	return advanced
}

func nextShift(s model.Shift) model.Shift {
	switch s {
	case model.ShiftMorning:
		return model.ShiftEvening
	case model.ShiftEvening:
		return model.ShiftNight
	case model.ShiftNight:
		return model.ShiftMorning
	}
	return model.ShiftMorning
}
