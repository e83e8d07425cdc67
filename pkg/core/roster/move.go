package roster

import (
	"time"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// ApplyMove edits one day of the week in place: the named employee is
// removed from whichever list currently holds them and appended to the
// target shift. Call only after ValidateMove has accepted (or under an
// emergency override).
//
// Returns false if the date has no day in the week.
func ApplyMove(week *model.WeekSchedule, name string, targetDate time.Time, targetShift model.Shift) bool {
	day := week.DayFor(targetDate)
	if day == nil {
		return false
	}

	removeName(day, name)

	switch targetShift {
	case model.ShiftMorning:
		day.Morning = append(day.Morning, name)
	case model.ShiftEvening:
		day.Evening = append(day.Evening, name)
	case model.ShiftNight:
		day.Night = append(day.Night, name)
	}
	return true
}

// RebalanceDay removes the named employee from every shift list of the
// given date and records them as off, typically after a leave lands on
// an already generated week. The freed seat stays open for an explicit
// move.
func RebalanceDay(week *model.WeekSchedule, name string, date time.Time) bool {
	day := week.DayFor(date)
	if day == nil {
		return false
	}
	removeName(day, name)
	day.Off = append(day.Off, name)
	return true
}

func removeName(day *model.DaySchedule, name string) {
	day.Morning = withoutName(day.Morning, name)
	day.Evening = withoutName(day.Evening, name)
	day.Night = withoutName(day.Night, name)
	day.Off = withoutName(day.Off, name)
}

func withoutName(names []string, name string) []string {
	filtered := names[:0]
	for _, n := range names {
		if n != name {
			filtered = append(filtered, n)
		}
	}
	return filtered
}
