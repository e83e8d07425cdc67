package roster

import (
	"time"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// billingWindowLastDay is the last day of the month still inside the
// billing window. Rest days falling on or before it get an extra
// morning seat.
const billingWindowLastDay = 12

// IsRestDay reports whether the date falls on the designated weekly
// rest day.
func IsRestDay(date time.Time, restDay time.Weekday) bool {
	return date.Weekday() == restDay
}

// IsHoliday reports whether the date matches any declared holiday.
// Comparison is by calendar day, not by instant.
func IsHoliday(date time.Time, holidays []model.Holiday) bool {
	d := model.DateOnly(date)
	for _, h := range holidays {
		if model.DateOnly(h.Date).Equal(d) {
			return true
		}
	}
	return false
}

// IsBillingRestDay reports whether the date is a rest day inside the
// billing window (first 12 days of the month).
func IsBillingRestDay(date time.Time, restDay time.Weekday) bool {
	return IsRestDay(date, restDay) && date.Day() <= billingWindowLastDay
}
