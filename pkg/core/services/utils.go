package services

import (
	"fmt"
	"time"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// SnapToWeekStart returns the most recent occurrence of the configured
// week start weekday on or before the given date.
func SnapToWeekStart(date time.Time, weekStartDay time.Weekday) time.Time {
	d := model.DateOnly(date)
	offset := (int(d.Weekday()) - int(weekStartDay) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	date, err := time.ParseInLocation(model.DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return date, nil
}
