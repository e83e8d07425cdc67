package roster

import (
	"time"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// MorningUnbounded marks a morning seat target with no upper limit:
// the morning shift absorbs every employee left after the capped
// shifts are filled.
const MorningUnbounded = -1

// CapacityPolicy holds the per-shift seat constants shared by the
// generator and the move validator, so the two can never drift apart.
type CapacityPolicy struct {
	// RestDay is the weekday on which reduced staffing applies.
	RestDay time.Weekday

	// NightSeats is the nightly seat count (every day).
	NightSeats int

	// EveningSeats is the evening seat count on normal days. Rest days
	// always run a single evening seat.
	EveningSeats int
}

// DefaultCapacityPolicy returns the production policy: one night seat,
// two evening seats, Friday rest day.
func DefaultCapacityPolicy() CapacityPolicy {
	return CapacityPolicy{
		RestDay:      time.Friday,
		NightSeats:   1,
		EveningSeats: 2,
	}
}

// SeatTargets are the per-shift seat counts the generator fills for one
// day. Morning may be MorningUnbounded.
type SeatTargets struct {
	Night   int
	Evening int
	Morning int
}

// TargetsFor returns the seat targets for the given date. On the rest
// day the evening shift drops to one seat and the morning shift gets a
// second seat only inside the billing window. On normal days the
// morning shift is unbounded.
func (p CapacityPolicy) TargetsFor(date time.Time) SeatTargets {
	if IsRestDay(date, p.RestDay) {
		morning := 1
		if IsBillingRestDay(date, p.RestDay) {
			morning = 2
		}
		return SeatTargets{Night: p.NightSeats, Evening: 1, Morning: morning}
	}
	return SeatTargets{Night: p.NightSeats, Evening: p.EveningSeats, Morning: MorningUnbounded}
}

// MoveCap returns the occupancy ceiling the validator enforces for a
// single-assignment move into the given shift, or MorningUnbounded for
// shifts without a ceiling. Moves are checked against the normal-day
// constants regardless of date; rest-day role rules are enforced
// separately.
func (p CapacityPolicy) MoveCap(shift model.Shift) int {
	switch shift {
	case model.ShiftNight:
		return p.NightSeats
	case model.ShiftEvening:
		return p.EveningSeats
	}
	return MorningUnbounded
}
