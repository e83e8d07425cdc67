package roster

import "github.com/saltsync/rosterd/pkg/core/model"

// CoverageGap records a shift that received fewer names than its seat
// target on one day. Generation never fails; gaps are how shortfalls
// surface to the caller.
type CoverageGap struct {
	Date  string
	Shift model.Shift
	Want  int
	Got   int
}

// CoverageGaps compares every day of the week against the policy's
// seat targets. Unbounded morning targets are never gaps.
func CoverageGaps(week model.WeekSchedule, policy CapacityPolicy) []CoverageGap {
	gaps := []CoverageGap{}
	for _, day := range week.Days {
		targets := policy.TargetsFor(day.Date)
		checks := []struct {
			shift model.Shift
			want  int
			got   int
		}{
			{model.ShiftNight, targets.Night, len(day.Night)},
			{model.ShiftEvening, targets.Evening, len(day.Evening)},
			{model.ShiftMorning, targets.Morning, len(day.Morning)},
		}
		for _, c := range checks {
			if c.want == MorningUnbounded {
				continue
			}
			if c.got < c.want {
				gaps = append(gaps, CoverageGap{
					Date:  day.Date.Format(model.DateFormat),
					Shift: c.shift,
					Want:  c.want,
					Got:   c.got,
				})
			}
		}
	}
	return gaps
}

// ShiftTally is the per-employee assignment count for one generated
// week, used to maintain lifetime night/shift counters.
type ShiftTally struct {
	Shifts int
	Nights int
}

// TallyWeek counts working assignments per employee name across the
// week.
func TallyWeek(week model.WeekSchedule) map[string]ShiftTally {
	tallies := make(map[string]ShiftTally)
	for _, day := range week.Days {
		for _, name := range day.Morning {
			t := tallies[name]
			t.Shifts++
			tallies[name] = t
		}
		for _, name := range day.Evening {
			t := tallies[name]
			t.Shifts++
			tallies[name] = t
		}
		for _, name := range day.Night {
			t := tallies[name]
			t.Shifts++
			t.Nights++
			tallies[name] = t
		}
	}
	return tallies
}
