package roster

import (
	"sort"
	"time"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// Generate builds the full week's schedule from a snapshot of
// employees, holidays and leaves. It is pure and deterministic: the
// same inputs always produce the same WeekSchedule, so re-generation is
// idempotent.
//
// Inactive employees are dropped up front. The remaining roster is
// sorted by creation order (employee ID as tie-break), and that order
// drives every greedy pick below.
func Generate(weekStart time.Time, employees []model.Employee, holidays []model.Holiday, leaves []model.Leave, policy CapacityPolicy) model.WeekSchedule {
	start := model.DateOnly(weekStart)

	roster := make([]model.Employee, 0, len(employees))
	for _, emp := range employees {
		if emp.Active {
			roster = append(roster, emp)
		}
	}
	sort.SliceStable(roster, func(i, j int) bool {
		if roster[i].CreatedAt.Equal(roster[j].CreatedAt) {
			return roster[i].ID < roster[j].ID
		}
		return roster[i].CreatedAt.Before(roster[j].CreatedAt)
	})

	week := model.WeekSchedule{
		ID:        start.Format(model.DateFormat),
		WeekStart: start,
	}

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		week.Days[i] = generateDay(date, roster, holidays, leaves, policy)
	}

	return week
}

func generateDay(date time.Time, roster []model.Employee, holidays []model.Holiday, leaves []model.Leave, policy CapacityPolicy) model.DaySchedule {
	day := model.DaySchedule{
		Date:    date,
		Morning: []string{},
		Evening: []string{},
		Night:   []string{},
		Off:     []string{},
	}

	pool := newCandidatePool(len(roster))
	for _, emp := range roster {
		if exempt, _ := IsExempt(emp, date, policy.RestDay, holidays, leaves); exempt {
			day.Off = append(day.Off, emp.Name)
			continue
		}
		pool.add(emp)
	}

	targets := policy.TargetsFor(date)

	// Capped shifts first, night before evening, so the single night
	// seat is always filled while candidates remain.
	day.Night = pool.take(model.ShiftNight, targets.Night)
	day.Evening = pool.take(model.ShiftEvening, targets.Evening)

	if targets.Morning == MorningUnbounded {
		// Normal day: morning absorbs everyone left.
		day.Morning = pool.drainNames()
		return day
	}

	// Rest day: fill the (small) morning target, everyone unpicked is
	// off for the day.
	day.Morning = pool.take(model.ShiftMorning, targets.Morning)
	day.Off = append(day.Off, pool.drainNames()...)

	return day
}

// candidatePool is the explicit remaining-candidates list behind the
// generator's pick-and-remove loop. Order is the stable creation order
// established by Generate; picks remove the employee immediately so
// nobody is double-booked.
type candidatePool struct {
	remaining []model.Employee
}

func newCandidatePool(capacity int) *candidatePool {
	return &candidatePool{remaining: make([]model.Employee, 0, capacity)}
}

func (p *candidatePool) add(emp model.Employee) {
	p.remaining = append(p.remaining, emp)
}

// take picks up to count employees for the given shift, preferring
// candidates whose base shift matches (keeping assignments sticky to
// the declared rotation) and falling back to the first remaining
// rotating candidate in order. Team leads and managers never fill a
// seat by fallback, only by base-shift match, so the generator cannot
// place them where a move validation would refuse to. A pool with no
// pickable candidate yields fewer names than asked for; the shortfall
// is a coverage gap, not an error.
func (p *candidatePool) take(shift model.Shift, count int) []string {
	names := []string{}
	for len(names) < count && len(p.remaining) > 0 {
		idx := -1
		for j, emp := range p.remaining {
			if emp.BaseShift == shift {
				idx = j
				break
			}
		}
		if idx < 0 {
			for j, emp := range p.remaining {
				if !emp.Role.IsExemptRole() {
					idx = j
					break
				}
			}
		}
		if idx < 0 {
			break
		}
		names = append(names, p.remaining[idx].Name)
		p.remaining = append(p.remaining[:idx], p.remaining[idx+1:]...)
	}
	return names
}

// drainNames removes and returns every remaining candidate's name.
func (p *candidatePool) drainNames() []string {
	names := make([]string, 0, len(p.remaining))
	for _, emp := range p.remaining {
		names = append(names, emp.Name)
	}
	p.remaining = p.remaining[:0]
	return names
}
