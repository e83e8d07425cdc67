package roster

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// makeEmployee builds an active employee whose creation order follows n.
func makeEmployee(n int, name string, role model.Role, shift model.Shift) model.Employee {
	return model.Employee{
		ID:        fmt.Sprintf("e%d", n),
		Name:      name,
		Role:      role,
		Active:    true,
		BaseShift: shift,
		CreatedAt: date(2023, time.January, 1).Add(time.Duration(n) * time.Hour),
	}
}

// testRoster is the standard seven-person roster used across generator
// tests: one team lead, one manager, and five rotating staff.
func testRoster() []model.Employee {
	return []model.Employee{
		makeEmployee(1, "Tariq", model.RoleTeamLead, model.ShiftMorning),
		makeEmployee(2, "Mona", model.RoleManager, model.ShiftMorning),
		makeEmployee(3, "Nadia", model.RoleSenior, model.ShiftNight),
		makeEmployee(4, "Ehab", model.RoleSenior, model.ShiftEvening),
		makeEmployee(5, "Eman", model.RoleJunior, model.ShiftEvening),
		makeEmployee(6, "Jameel", model.RoleJunior, model.ShiftMorning),
		makeEmployee(7, "Omar", model.RoleJunior, model.ShiftMorning),
	}
}

// Week starting Saturday 2024-03-02; its Friday (2024-03-08) falls
// inside the billing window.
var billingWeekStart = date(2024, time.March, 2)

// Week starting Saturday 2024-03-16; its Friday (2024-03-22) falls
// outside the billing window.
var normalWeekStart = date(2024, time.March, 16)

func TestGenerate_EveryEmployeeAppearsExactlyOnce(t *testing.T) {
	employees := testRoster()
	week := Generate(billingWeekStart, employees, nil, nil, DefaultCapacityPolicy())

	for _, day := range week.Days {
		seen := map[string]int{}
		for _, list := range [][]string{day.Morning, day.Evening, day.Night, day.Off} {
			for _, name := range list {
				seen[name]++
			}
		}

		assert.Len(t, seen, len(employees), "every active employee is placed on %s", day.Date.Format(model.DateFormat))
		for _, emp := range employees {
			assert.Equal(t, 1, seen[emp.Name], "%s appears exactly once on %s", emp.Name, day.Date.Format(model.DateFormat))
		}
	}
}

func TestGenerate_NormalDayTargets(t *testing.T) {
	week := Generate(billingWeekStart, testRoster(), nil, nil, DefaultCapacityPolicy())

	// Saturday 2024-03-02 is a normal day.
	day := week.Days[0]
	require.Equal(t, "2024-03-02", day.Date.Format(model.DateFormat))

	assert.Equal(t, []string{"Nadia"}, day.Night, "night seat goes to the night-based employee")
	assert.Equal(t, []string{"Ehab", "Eman"}, day.Evening, "evening seats go to the evening-based employees in creation order")
	assert.ElementsMatch(t, []string{"Tariq", "Mona", "Jameel", "Omar"}, day.Morning, "morning absorbs everyone left")
	assert.Empty(t, day.Off)
}

func TestGenerate_BillingRestDay(t *testing.T) {
	week := Generate(billingWeekStart, testRoster(), nil, nil, DefaultCapacityPolicy())

	// Friday 2024-03-08, day 8 of the month: billing rest day.
	day := week.Days[6]
	require.Equal(t, "2024-03-08", day.Date.Format(model.DateFormat))

	assert.ElementsMatch(t, []string{"Tariq", "Mona"}, day.Off[:2], "team lead and manager are off on the rest day")
	assert.Equal(t, []string{"Nadia"}, day.Night)
	assert.Equal(t, []string{"Ehab"}, day.Evening, "rest day runs a single evening seat")
	assert.Equal(t, []string{"Jameel", "Omar"}, day.Morning, "billing rest day gets two morning seats")
	assert.Contains(t, day.Off, "Eman", "unpicked eligible employees are off for the rest day")
}

func TestGenerate_NonBillingRestDay(t *testing.T) {
	week := Generate(normalWeekStart, testRoster(), nil, nil, DefaultCapacityPolicy())

	// Friday 2024-03-22, day 22 of the month: plain rest day.
	day := week.Days[6]
	require.Equal(t, "2024-03-22", day.Date.Format(model.DateFormat))

	assert.Len(t, day.Night, 1)
	assert.Len(t, day.Evening, 1)
	assert.Len(t, day.Morning, 1, "morning drops to one seat outside the billing window")
	assert.Len(t, day.Off, 4)
}

func TestGenerate_NightFallbackWhenNoNightBasedEmployee(t *testing.T) {
	employees := []model.Employee{
		makeEmployee(1, "Ehab", model.RoleSenior, model.ShiftEvening),
		makeEmployee(2, "Eman", model.RoleJunior, model.ShiftEvening),
		makeEmployee(3, "Jameel", model.RoleJunior, model.ShiftMorning),
	}

	week := Generate(billingWeekStart, employees, nil, nil, DefaultCapacityPolicy())
	day := week.Days[0]

	// Nobody's base shift is Night, so the first remaining employee in
	// creation order takes the seat.
	assert.Equal(t, []string{"Ehab"}, day.Night)
	assert.Equal(t, []string{"Eman", "Jameel"}, day.Evening, "one evening-based pick plus the first-in-order fallback")
	assert.Empty(t, day.Morning)
}

func TestGenerate_FallbackSkipsLeadership(t *testing.T) {
	employees := []model.Employee{
		makeEmployee(1, "Tariq", model.RoleTeamLead, model.ShiftMorning),
		makeEmployee(2, "Mona", model.RoleManager, model.ShiftMorning),
		makeEmployee(3, "Jameel", model.RoleJunior, model.ShiftMorning),
	}

	week := Generate(billingWeekStart, employees, nil, nil, DefaultCapacityPolicy())
	day := week.Days[0]

	// The lone rotating employee falls back into the night seat; the
	// team lead and manager stay in morning even though the evening
	// seats go unfilled.
	assert.Equal(t, []string{"Jameel"}, day.Night)
	assert.Empty(t, day.Evening, "leadership never fills a capped seat by fallback")
	assert.ElementsMatch(t, []string{"Tariq", "Mona"}, day.Morning)

	gaps := CoverageGaps(week, DefaultCapacityPolicy())
	require.NotEmpty(t, gaps)
	assert.Equal(t, model.ShiftEvening, gaps[0].Shift, "the open evening seats surface as coverage gaps")
}

func TestGenerate_LeaveExemption(t *testing.T) {
	employees := testRoster()
	leaves := []model.Leave{
		{ID: "l1", EmployeeID: "e3", StartDate: date(2024, time.March, 3), EndDate: date(2024, time.March, 4), Kind: model.LeaveCasual},
	}

	week := Generate(billingWeekStart, employees, nil, leaves, DefaultCapacityPolicy())

	// Nadia (night-based) is on leave Sunday and Monday.
	for _, i := range []int{1, 2} {
		day := week.Days[i]
		assert.Contains(t, day.Off, "Nadia")
		assert.NotContains(t, day.Night, "Nadia")

		// The night seat is still filled by fallback.
		assert.Len(t, day.Night, 1, "night seat filled despite the leave on %s", day.Date.Format(model.DateFormat))
	}

	// Back at work Tuesday.
	assert.Equal(t, []string{"Nadia"}, week.Days[3].Night)
}

func TestGenerate_HolidayExemptsLeadershipOnly(t *testing.T) {
	holidays := []model.Holiday{{Date: date(2024, time.March, 5), Label: "Founding Day"}}

	week := Generate(billingWeekStart, testRoster(), holidays, nil, DefaultCapacityPolicy())

	// Tuesday 2024-03-05 is a holiday but staffing targets are normal.
	day := week.Days[3]
	require.Equal(t, "2024-03-05", day.Date.Format(model.DateFormat))

	assert.ElementsMatch(t, []string{"Tariq", "Mona"}, day.Off)
	assert.Len(t, day.Night, 1)
	assert.Len(t, day.Evening, 2)
	assert.Len(t, day.Morning, 2)
}

func TestGenerate_InactiveEmployeesExcluded(t *testing.T) {
	employees := testRoster()
	employees[6].Active = false // Omar

	week := Generate(billingWeekStart, employees, nil, nil, DefaultCapacityPolicy())

	for _, day := range week.Days {
		assert.False(t, day.Contains("Omar"), "inactive employee never appears, not even in off")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	employees := testRoster()
	holidays := []model.Holiday{{Date: date(2024, time.March, 5), Label: "Founding Day"}}
	leaves := []model.Leave{
		{ID: "l1", EmployeeID: "e5", StartDate: date(2024, time.March, 6), EndDate: date(2024, time.March, 7), Kind: model.LeaveSick},
	}

	first := Generate(billingWeekStart, employees, holidays, leaves, DefaultCapacityPolicy())
	second := Generate(billingWeekStart, employees, holidays, leaves, DefaultCapacityPolicy())

	assert.Equal(t, first, second)
}

func TestGenerate_EmptyRosterProducesEmptyWeek(t *testing.T) {
	week := Generate(billingWeekStart, nil, nil, nil, DefaultCapacityPolicy())

	for _, day := range week.Days {
		assert.Empty(t, day.Morning)
		assert.Empty(t, day.Evening)
		assert.Empty(t, day.Night)
		assert.Empty(t, day.Off)
	}

	// The shortfall surfaces as coverage gaps, not as an error.
	gaps := CoverageGaps(week, DefaultCapacityPolicy())
	assert.NotEmpty(t, gaps)
}

func TestGenerate_WeekIdentity(t *testing.T) {
	week := Generate(billingWeekStart, testRoster(), nil, nil, DefaultCapacityPolicy())

	assert.Equal(t, "2024-03-02", week.ID)
	assert.Equal(t, billingWeekStart, week.WeekStart)
	for i, day := range week.Days {
		assert.Equal(t, billingWeekStart.AddDate(0, 0, i), day.Date)
	}
}

func TestCoverageGaps_UnderfilledShifts(t *testing.T) {
	// Two employees cannot fill night plus two evening seats.
	employees := []model.Employee{
		makeEmployee(1, "Nadia", model.RoleSenior, model.ShiftNight),
		makeEmployee(2, "Ehab", model.RoleSenior, model.ShiftEvening),
	}

	week := Generate(billingWeekStart, employees, nil, nil, DefaultCapacityPolicy())
	gaps := CoverageGaps(week, DefaultCapacityPolicy())

	require.NotEmpty(t, gaps)
	for _, gap := range gaps {
		assert.Less(t, gap.Got, gap.Want)
	}

	// Every normal day is short one evening seat.
	saturdayGaps := 0
	for _, gap := range gaps {
		if gap.Date == "2024-03-02" && gap.Shift == model.ShiftEvening {
			saturdayGaps++
			assert.Equal(t, 2, gap.Want)
			assert.Equal(t, 1, gap.Got)
		}
	}
	assert.Equal(t, 1, saturdayGaps)
}

func TestTallyWeek_CountsNightsAndShifts(t *testing.T) {
	week := Generate(billingWeekStart, testRoster(), nil, nil, DefaultCapacityPolicy())
	tallies := TallyWeek(week)

	// Nadia holds the night seat all seven days.
	assert.Equal(t, ShiftTally{Shifts: 7, Nights: 7}, tallies["Nadia"])

	// The team lead works all days except the rest day, never at night.
	assert.Equal(t, ShiftTally{Shifts: 6, Nights: 0}, tallies["Tariq"])
}
