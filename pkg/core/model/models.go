package model

import "time"

// DateFormat is the calendar-day format used everywhere a date is stored
// or keyed as a string.
const DateFormat = "2006-01-02"

type Role string

const (
	RoleTeamLead Role = "TL"
	RoleManager  Role = "Manager"
	RoleSenior   Role = "Senior"
	RoleJunior   Role = "Junior"
)

func (r Role) IsValid() bool {
	return r == RoleTeamLead || r == RoleManager || r == RoleSenior || r == RoleJunior
}

// IsExemptRole reports whether the role is excused from working on rest
// days and holidays (team leads and managers).
func (r Role) IsExemptRole() bool {
	return r == RoleTeamLead || r == RoleManager
}

// Shift is one of the three working rotation slots. "Off" is not a
// Shift: employees not working appear in DaySchedule.Off instead.
type Shift string

const (
	ShiftMorning Shift = "Morning"
	ShiftEvening Shift = "Evening"
	ShiftNight   Shift = "Night"
)

func (s Shift) IsValid() bool {
	return s == ShiftMorning || s == ShiftEvening || s == ShiftNight
}

type LeaveKind string

const (
	LeaveSick   LeaveKind = "Sick"
	LeaveCasual LeaveKind = "Casual"
)

func (k LeaveKind) IsValid() bool {
	return k == LeaveSick || k == LeaveCasual
}

// OffReason is a stable identifier explaining why an employee is exempt
// from work on a given date.
type OffReason string

const (
	OffReasonRole   OffReason = "RoleOff"
	OffReasonSick   OffReason = "SickLeave"
	OffReasonCasual OffReason = "CasualLeave"
	OffReasonNone   OffReason = ""
)

// Employee represents a roster member. Employees are never deleted,
// only deactivated.
type Employee struct {
	ID     string
	Name   string
	Role   Role
	Active bool

	// RestDayOff and HolidayOff are profile flags carried for external
	// collaborators (profile editing, display). The engine's exemption
	// rule keys on Role.
	RestDayOff bool
	HolidayOff bool

	// BaseShift is the employee's current rotation slot.
	BaseShift Shift

	// RotationPhase counts completed weeks in the current base shift
	// (0 or 1). Each shift is held for two consecutive weeks, so the
	// full rotation cycle is Morning, Morning, Evening, Evening,
	// Night, Night.
	RotationPhase int

	// NightCount and ShiftCount are lifetime tallies maintained by the
	// roster services after each accepted generation.
	NightCount int
	ShiftCount int

	// CreatedAt provides the stable ordering used as tie-break in all
	// deterministic rotation picks.
	CreatedAt time.Time
}

// Leave is a closed date interval during which an employee is off work.
// Both bounds are inclusive.
type Leave struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Kind       LeaveKind
}

// Covers reports whether the leave interval includes the given calendar
// day.
func (l Leave) Covers(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(l.StartDate)) && !d.After(DateOnly(l.EndDate))
}

// OffReason maps the leave kind to its off reason identifier.
func (l Leave) OffReason() OffReason {
	if l.Kind == LeaveSick {
		return OffReasonSick
	}
	return OffReasonCasual
}

// Holiday is a single declared public holiday.
type Holiday struct {
	Date  time.Time
	Label string
}

// DaySchedule holds the four disjoint name lists for one calendar date.
// Every eligible employee appears in exactly one of Morning, Evening or
// Night; everyone else appears in Off.
type DaySchedule struct {
	Date    time.Time
	Morning []string
	Evening []string
	Night   []string
	Off     []string
}

// Occupancy returns the current number of names in the given shift.
func (d DaySchedule) Occupancy(shift Shift) int {
	switch shift {
	case ShiftMorning:
		return len(d.Morning)
	case ShiftEvening:
		return len(d.Evening)
	case ShiftNight:
		return len(d.Night)
	}
	return 0
}

// Contains reports whether the name appears in any of the four lists.
func (d DaySchedule) Contains(name string) bool {
	for _, list := range [][]string{d.Morning, d.Evening, d.Night, d.Off} {
		for _, n := range list {
			if n == name {
				return true
			}
		}
	}
	return false
}

// WeekSchedule is a generated roster for one seven-day period starting
// at the configured week-start weekday. Its ID is the week start date.
type WeekSchedule struct {
	ID        string
	WeekStart time.Time
	Days      [7]DaySchedule
}

// DayFor returns the day schedule for the given date, or nil if the
// date falls outside this week.
func (w *WeekSchedule) DayFor(date time.Time) *DaySchedule {
	d := DateOnly(date)
	for i := range w.Days {
		if w.Days[i].Date.Equal(d) {
			return &w.Days[i]
		}
	}
	return nil
}

// ShiftTemplate names a set of shift timings. Exactly one template is
// active at a time; timings are display data, the engine does no
// arithmetic on them.
type ShiftTemplate struct {
	Name    string
	Active  bool
	Morning ShiftTiming
	Evening ShiftTiming
	Night   ShiftTiming
}

type ShiftTiming struct {
	Start string
	End   string
}

// AuditRecord captures one administrative action against the roster.
type AuditRecord struct {
	ID         string
	Action     string
	Actor      string
	EmployeeID string
	Date       string
	Previous   string
	New        string
	CreatedAt  time.Time
}

// Audit action identifiers.
const (
	AuditGenerateRoster  = "GENERATE_ROSTER"
	AuditAdvanceRotation = "ADVANCE_ROTATION"
	AuditApplyMove       = "APPLY_MOVE"
	AuditAddLeave        = "ADD_LEAVE"
	AuditAddHoliday      = "ADD_HOLIDAY"
)

// DateOnly truncates a time to its calendar day in UTC. All engine
// comparisons are calendar-day comparisons, never instant comparisons.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
