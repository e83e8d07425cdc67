package services

import (
	"context"
	"fmt"
	"time"

	"github.com/saltsync/rosterd/pkg/core/model"
	"github.com/saltsync/rosterd/pkg/db"
)

// mockStore implements every service store interface for testing.
type mockStore struct {
	employees []model.Employee
	holidays  []model.Holiday
	leaves    []model.Leave
	weeks     map[string]*model.WeekSchedule

	insertedLeaves   []model.Leave
	insertedHolidays []model.Holiday
	updatedEmployees []model.Employee
	audits           []model.AuditRecord

	getEmployeesErr error
	upsertWeekErr   error
	insertLeaveErr  error
	updateRotateErr error
}

func newMockStore() *mockStore {
	return &mockStore{weeks: make(map[string]*model.WeekSchedule)}
}

func (m *mockStore) GetEmployees(ctx context.Context) ([]model.Employee, error) {
	if m.getEmployeesErr != nil {
		return nil, m.getEmployeesErr
	}
	return m.employees, nil
}

func (m *mockStore) GetHolidays(ctx context.Context) ([]model.Holiday, error) {
	return m.holidays, nil
}

func (m *mockStore) GetLeaves(ctx context.Context) ([]model.Leave, error) {
	return m.leaves, nil
}

func (m *mockStore) InsertLeave(ctx context.Context, leave *model.Leave) error {
	if m.insertLeaveErr != nil {
		return m.insertLeaveErr
	}
	m.insertedLeaves = append(m.insertedLeaves, *leave)
	m.leaves = append(m.leaves, *leave)
	return nil
}

func (m *mockStore) InsertHoliday(ctx context.Context, holiday *model.Holiday) error {
	m.insertedHolidays = append(m.insertedHolidays, *holiday)
	m.holidays = append(m.holidays, *holiday)
	return nil
}

func (m *mockStore) GetWeekSchedule(ctx context.Context, weekStart string) (*model.WeekSchedule, error) {
	week, ok := m.weeks[weekStart]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *week
	return &copied, nil
}

func (m *mockStore) GetLatestWeekSchedule(ctx context.Context) (*model.WeekSchedule, error) {
	var latest *model.WeekSchedule
	for _, week := range m.weeks {
		if latest == nil || week.WeekStart.After(latest.WeekStart) {
			latest = week
		}
	}
	if latest == nil {
		return nil, db.ErrNotFound
	}
	copied := *latest
	return &copied, nil
}

func (m *mockStore) UpsertWeekSchedule(ctx context.Context, week *model.WeekSchedule) error {
	if m.upsertWeekErr != nil {
		return m.upsertWeekErr
	}
	copied := *week
	m.weeks[week.ID] = &copied
	return nil
}

func (m *mockStore) UpdateEmployeeRotation(ctx context.Context, employees []model.Employee) error {
	if m.updateRotateErr != nil {
		return m.updateRotateErr
	}
	m.updatedEmployees = employees
	m.employees = employees
	return nil
}

func (m *mockStore) InsertAuditRecord(ctx context.Context, record *model.AuditRecord) error {
	m.audits = append(m.audits, *record)
	return nil
}

// testEmployee builds an active employee with a creation timestamp
// derived from n, preserving insertion order as the tie-break order.
func testEmployee(n int, name string, role model.Role, base model.Shift) model.Employee {
	return model.Employee{
		ID:        fmt.Sprintf("emp-%d", n),
		Name:      name,
		Role:      role,
		Active:    true,
		BaseShift: base,
		CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Hour),
	}
}

// testWeek builds a seven-day week starting at the given Saturday with
// every employee placed on their base shift each day.
func testWeek(weekStart time.Time, employees []model.Employee) *model.WeekSchedule {
	week := &model.WeekSchedule{
		ID:        weekStart.Format(model.DateFormat),
		WeekStart: weekStart,
	}
	for i := range week.Days {
		day := model.DaySchedule{Date: weekStart.AddDate(0, 0, i)}
		for _, emp := range employees {
			switch emp.BaseShift {
			case model.ShiftMorning:
				day.Morning = append(day.Morning, emp.Name)
			case model.ShiftEvening:
				day.Evening = append(day.Evening, emp.Name)
			case model.ShiftNight:
				day.Night = append(day.Night, emp.Name)
			}
		}
		week.Days[i] = day
	}
	return week
}

// mockExpander implements HolidayExpander with a fixed result.
type mockExpander struct {
	holidays []model.Holiday
	err      error
}

func (m *mockExpander) ExpandHolidays(from, until time.Time) ([]model.Holiday, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.holidays, nil
}
