package db

import (
	"context"
	"errors"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// ErrNotFound is returned by lookups for records that do not exist.
var ErrNotFound = errors.New("record not found")

// EmployeeStore defines the interface for employee database operations
type EmployeeStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	InsertEmployee(ctx context.Context, employee *model.Employee) error
	UpdateEmployeeRotation(ctx context.Context, employees []model.Employee) error
}

// LeaveStore defines the interface for leave database operations
type LeaveStore interface {
	GetLeaves(ctx context.Context) ([]model.Leave, error)
	InsertLeave(ctx context.Context, leave *model.Leave) error
}

// HolidayStore defines the interface for holiday database operations
type HolidayStore interface {
	GetHolidays(ctx context.Context) ([]model.Holiday, error)
	InsertHoliday(ctx context.Context, holiday *model.Holiday) error
}

// RosterStore defines the interface for week schedule database
// operations. Week schedules are keyed by their start date
// (YYYY-MM-DD).
type RosterStore interface {
	GetWeekSchedule(ctx context.Context, weekStart string) (*model.WeekSchedule, error)
	GetLatestWeekSchedule(ctx context.Context) (*model.WeekSchedule, error)
	UpsertWeekSchedule(ctx context.Context, week *model.WeekSchedule) error
}

// AuditStore defines the interface for audit trail operations
type AuditStore interface {
	InsertAuditRecord(ctx context.Context, record *model.AuditRecord) error
	GetAuditRecords(ctx context.Context, limit int) ([]model.AuditRecord, error)
}

// Database aggregates every store the services consume. The postgres
// implementation satisfies it.
type Database interface {
	EmployeeStore
	LeaveStore
	HolidayStore
	RosterStore
	AuditStore
}
