package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saltsync/rosterd/pkg/core/model"
	"github.com/saltsync/rosterd/pkg/core/roster"
)

// ApplyMoveStore is the storage surface ApplyShiftMove needs.
type ApplyMoveStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetWeekSchedule(ctx context.Context, weekStart string) (*model.WeekSchedule, error)
	UpsertWeekSchedule(ctx context.Context, week *model.WeekSchedule) error
	InsertAuditRecord(ctx context.Context, record *model.AuditRecord) error
}

// MoveResult describes an applied move.
type MoveResult struct {
	Employee      model.Employee
	Date          string
	PreviousShift string // shift name, "Off", or "" when unplaced
	NewShift      model.Shift
	Overridden    bool
}

// ApplyShiftMove validates a single-assignment move against the stored
// week and, on acceptance, edits the day and persists the result. A
// rejected move returns the *roster.MoveError so callers can render
// the stable reason identifier.
//
// emergencyOverride bypasses every validation rule; it must come from
// an explicit administrator decision.
func ApplyShiftMove(ctx context.Context, store ApplyMoveStore, logger *zap.Logger, policy roster.CapacityPolicy, weekStart string, employeeID string, targetDate string, targetShift model.Shift, emergencyOverride bool, actor string) (*MoveResult, error) {
	if !targetShift.IsValid() {
		return nil, fmt.Errorf("invalid target shift %q", targetShift)
	}

	date, err := ParseDate(targetDate)
	if err != nil {
		return nil, err
	}

	week, err := store.GetWeekSchedule(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch week %s: %w", weekStart, err)
	}

	employees, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	logger.Info("Validating shift move",
		zap.String("employee_id", employeeID),
		zap.String("date", targetDate),
		zap.String("shift", string(targetShift)),
		zap.Bool("emergency_override", emergencyOverride))

	if moveErr := roster.ValidateMove(employeeID, date, targetShift, week, employees, policy, emergencyOverride); moveErr != nil {
		logger.Info("Move rejected", zap.String("reason", string(moveErr.Reason)))
		return nil, moveErr
	}

	var employee *model.Employee
	for i := range employees {
		if employees[i].ID == employeeID {
			employee = &employees[i]
			break
		}
	}
	if employee == nil {
		// Only reachable under an emergency override.
		return nil, &roster.MoveError{
			Reason:     roster.MoveEmployeeNotFound,
			EmployeeID: employeeID,
			Date:       targetDate,
			Shift:      targetShift,
		}
	}

	previous := currentPlacement(week, employee.Name, date)

	if !roster.ApplyMove(week, employee.Name, date, targetShift) {
		return nil, &roster.MoveError{
			Reason:     roster.MoveInvalidDate,
			EmployeeID: employeeID,
			Date:       targetDate,
			Shift:      targetShift,
		}
	}

	if err := store.UpsertWeekSchedule(ctx, week); err != nil {
		return nil, fmt.Errorf("failed to persist week schedule: %w", err)
	}

	if err := store.InsertAuditRecord(ctx, &model.AuditRecord{
		ID:         uuid.New().String(),
		Action:     model.AuditApplyMove,
		Actor:      actor,
		EmployeeID: employeeID,
		Date:       targetDate,
		Previous:   previous,
		New:        string(targetShift),
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}

	logger.Info("Move applied",
		zap.String("employee", employee.Name),
		zap.String("from", previous),
		zap.String("to", string(targetShift)))

	return &MoveResult{
		Employee:      *employee,
		Date:          targetDate,
		PreviousShift: previous,
		NewShift:      targetShift,
		Overridden:    emergencyOverride,
	}, nil
}

// currentPlacement names the list holding the employee on the given
// day before the move.
func currentPlacement(week *model.WeekSchedule, name string, date time.Time) string {
	day := week.DayFor(date)
	if day == nil {
		return ""
	}
	for _, placement := range []struct {
		label string
		list  []string
	}{
		{string(model.ShiftMorning), day.Morning},
		{string(model.ShiftEvening), day.Evening},
		{string(model.ShiftNight), day.Night},
		{"Off", day.Off},
	} {
		for _, n := range placement.list {
			if n == name {
				return placement.label
			}
		}
	}
	return ""
}
