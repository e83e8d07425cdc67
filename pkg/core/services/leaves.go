package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saltsync/rosterd/pkg/core/model"
	"github.com/saltsync/rosterd/pkg/core/roster"
	"github.com/saltsync/rosterd/pkg/db"
)

// AddLeaveStore is the storage surface AddLeave needs.
type AddLeaveStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	InsertLeave(ctx context.Context, leave *model.Leave) error
	GetLatestWeekSchedule(ctx context.Context) (*model.WeekSchedule, error)
	UpsertWeekSchedule(ctx context.Context, week *model.WeekSchedule) error
	InsertAuditRecord(ctx context.Context, record *model.AuditRecord) error
}

// AddLeaveResult reports the recorded leave and any already-generated
// days that were rebalanced because the leave covers them.
type AddLeaveResult struct {
	Leave          model.Leave
	RebalancedDays []string
}

// AddLeave records a leave interval for an employee. If the latest
// generated week overlaps the interval, the employee is pulled out of
// their shifts on the covered days; the freed seats stay open for
// explicit moves.
func AddLeave(ctx context.Context, store AddLeaveStore, logger *zap.Logger, employeeID, startDate, endDate string, kind model.LeaveKind, actor string) (*AddLeaveResult, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid leave kind %q", kind)
	}

	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("leave end %s is before start %s", endDate, startDate)
	}

	employees, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	var employee *model.Employee
	for i := range employees {
		if employees[i].ID == employeeID {
			employee = &employees[i]
			break
		}
	}
	if employee == nil {
		return nil, fmt.Errorf("employee %s not found", employeeID)
	}

	leave := model.Leave{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Kind:       kind,
	}

	if err := store.InsertLeave(ctx, &leave); err != nil {
		return nil, fmt.Errorf("failed to insert leave: %w", err)
	}

	logger.Info("Leave recorded",
		zap.String("employee", employee.Name),
		zap.String("start", startDate),
		zap.String("end", endDate),
		zap.String("kind", string(kind)))

	result := &AddLeaveResult{Leave: leave}

	// Pull the employee out of any already-generated days the leave
	// covers.
	week, err := store.GetLatestWeekSchedule(ctx)
	switch {
	case errors.Is(err, db.ErrNotFound):
		// Nothing generated yet.
	case err != nil:
		return nil, fmt.Errorf("failed to fetch latest week schedule: %w", err)
	default:
		for i := range week.Days {
			date := week.Days[i].Date
			if !leave.Covers(date) {
				continue
			}
			if roster.RebalanceDay(week, employee.Name, date) {
				result.RebalancedDays = append(result.RebalancedDays, date.Format(model.DateFormat))
			}
		}
		if len(result.RebalancedDays) > 0 {
			if err := store.UpsertWeekSchedule(ctx, week); err != nil {
				return nil, fmt.Errorf("failed to persist rebalanced week: %w", err)
			}
			logger.Info("Rebalanced generated days for leave",
				zap.Strings("dates", result.RebalancedDays))
		}
	}

	if err := store.InsertAuditRecord(ctx, &model.AuditRecord{
		ID:         uuid.New().String(),
		Action:     model.AuditAddLeave,
		Actor:      actor,
		EmployeeID: employeeID,
		Date:       startDate,
		New:        fmt.Sprintf("%s..%s %s", startDate, endDate, kind),
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}

	return result, nil
}
