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

// AdvanceRotationStore is the storage surface AdvanceRotation needs.
type AdvanceRotationStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetLatestWeekSchedule(ctx context.Context) (*model.WeekSchedule, error)
	UpdateEmployeeRotation(ctx context.Context, employees []model.Employee) error
	InsertAuditRecord(ctx context.Context, record *model.AuditRecord) error
}

// AdvanceRotationResult reports the employees whose base shift moved.
type AdvanceRotationResult struct {
	Employees []model.Employee
	Rotated   int
	WeekID    string
}

// AdvanceRotation accepts the latest generated week and moves every
// rotating employee's base shift one week forward. The accepted week's
// assignments are folded into the lifetime night/shift counters at the
// same time, so counters advance exactly once per accepted week.
//
// This is the only operation that mutates base-shift state.
func AdvanceRotation(ctx context.Context, store AdvanceRotationStore, logger *zap.Logger, actor string) (*AdvanceRotationResult, error) {
	week, err := store.GetLatestWeekSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest week schedule: %w", err)
	}

	employees, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	logger.Info("Advancing rotation",
		zap.String("accepted_week", week.ID),
		zap.Int("employees", len(employees)))

	advanced := roster.Advance(employees)

	tallies := roster.TallyWeek(*week)
	rotated := 0
	for i := range advanced {
		if tally, ok := tallies[advanced[i].Name]; ok {
			advanced[i].ShiftCount += tally.Shifts
			advanced[i].NightCount += tally.Nights
		}
		if advanced[i].BaseShift != employees[i].BaseShift {
			rotated++
			logger.Debug("Base shift advanced",
				zap.String("employee", advanced[i].Name),
				zap.String("from", string(employees[i].BaseShift)),
				zap.String("to", string(advanced[i].BaseShift)))
		}
	}

	if err := store.UpdateEmployeeRotation(ctx, advanced); err != nil {
		return nil, fmt.Errorf("failed to persist advanced rotation: %w", err)
	}

	if err := store.InsertAuditRecord(ctx, &model.AuditRecord{
		ID:        uuid.New().String(),
		Action:    model.AuditAdvanceRotation,
		Actor:     actor,
		Date:      week.ID,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}

	logger.Info("Rotation advanced", zap.Int("rotated", rotated))

	return &AdvanceRotationResult{Employees: advanced, Rotated: rotated, WeekID: week.ID}, nil
}
