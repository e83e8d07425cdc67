package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// AddHolidayStore is the storage surface AddHoliday needs.
type AddHolidayStore interface {
	InsertHoliday(ctx context.Context, holiday *model.Holiday) error
	InsertAuditRecord(ctx context.Context, record *model.AuditRecord) error
}

// AddHoliday declares a public holiday. Holidays affect future
// generation runs; an already-generated week must be regenerated to
// pick the new holiday up.
func AddHoliday(ctx context.Context, store AddHolidayStore, logger *zap.Logger, dateStr, label, actor string) (*model.Holiday, error) {
	if label == "" {
		return nil, fmt.Errorf("holiday label must not be empty")
	}

	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	holiday := model.Holiday{Date: date, Label: label}
	if err := store.InsertHoliday(ctx, &holiday); err != nil {
		return nil, fmt.Errorf("failed to insert holiday: %w", err)
	}

	if err := store.InsertAuditRecord(ctx, &model.AuditRecord{
		ID:        uuid.New().String(),
		Action:    model.AuditAddHoliday,
		Actor:     actor,
		Date:      dateStr,
		New:       label,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}

	logger.Info("Holiday declared", zap.String("date", dateStr), zap.String("label", label))

	return &holiday, nil
}
