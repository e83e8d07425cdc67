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

// GenerateRosterStore is the storage surface GenerateRoster needs.
type GenerateRosterStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetHolidays(ctx context.Context) ([]model.Holiday, error)
	GetLeaves(ctx context.Context) ([]model.Leave, error)
	UpsertWeekSchedule(ctx context.Context, week *model.WeekSchedule) error
	InsertAuditRecord(ctx context.Context, record *model.AuditRecord) error
}

// HolidayExpander supplies configured holiday rules resolved to
// concrete dates for the generation window.
type HolidayExpander interface {
	ExpandHolidays(from, until time.Time) ([]model.Holiday, error)
}

// GenerateRosterResult is what a generation run produced.
type GenerateRosterResult struct {
	Week     model.WeekSchedule
	Gaps     []roster.CoverageGap
	Holidays []model.Holiday
}

// GenerateRoster builds and persists the week schedule starting at the
// week containing selectedDate. The selected date is snapped back to
// the configured week start, so any day of the target week may be
// picked.
//
// Generation is deterministic; re-running for the same week simply
// overwrites the stored schedule with an identical one (unless inputs
// changed).
func GenerateRoster(ctx context.Context, store GenerateRosterStore, expander HolidayExpander, logger *zap.Logger, selectedDate time.Time, weekStartDay time.Weekday, policy roster.CapacityPolicy, actor string) (*GenerateRosterResult, error) {
	weekStart := SnapToWeekStart(selectedDate, weekStartDay)
	weekEnd := weekStart.AddDate(0, 0, 6)

	logger.Info("Generating roster",
		zap.String("week_start", weekStart.Format(model.DateFormat)),
		zap.String("actor", actor))

	employees, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	logger.Debug("Employees fetched", zap.Int("count", len(employees)))

	holidays, err := store.GetHolidays(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}

	if expander != nil {
		configured, err := expander.ExpandHolidays(weekStart, weekEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to expand holiday rules: %w", err)
		}
		holidays = mergeHolidays(holidays, configured)
	}
	logger.Debug("Holidays resolved", zap.Int("count", len(holidays)))

	leaves, err := store.GetLeaves(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaves: %w", err)
	}

	week := roster.Generate(weekStart, employees, holidays, leaves, policy)
	gaps := roster.CoverageGaps(week, policy)

	if err := store.UpsertWeekSchedule(ctx, &week); err != nil {
		return nil, fmt.Errorf("failed to persist week schedule: %w", err)
	}

	if err := store.InsertAuditRecord(ctx, &model.AuditRecord{
		ID:        uuid.New().String(),
		Action:    model.AuditGenerateRoster,
		Actor:     actor,
		Date:      week.ID,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}

	logger.Info("Roster generated",
		zap.String("week_start", week.ID),
		zap.Int("coverage_gaps", len(gaps)))
	for _, gap := range gaps {
		logger.Warn("Shift under target",
			zap.String("date", gap.Date),
			zap.String("shift", string(gap.Shift)),
			zap.Int("want", gap.Want),
			zap.Int("got", gap.Got))
	}

	return &GenerateRosterResult{Week: week, Gaps: gaps, Holidays: holidays}, nil
}

// mergeHolidays combines stored and configured holidays, keeping the
// first label seen for any calendar day.
func mergeHolidays(stored, configured []model.Holiday) []model.Holiday {
	merged := make([]model.Holiday, 0, len(stored)+len(configured))
	seen := make(map[string]bool)
	for _, h := range append(stored, configured...) {
		key := model.DateOnly(h.Date).Format(model.DateFormat)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, h)
	}
	return merged
}
