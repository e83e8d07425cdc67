package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/saltsync/rosterd/pkg/core/model"
)

func TestAddLeave(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	weekStart := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC) // Saturday

	staff := []model.Employee{
		testEmployee(1, "Nadia", model.RoleSenior, model.ShiftNight),
		testEmployee(2, "Omar", model.RoleJunior, model.ShiftMorning),
	}

	t.Run("records the leave and audits it", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff

		result, err := AddLeave(ctx, store, logger, "emp-2", "2024-04-01", "2024-04-03", model.LeaveSick, "admin")
		require.NoError(t, err)

		require.Len(t, store.insertedLeaves, 1)
		leave := store.insertedLeaves[0]
		assert.Equal(t, "emp-2", leave.EmployeeID)
		assert.Equal(t, model.LeaveSick, leave.Kind)
		assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), leave.StartDate)
		assert.Equal(t, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), leave.EndDate)

		assert.Empty(t, result.RebalancedDays)
		require.Len(t, store.audits, 1)
		assert.Equal(t, model.AuditAddLeave, store.audits[0].Action)
	})

	t.Run("a single-day leave has equal bounds", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff

		result, err := AddLeave(ctx, store, logger, "emp-2", "2024-04-01", "2024-04-01", model.LeaveCasual, "admin")
		require.NoError(t, err)
		assert.True(t, result.Leave.Covers(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("rebalances already-generated days the leave covers", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff
		week := testWeek(weekStart, staff)
		store.weeks[week.ID] = week

		result, err := AddLeave(ctx, store, logger, "emp-1", "2024-03-17", "2024-03-18", model.LeaveSick, "admin")
		require.NoError(t, err)

		assert.Equal(t, []string{"2024-03-17", "2024-03-18"}, result.RebalancedDays)

		stored := store.weeks["2024-03-16"]
		for _, dateStr := range result.RebalancedDays {
			date, _ := ParseDate(dateStr)
			day := stored.DayFor(date)
			require.NotNil(t, day)
			assert.NotContains(t, day.Night, "Nadia")
			assert.Contains(t, day.Off, "Nadia")
		}

		// Days outside the interval are untouched.
		saturday := stored.DayFor(weekStart)
		assert.Contains(t, saturday.Night, "Nadia")
	})

	t.Run("leaves outside the generated week do not rebalance", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff
		week := testWeek(weekStart, staff)
		store.weeks[week.ID] = week

		result, err := AddLeave(ctx, store, logger, "emp-1", "2024-05-01", "2024-05-02", model.LeaveCasual, "admin")
		require.NoError(t, err)
		assert.Empty(t, result.RebalancedDays)
	})

	t.Run("rejects an unknown employee", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff

		_, err := AddLeave(ctx, store, logger, "emp-99", "2024-04-01", "2024-04-03", model.LeaveSick, "admin")
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("rejects an interval ending before it starts", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff

		_, err := AddLeave(ctx, store, logger, "emp-2", "2024-04-03", "2024-04-01", model.LeaveSick, "admin")
		assert.ErrorContains(t, err, "before start")
	})

	t.Run("rejects an unknown leave kind", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff

		_, err := AddLeave(ctx, store, logger, "emp-2", "2024-04-01", "2024-04-03", model.LeaveKind("Sabbatical"), "admin")
		assert.ErrorContains(t, err, "invalid leave kind")
	})

	t.Run("surfaces insert failures", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff
		store.insertLeaveErr = errors.New("connection reset")

		_, err := AddLeave(ctx, store, logger, "emp-2", "2024-04-01", "2024-04-03", model.LeaveSick, "admin")
		assert.ErrorContains(t, err, "failed to insert leave")
	})
}

func TestAddHoliday(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("records the holiday and audits it", func(t *testing.T) {
		store := newMockStore()

		holiday, err := AddHoliday(ctx, store, logger, "2024-04-10", "Eid al-Fitr", "admin")
		require.NoError(t, err)

		assert.Equal(t, "Eid al-Fitr", holiday.Label)
		assert.Equal(t, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), holiday.Date)

		require.Len(t, store.insertedHolidays, 1)
		require.Len(t, store.audits, 1)
		assert.Equal(t, model.AuditAddHoliday, store.audits[0].Action)
	})

	t.Run("rejects an empty label", func(t *testing.T) {
		store := newMockStore()

		_, err := AddHoliday(ctx, store, logger, "2024-04-10", "", "admin")
		assert.ErrorContains(t, err, "label")
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		store := newMockStore()

		_, err := AddHoliday(ctx, store, logger, "April 10", "Eid", "admin")
		assert.Error(t, err)
	})
}
