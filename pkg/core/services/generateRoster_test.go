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
	"github.com/saltsync/rosterd/pkg/core/roster"
)

func TestGenerateRoster(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	policy := roster.DefaultCapacityPolicy()
	weekStart := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC) // Saturday

	staff := []model.Employee{
		testEmployee(1, "Tariq", model.RoleTeamLead, model.ShiftMorning),
		testEmployee(2, "Nadia", model.RoleSenior, model.ShiftNight),
		testEmployee(3, "Ehab", model.RoleSenior, model.ShiftEvening),
		testEmployee(4, "Eman", model.RoleJunior, model.ShiftEvening),
		testEmployee(5, "Omar", model.RoleJunior, model.ShiftMorning),
	}

	t.Run("generates and persists the week containing the selected date", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff

		// Mid-week date snaps back to the Saturday week start.
		selected := time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC)
		result, err := GenerateRoster(ctx, store, nil, logger, selected, time.Saturday, policy, "admin")
		require.NoError(t, err)

		assert.Equal(t, "2024-03-16", result.Week.ID)
		require.Contains(t, store.weeks, "2024-03-16")

		saturday := store.weeks["2024-03-16"].Days[0]
		assert.Equal(t, []string{"Nadia"}, saturday.Night)
		assert.Len(t, saturday.Evening, 2)
	})

	t.Run("writes one audit record per run", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff

		_, err := GenerateRoster(ctx, store, nil, logger, weekStart, time.Saturday, policy, "admin")
		require.NoError(t, err)

		require.Len(t, store.audits, 1)
		assert.Equal(t, model.AuditGenerateRoster, store.audits[0].Action)
		assert.Equal(t, "admin", store.audits[0].Actor)
		assert.Equal(t, "2024-03-16", store.audits[0].Date)
	})

	t.Run("reports coverage gaps instead of failing", func(t *testing.T) {
		store := newMockStore()
		// A single morning junior cannot cover night or evening seats.
		store.employees = []model.Employee{
			testEmployee(1, "Omar", model.RoleJunior, model.ShiftMorning),
		}

		result, err := GenerateRoster(ctx, store, nil, logger, weekStart, time.Saturday, policy, "admin")
		require.NoError(t, err)

		assert.NotEmpty(t, result.Gaps)
		assert.Contains(t, store.weeks, "2024-03-16")
	})

	t.Run("merges configured holiday rules into the stored holidays", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff
		eid := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
		expander := &mockExpander{holidays: []model.Holiday{{Date: eid, Label: "Eid"}}}

		result, err := GenerateRoster(ctx, store, expander, logger, weekStart, time.Saturday, policy, "admin")
		require.NoError(t, err)

		require.Len(t, result.Holidays, 1)
		assert.Equal(t, "Eid", result.Holidays[0].Label)

		// Exempt roles sit the holiday out.
		day := store.weeks["2024-03-16"].DayFor(eid)
		require.NotNil(t, day)
		assert.Contains(t, day.Off, "Tariq")
	})

	t.Run("prefers the stored holiday label over a configured duplicate", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff
		day := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
		store.holidays = []model.Holiday{{Date: day, Label: "Company Day"}}
		expander := &mockExpander{holidays: []model.Holiday{{Date: day, Label: "Eid"}}}

		result, err := GenerateRoster(ctx, store, expander, logger, weekStart, time.Saturday, policy, "admin")
		require.NoError(t, err)

		require.Len(t, result.Holidays, 1)
		assert.Equal(t, "Company Day", result.Holidays[0].Label)
	})

	t.Run("returns the store error when employees cannot be fetched", func(t *testing.T) {
		store := newMockStore()
		store.getEmployeesErr = errors.New("connection refused")

		_, err := GenerateRoster(ctx, store, nil, logger, weekStart, time.Saturday, policy, "admin")
		assert.ErrorContains(t, err, "failed to fetch employees")
	})

	t.Run("returns the expander error", func(t *testing.T) {
		store := newMockStore()
		store.employees = staff
		expander := &mockExpander{err: errors.New("bad rule")}

		_, err := GenerateRoster(ctx, store, expander, logger, weekStart, time.Saturday, policy, "admin")
		assert.ErrorContains(t, err, "failed to expand holiday rules")
	})

	t.Run("is deterministic for identical inputs", func(t *testing.T) {
		first := newMockStore()
		first.employees = staff
		second := newMockStore()
		second.employees = staff

		a, err := GenerateRoster(ctx, first, nil, logger, weekStart, time.Saturday, policy, "admin")
		require.NoError(t, err)
		b, err := GenerateRoster(ctx, second, nil, logger, weekStart, time.Saturday, policy, "admin")
		require.NoError(t, err)

		assert.Equal(t, a.Week, b.Week)
	})
}
