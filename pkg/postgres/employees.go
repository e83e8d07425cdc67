package postgres

import (
	"context"
	"fmt"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// GetEmployees retrieves every employee, active or not, in creation
// order.
func (d *DB) GetEmployees(ctx context.Context) ([]model.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, role, active, rest_day_off, holiday_off,
		       base_shift, rotation_phase, night_count, shift_count, created_at
		FROM employee
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		var e model.Employee
		var role, shift string
		if err := rows.Scan(&e.ID, &e.Name, &role, &e.Active, &e.RestDayOff, &e.HolidayOff,
			&shift, &e.RotationPhase, &e.NightCount, &e.ShiftCount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		e.Role = model.Role(role)
		e.BaseShift = model.Shift(shift)
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// InsertEmployee inserts a new employee record.
func (d *DB) InsertEmployee(ctx context.Context, employee *model.Employee) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO employee (id, name, role, active, rest_day_off, holiday_off,
		                      base_shift, rotation_phase, night_count, shift_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, employee.ID, employee.Name, string(employee.Role), employee.Active,
		employee.RestDayOff, employee.HolidayOff, string(employee.BaseShift),
		employee.RotationPhase, employee.NightCount, employee.ShiftCount, employee.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// UpdateEmployeeRotation persists base shift, rotation phase and the
// lifetime counters for each given employee. Runs in one transaction so
// a weekly advance is applied to the whole roster or not at all.
func (d *DB) UpdateEmployeeRotation(ctx context.Context, employees []model.Employee) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range employees {
		_, err := tx.Exec(ctx, `
			UPDATE employee
			SET base_shift = $2, rotation_phase = $3, night_count = $4, shift_count = $5
			WHERE id = $1
		`, e.ID, string(e.BaseShift), e.RotationPhase, e.NightCount, e.ShiftCount)
		if err != nil {
			return fmt.Errorf("failed to update employee %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit employee updates: %w", err)
	}
	return nil
}
