package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// GetLeaves retrieves all leave records.
func (d *DB) GetLeaves(ctx context.Context) ([]model.Leave, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, employee_id, start_date, end_date, kind
		FROM leave_record
		ORDER BY start_date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	var leaves []model.Leave
	for rows.Next() {
		var l model.Leave
		var kind string
		var start, end time.Time
		if err := rows.Scan(&l.ID, &l.EmployeeID, &start, &end, &kind); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		l.StartDate = model.DateOnly(start)
		l.EndDate = model.DateOnly(end)
		l.Kind = model.LeaveKind(kind)
		leaves = append(leaves, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leaves: %w", err)
	}

	return leaves, nil
}

// InsertLeave inserts a new leave record.
func (d *DB) InsertLeave(ctx context.Context, leave *model.Leave) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO leave_record (id, employee_id, start_date, end_date, kind)
		VALUES ($1, $2, $3, $4, $5)
	`, leave.ID, leave.EmployeeID, leave.StartDate, leave.EndDate, string(leave.Kind))
	if err != nil {
		return fmt.Errorf("failed to insert leave: %w", err)
	}
	return nil
}
