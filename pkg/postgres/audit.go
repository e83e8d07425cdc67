package postgres

import (
	"context"
	"fmt"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// InsertAuditRecord appends one action to the audit trail.
func (d *DB) InsertAuditRecord(ctx context.Context, record *model.AuditRecord) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO audit_log (id, action, actor, employee_id, day, previous_value, new_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, record.ID, record.Action, record.Actor, record.EmployeeID, record.Date,
		record.Previous, record.New, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}
	return nil
}

// GetAuditRecords retrieves the most recent audit records, newest
// first. A limit of 0 or less retrieves everything.
func (d *DB) GetAuditRecords(ctx context.Context, limit int) ([]model.AuditRecord, error) {
	query := `
		SELECT id, action, actor, employee_id, day, previous_value, new_value, created_at
		FROM audit_log
		ORDER BY created_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit records: %w", err)
	}
	defer rows.Close()

	var records []model.AuditRecord
	for rows.Next() {
		var r model.AuditRecord
		if err := rows.Scan(&r.ID, &r.Action, &r.Actor, &r.EmployeeID, &r.Date,
			&r.Previous, &r.New, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit records: %w", err)
	}

	return records, nil
}
