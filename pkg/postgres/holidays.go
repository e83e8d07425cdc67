package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/saltsync/rosterd/pkg/core/model"
)

// GetHolidays retrieves all declared holidays.
func (d *DB) GetHolidays(ctx context.Context) ([]model.Holiday, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT day, label
		FROM holiday
		ORDER BY day
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []model.Holiday
	for rows.Next() {
		var h model.Holiday
		var day time.Time
		if err := rows.Scan(&day, &h.Label); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		h.Date = model.DateOnly(day)
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holidays: %w", err)
	}

	return holidays, nil
}

// InsertHoliday inserts a holiday, ignoring duplicates for the same
// calendar day.
func (d *DB) InsertHoliday(ctx context.Context, holiday *model.Holiday) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO holiday (day, label)
		VALUES ($1, $2)
		ON CONFLICT (day) DO NOTHING
	`, holiday.Date, holiday.Label)
	if err != nil {
		return fmt.Errorf("failed to insert holiday: %w", err)
	}
	return nil
}
