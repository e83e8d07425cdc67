package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/saltsync/rosterd/pkg/core/model"
	"github.com/saltsync/rosterd/pkg/db"
)

// GetWeekSchedule retrieves the week starting on the given date
// (YYYY-MM-DD). Returns db.ErrNotFound if no roster exists for it.
func (d *DB) GetWeekSchedule(ctx context.Context, weekStart string) (*model.WeekSchedule, error) {
	start, err := time.ParseInLocation(model.DateFormat, weekStart, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid week start %q: %w", weekStart, err)
	}
	return d.readWeek(ctx, start)
}

// GetLatestWeekSchedule retrieves the week with the most recent start
// date. Returns db.ErrNotFound if no roster has been generated yet.
func (d *DB) GetLatestWeekSchedule(ctx context.Context) (*model.WeekSchedule, error) {
	// MAX over an empty table yields NULL, not a missing row.
	var start *time.Time
	err := d.pool.QueryRow(ctx, `SELECT MAX(week_start) FROM roster_day`).Scan(&start)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest week start: %w", err)
	}
	if start == nil {
		return nil, db.ErrNotFound
	}
	return d.readWeek(ctx, *start)
}

func (d *DB) readWeek(ctx context.Context, start time.Time) (*model.WeekSchedule, error) {
	start = model.DateOnly(start)

	rows, err := d.pool.Query(ctx, `
		SELECT day, morning, evening, night, off_list
		FROM roster_day
		WHERE week_start = $1
		ORDER BY day
	`, start)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster days: %w", err)
	}
	defer rows.Close()

	week := &model.WeekSchedule{
		ID:        start.Format(model.DateFormat),
		WeekStart: start,
	}

	count := 0
	for rows.Next() {
		var day time.Time
		var morning, evening, night, off []string
		if err := rows.Scan(&day, &morning, &evening, &night, &off); err != nil {
			return nil, fmt.Errorf("failed to scan roster day: %w", err)
		}
		if count >= len(week.Days) {
			return nil, fmt.Errorf("week %s has more than 7 days stored", week.ID)
		}
		week.Days[count] = model.DaySchedule{
			Date:    model.DateOnly(day),
			Morning: morning,
			Evening: evening,
			Night:   night,
			Off:     off,
		}
		count++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster days: %w", err)
	}

	if count == 0 {
		return nil, db.ErrNotFound
	}
	if count != len(week.Days) {
		return nil, fmt.Errorf("week %s has %d days stored, want 7", week.ID, count)
	}

	return week, nil
}

// UpsertWeekSchedule writes all seven days of the week in one
// transaction, replacing any previously stored version of the same
// week.
func (d *DB) UpsertWeekSchedule(ctx context.Context, week *model.WeekSchedule) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, day := range week.Days {
		_, err := tx.Exec(ctx, `
			INSERT INTO roster_day (week_start, day, morning, evening, night, off_list)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (week_start, day) DO UPDATE
			SET morning = EXCLUDED.morning,
			    evening = EXCLUDED.evening,
			    night = EXCLUDED.night,
			    off_list = EXCLUDED.off_list
		`, week.WeekStart, day.Date, day.Morning, day.Evening, day.Night, day.Off)
		if err != nil {
			return fmt.Errorf("failed to upsert roster day %s: %w", day.Date.Format(model.DateFormat), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit week schedule: %w", err)
	}
	return nil
}
