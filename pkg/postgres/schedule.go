package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/superplus-ops/forecourt-roster/pkg/db"
)

// GetScheduleWeeks retrieves all stored schedule weeks
func (d *DB) GetScheduleWeeks(ctx context.Context) ([]db.ScheduleWeek, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, week_start, generated_at, success
		FROM schedule_week
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule weeks: %w", err)
	}
	defer rows.Close()

	var weeks []db.ScheduleWeek
	for rows.Next() {
		var w db.ScheduleWeek
		var weekStart time.Time
		var generatedAt time.Time
		if err := rows.Scan(&w.ID, &weekStart, &generatedAt, &w.Success); err != nil {
			return nil, fmt.Errorf("failed to scan schedule week: %w", err)
		}
		w.WeekStart = weekStart.Format("2006-01-02")
		w.GeneratedAt = generatedAt.UTC().Format(time.RFC3339)
		weeks = append(weeks, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule weeks: %w", err)
	}

	return weeks, nil
}

// GetAssignments retrieves the assignment rows of one week
func (d *DB) GetAssignments(ctx context.Context, weekID string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, week_id, day, date, staff_name, shift_name,
		       shift_start, shift_end, hours, overnight, role
		FROM assignment
		WHERE week_id = $1
		ORDER BY date, staff_name
	`, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		var date time.Time
		if err := rows.Scan(&a.ID, &a.WeekID, &a.Day, &date, &a.StaffName, &a.ShiftName,
			&a.ShiftStart, &a.ShiftEnd, &a.Hours, &a.Overnight, &a.Role); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.Date = date.Format("2006-01-02")
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// InsertScheduleWeek stores a week, its assignments and its anchor rotation
// record in one transaction
func (d *DB) InsertScheduleWeek(ctx context.Context, week db.ScheduleWeek, assignments []db.Assignment, anchorWorkers []db.AnchorWorker) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO schedule_week (id, week_start, generated_at, success)
		VALUES ($1, $2, NOW(), $3)
	`, week.ID, week.WeekStart, week.Success)
	if err != nil {
		return fmt.Errorf("failed to insert schedule week: %w", err)
	}

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignment (id, week_id, day, date, staff_name, shift_name,
			                        shift_start, shift_end, hours, overnight, role)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, a.ID, a.WeekID, a.Day, a.Date, a.StaffName, a.ShiftName,
			a.ShiftStart, a.ShiftEnd, a.Hours, a.Overnight, a.Role)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	for _, w := range anchorWorkers {
		_, err := tx.Exec(ctx, `
			INSERT INTO anchor_worker (week_id, week_start, staff_name)
			VALUES ($1, $2, $3)
		`, w.WeekID, w.WeekStart, w.StaffName)
		if err != nil {
			return fmt.Errorf("failed to insert anchor worker: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type anchorRecord struct {
	weekID      string
	weekStart   time.Time
	generatedAt time.Time
	staffName   string
}

// GetLatestAnchorWorkers returns the rotation record of the most recently
// stored week
func (d *DB) GetLatestAnchorWorkers(ctx context.Context) ([]string, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT w.id, w.week_start, w.generated_at, a.staff_name
		FROM anchor_worker a
		JOIN schedule_week w ON w.id = a.week_id
		ORDER BY a.staff_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query anchor workers: %w", err)
	}
	defer rows.Close()

	var records []anchorRecord
	for rows.Next() {
		var r anchorRecord
		if err := rows.Scan(&r.weekID, &r.weekStart, &r.generatedAt, &r.staffName); err != nil {
			return nil, fmt.Errorf("failed to scan anchor worker: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating anchor workers: %w", err)
	}

	return latestAnchorCrew(records), nil
}

// latestAnchorCrew keeps the crew of the single most recently stored week.
// Regenerating the same week leaves two rotation records with the same
// week_start, so the week's generated_at breaks the tie.
func latestAnchorCrew(records []anchorRecord) []string {
	var bestID string
	var bestStart, bestGenerated time.Time
	for _, r := range records {
		if bestID == "" || r.weekStart.After(bestStart) ||
			(r.weekStart.Equal(bestStart) && r.generatedAt.After(bestGenerated)) {
			bestID = r.weekID
			bestStart = r.weekStart
			bestGenerated = r.generatedAt
		}
	}

	crew := make([]string, 0)
	for _, r := range records {
		if r.weekID == bestID {
			crew = append(crew, r.staffName)
		}
	}
	return crew
}
