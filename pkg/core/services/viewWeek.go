package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
	"github.com/superplus-ops/forecourt-roster/pkg/db"
)

// StaffWeekRow is one staff member's row in a rendered week: one cell per
// day column, nil when the member is off
type StaffWeekRow struct {
	StaffName string
	Role      string
	Cells     [roster.DaysPerWeek]*db.Assignment
	Hours     int
}

// ViewWeekResult contains a stored week laid out for display
type ViewWeekResult struct {
	Week db.ScheduleWeek

	// Days holds the column headers in week order, starting at the
	// week's first day
	Days [roster.DaysPerWeek]string

	// Dates holds the calendar date of each column
	Dates [roster.DaysPerWeek]string

	// Rows holds one row per staff member with assignments, sorted by name
	Rows []StaffWeekRow

	// DayCounts holds each column's day-staff headcount (overnight excluded)
	DayCounts [roster.DaysPerWeek]int

	// NightCounts holds each column's overnight headcount
	NightCounts [roster.DaysPerWeek]int
}

// ViewWeekStore defines the database operations needed for viewing a week
type ViewWeekStore interface {
	GetScheduleWeeks(ctx context.Context) ([]db.ScheduleWeek, error)
	GetAssignments(ctx context.Context, weekID string) ([]db.Assignment, error)
}

// ViewWeek fetches a stored week and lays it out as a staff-by-day grid.
// An empty weekStart selects the most recently stored week.
func ViewWeek(
	ctx context.Context,
	database ViewWeekStore,
	logger *zap.Logger,
	weekStart string,
) (*ViewWeekResult, error) {
	logger.Debug("Starting viewWeek", zap.String("week_start", weekStart))

	// Step 1: DB query - Fetch stored weeks
	weeks, err := database.GetScheduleWeeks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule weeks: %w", err)
	}
	logger.Debug("Found schedule weeks", zap.Int("count", len(weeks)))

	if len(weeks) == 0 {
		return nil, fmt.Errorf("no schedule weeks found - please run generateWeek first")
	}

	// Step 2: Resolve the target week
	var target *db.ScheduleWeek
	if weekStart == "" {
		target = findLatestWeek(weeks)
	} else {
		for i := range weeks {
			if weeks[i].WeekStart == weekStart {
				target = &weeks[i]
				break
			}
		}
		if target == nil {
			return nil, fmt.Errorf("no schedule week found starting %s", weekStart)
		}
	}
	logger.Debug("Using week",
		zap.String("id", target.ID),
		zap.String("week_start", target.WeekStart))

	// Step 3: DB query - Fetch the week's assignments
	assignments, err := database.GetAssignments(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	logger.Debug("Found assignments", zap.Int("count", len(assignments)))

	startDate, err := time.Parse("2006-01-02", target.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("invalid stored week start %q: %w", target.WeekStart, err)
	}

	result := &ViewWeekResult{Week: *target}
	for i := 0; i < roster.DaysPerWeek; i++ {
		date := startDate.AddDate(0, 0, i)
		result.Days[i] = roster.Weekday(int(date.Weekday())).Short()
		result.Dates[i] = date.Format("2006-01-02")
	}

	// Step 4: Group assignments into per-staff rows
	dateColumns := make(map[string]int, roster.DaysPerWeek)
	for i, date := range result.Dates {
		dateColumns[date] = i
	}

	rowsByStaff := make(map[string]*StaffWeekRow)
	for i := range assignments {
		assignment := &assignments[i]
		column, ok := dateColumns[assignment.Date]
		if !ok {
			logger.Warn("Assignment date outside week",
				zap.String("staff", assignment.StaffName),
				zap.String("date", assignment.Date))
			continue
		}

		row, ok := rowsByStaff[assignment.StaffName]
		if !ok {
			row = &StaffWeekRow{StaffName: assignment.StaffName, Role: assignment.Role}
			rowsByStaff[assignment.StaffName] = row
		}
		row.Cells[column] = assignment
		row.Hours += assignment.Hours

		if assignment.Overnight {
			result.NightCounts[column]++
		} else {
			result.DayCounts[column]++
		}
	}

	names := make([]string, 0, len(rowsByStaff))
	for name := range rowsByStaff {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		result.Rows = append(result.Rows, *rowsByStaff[name])
	}

	return result, nil
}
