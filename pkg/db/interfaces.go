package db

import "context"

// Database defines the storage operations the services need. The postgres
// package provides the production implementation.
type Database interface {
	// GetScheduleWeeks returns all stored weeks
	GetScheduleWeeks(ctx context.Context) ([]ScheduleWeek, error)

	// GetAssignments returns the assignment rows of one week
	GetAssignments(ctx context.Context, weekID string) ([]Assignment, error)

	// InsertScheduleWeek stores a week, its assignment rows and its anchor
	// rotation record in a single transaction, so the rotation state the
	// next run reads is never out of step with the stored schedule
	InsertScheduleWeek(ctx context.Context, week ScheduleWeek, assignments []Assignment, anchorWorkers []AnchorWorker) error

	// GetLatestAnchorWorkers returns the rotation record of the most
	// recently stored week; an empty slice when no week exists yet
	GetLatestAnchorWorkers(ctx context.Context) ([]string, error)
}
