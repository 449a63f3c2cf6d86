package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/superplus-ops/forecourt-roster/internal/config"
	"github.com/superplus-ops/forecourt-roster/pkg/core/planner"
	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
	"github.com/superplus-ops/forecourt-roster/pkg/db"
)

// GenerateWeekResult contains the generation results
type GenerateWeekResult struct {
	WeekID    string
	WeekStart time.Time
	Outcome   *planner.Outcome
	Roster    []roster.StaffMember
	Saved     bool
}

// GenerateWeekStore defines the database operations needed for generating a week
type GenerateWeekStore interface {
	GetLatestAnchorWorkers(ctx context.Context) ([]string, error)
	InsertScheduleWeek(ctx context.Context, week db.ScheduleWeek, assignments []db.Assignment, anchorWorkers []db.AnchorWorker) error
}

// GenerateWeek runs the planner to build the next week's schedule.
// If dryRun is true, the schedule is not saved to the database.
// If forceCommit is true, the schedule is saved even if validation fails.
func GenerateWeek(
	ctx context.Context,
	database GenerateWeekStore,
	cfg *config.Config,
	logger *zap.Logger,
	dryRun bool,
	forceCommit bool,
) (*GenerateWeekResult, error) {
	logger.Debug("Starting generateWeek",
		zap.Bool("dry_run", dryRun),
		zap.Bool("force_commit", forceCommit))

	// Step 1: Build planner inputs from configuration
	staff, err := cfg.BuildRoster()
	if err != nil {
		return nil, fmt.Errorf("failed to build roster: %w", err)
	}
	logger.Debug("Built roster", zap.Int("staff_count", len(staff)))

	catalog, err := cfg.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to build shift catalog: %w", err)
	}
	logger.Debug("Built shift catalog", zap.Int("shift_count", len(catalog.Shifts())))

	dailyTargets, err := cfg.BuildDailyTargets()
	if err != nil {
		return nil, fmt.Errorf("failed to build daily targets: %w", err)
	}

	policy, err := cfg.BuildPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to build policy: %w", err)
	}

	// Step 2: Resolve the start date of the week being generated
	weekStart, err := nextAnchorDate(cfg.AnchorRule, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve week start: %w", err)
	}
	logger.Debug("Resolved week start", zap.String("week_start", weekStart.Format("2006-01-02")))

	// Step 3: DB query - Fetch the previous week's anchor rotation record
	logger.Debug("Fetching previous anchor workers")
	previousAnchorWorkers, err := database.GetLatestAnchorWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous anchor workers: %w", err)
	}
	logger.Debug("Found previous anchor workers",
		zap.Int("count", len(previousAnchorWorkers)),
		zap.Strings("staff", previousAnchorWorkers))

	// Step 4: Run the planning algorithm
	logger.Info("Running planner")
	outcome, err := planner.Generate(planner.Input{
		Roster:                staff,
		Catalog:               catalog,
		DailyTargets:          dailyTargets,
		PreviousAnchorWorkers: previousAnchorWorkers,
		Policy:                policy,
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	logger.Info("Generation completed",
		zap.Bool("success", outcome.Success),
		zap.Int("shortfalls", len(outcome.Shortfalls)),
		zap.Int("validation_errors", len(outcome.ValidationErrors)))

	// Log shortfalls and validation errors
	for _, shortfall := range outcome.Shortfalls {
		logger.Warn("Shortfall",
			zap.String("kind", string(shortfall.Kind)),
			zap.String("staff", shortfall.Staff),
			zap.String("day", shortfall.Day.String()),
			zap.Int("wanted", shortfall.Wanted),
			zap.Int("got", shortfall.Got),
			zap.String("detail", shortfall.Detail))
	}
	for _, verr := range outcome.ValidationErrors {
		logger.Warn("Validation error",
			zap.String("staff", verr.Staff),
			zap.String("day", verr.Day.String()),
			zap.String("rule", verr.Rule),
			zap.String("description", verr.Description))
	}

	result := &GenerateWeekResult{
		WeekID:    uuid.New().String(),
		WeekStart: weekStart,
		Outcome:   outcome,
		Roster:    staff,
	}

	// Determine if we should save the schedule to the database
	shouldSave := !dryRun && (outcome.Success || forceCommit)

	if shouldSave {
		logger.Info("Saving schedule to database",
			zap.Bool("success", outcome.Success),
			zap.Bool("forced", forceCommit && !outcome.Success))

		week := db.ScheduleWeek{
			ID:          result.WeekID,
			WeekStart:   weekStart.Format("2006-01-02"),
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Success:     outcome.Success,
		}
		assignments := convertToDBAssignments(result.WeekID, weekStart, policy.AnchorDay, staff, outcome)
		anchorWorkers := convertToDBAnchorWorkers(result.WeekID, week.WeekStart, outcome.NewAnchorWorkers)

		if err := database.InsertScheduleWeek(ctx, week, assignments, anchorWorkers); err != nil {
			return nil, fmt.Errorf("failed to save schedule: %w", err)
		}
		result.Saved = true
		logger.Info("Schedule saved",
			zap.String("week_id", result.WeekID),
			zap.Int("assignment_count", len(assignments)))
	} else if dryRun {
		logger.Info("Dry run - schedule not saved")
	} else {
		logger.Warn("Validation failed - schedule not saved (use force-commit to override)")
	}

	return result, nil
}

// convertToDBAssignments flattens the generated schedule grid into assignment
// rows, one per non-OFF cell
func convertToDBAssignments(
	weekID string,
	weekStart time.Time,
	anchorDay roster.Weekday,
	staff []roster.StaffMember,
	outcome *planner.Outcome,
) []db.Assignment {
	rolesByName := make(map[string]string, len(staff))
	for _, member := range staff {
		rolesByName[member.Name] = roleLabel(member)
	}

	assignments := make([]db.Assignment, 0)
	for _, name := range outcome.Schedule.StaffNames() {
		for _, day := range roster.AllDays() {
			cell := outcome.Schedule.Cell(name, day)
			if cell.Off() {
				continue
			}

			// The week runs anchor day to anchor day, so each cell's
			// date is its day's offset from the anchor
			offset := (int(day) - int(anchorDay) + roster.DaysPerWeek) % roster.DaysPerWeek
			date := weekStart.AddDate(0, 0, offset)

			assignments = append(assignments, db.Assignment{
				ID:         uuid.New().String(),
				WeekID:     weekID,
				Day:        day.String(),
				Date:       date.Format("2006-01-02"),
				StaffName:  name,
				ShiftName:  cell.ShiftName,
				ShiftStart: cell.Start.String(),
				ShiftEnd:   cell.End.String(),
				Hours:      cell.Hours,
				Overnight:  cell.Overnight(),
				Role:       rolesByName[name],
			})
		}
	}
	return assignments
}

// convertToDBAnchorWorkers builds the rotation record rows for the generated week
func convertToDBAnchorWorkers(weekID, weekStart string, names []string) []db.AnchorWorker {
	workers := make([]db.AnchorWorker, len(names))
	for i, name := range names {
		workers[i] = db.AnchorWorker{
			WeekID:    weekID,
			WeekStart: weekStart,
			StaffName: name,
		}
	}
	return workers
}

// roleLabel maps a staff member to the role label stored with their assignments
func roleLabel(member roster.StaffMember) string {
	switch {
	case member.Supervisor:
		return db.RoleSupervisor
	case member.Auxiliary:
		return db.RoleAuxiliary
	case member.OvernightSpecialist:
		return db.RoleOvernight
	default:
		return db.RoleRegular
	}
}
