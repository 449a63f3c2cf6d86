package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/superplus-ops/forecourt-roster/pkg/core/planner"
	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
	"github.com/superplus-ops/forecourt-roster/pkg/core/services"
)

// GenerateWeekCmd creates the generateWeek command
func GenerateWeekCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateWeek",
		Short: "Generate the next week's shift schedule",
		Long:  "Run the planner to build the next week's schedule from the configured roster, honoring the anchor-day rotation stored from the previous week",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			forceCommit, _ := cmd.Flags().GetBool("force-commit")

			app.Logger.Debug("generateWeek command",
				zap.Bool("dry_run", dryRun),
				zap.Bool("force_commit", forceCommit))

			result, err := services.GenerateWeek(
				app.Ctx,
				app.Database,
				app.Cfg,
				app.Logger,
				dryRun,
				forceCommit,
			)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}
			outcome := result.Outcome

			// Display header
			fmt.Printf("\n🗓  Week Generation Results\n\n")
			fmt.Printf("Week ID:    %s\n", result.WeekID)
			fmt.Printf("Week Start: %s\n", result.WeekStart.Format("2006-01-02"))
			if dryRun {
				fmt.Printf("Mode:       🧪 DRY RUN (not saved)\n")
			} else if outcome.Success {
				fmt.Printf("Status:     ✅ SUCCESS (saved to database)\n")
			} else if result.Saved {
				fmt.Printf("Status:     ⚠️  FORCED (saved despite validation errors)\n")
			} else {
				fmt.Printf("Status:     ❌ FAILED (not saved)\n")
			}
			fmt.Println()

			// Display validation errors if any
			if len(outcome.ValidationErrors) > 0 {
				fmt.Printf("⚠️  Validation Errors (%d):\n", len(outcome.ValidationErrors))
				for _, verr := range outcome.ValidationErrors {
					fmt.Printf("  • %s (%s) - %s: %s\n",
						verr.Staff,
						verr.Day.Short(),
						verr.Rule,
						verr.Description)
				}
				fmt.Println()
			}

			// Display shortfalls if any
			if len(outcome.Shortfalls) > 0 {
				fmt.Printf("%s⚡ Shortfalls (%d):%s\n", colorYellow, len(outcome.Shortfalls), colorReset)
				for _, shortfall := range outcome.Shortfalls {
					fmt.Printf("  • %s\n", formatShortfall(shortfall))
				}
				fmt.Println()
			}

			// Display the schedule grid
			fmt.Printf("📅 Schedule:\n\n")

			headers := []string{"Staff"}
			for _, day := range roster.AllDays() {
				headers = append(headers, day.Short())
			}
			headers = append(headers, "Hours")

			rows := make([][]string, 0)
			for _, name := range outcome.Schedule.StaffNames() {
				row := []string{name}
				for _, day := range roster.AllDays() {
					row = append(row, formatCellCompact(outcome.Schedule.Cell(name, day)))
				}
				row = append(row, fmt.Sprintf("%d", outcome.Hours[name]))
				rows = append(rows, row)
			}

			countRow := []string{"(day staff)"}
			for _, day := range roster.AllDays() {
				countRow = append(countRow, fmt.Sprintf("%d", outcome.DailyCounts[day]))
			}
			countRow = append(countRow, "")
			rows = append(rows, countRow)

			printTable(headers, rows)
			fmt.Println()

			// Display the rotation handover
			fmt.Printf("🔄 Next week's anchor rotation: %s\n\n",
				strings.Join(outcome.NewAnchorWorkers, ", "))

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without saving to database")
	cmd.Flags().Bool("force-commit", false, "Save even if validation fails")

	return cmd
}

// formatCellCompact renders one schedule cell as "6AM-9PM", or "-" when off
func formatCellCompact(cell planner.Cell) string {
	if cell.Off() {
		return "-"
	}
	return fmt.Sprintf("%s-%s", compactClock(cell.Start), compactClock(cell.End))
}

// compactClock renders a clock boundary without the minutes, e.g. "6AM"
func compactClock(c roster.Clock) string {
	return strings.ReplaceAll(c.String(), ":00 ", "")
}

// formatShortfall renders one shortfall for display
func formatShortfall(shortfall planner.Shortfall) string {
	switch shortfall.Kind {
	case planner.ShortfallStaffHours:
		return fmt.Sprintf("%s ended at %dh of %dh target", shortfall.Staff, shortfall.Got, shortfall.Wanted)
	case planner.ShortfallDayHeadcount:
		return fmt.Sprintf("%s has %d day staff of %d target", shortfall.Day.Short(), shortfall.Got, shortfall.Wanted)
	default:
		return fmt.Sprintf("%s: %s", shortfall.Day.Short(), shortfall.Detail)
	}
}
