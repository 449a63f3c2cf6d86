package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
	"github.com/superplus-ops/forecourt-roster/pkg/core/services"
	"github.com/superplus-ops/forecourt-roster/pkg/db"
)

// ViewWeekCmd creates the viewWeek command
func ViewWeekCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewWeek [week_start]",
		Short: "View a stored week's schedule (latest week by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := ""
			if len(args) > 0 {
				weekStart = args[0]
			}

			app.Logger.Debug("viewWeek command", zap.String("week_start", weekStart))

			result, err := services.ViewWeek(app.Ctx, app.Database, app.Logger, weekStart)
			if err != nil {
				return err
			}

			// Display header
			fmt.Printf("\n📅 Week of %s\n\n", result.Week.WeekStart)
			if result.Week.Success {
				fmt.Printf("Status: %s✓ passed validation%s\n\n", colorGreen, colorReset)
			} else {
				fmt.Printf("Status: %s⚠ stored with validation errors%s\n\n", colorYellow, colorReset)
			}

			// Display the schedule grid
			headers := []string{"Staff", "Role"}
			for i := 0; i < roster.DaysPerWeek; i++ {
				headers = append(headers, result.Days[i])
			}
			headers = append(headers, "Hours")

			rows := make([][]string, 0, len(result.Rows)+1)
			for _, staffRow := range result.Rows {
				row := []string{staffRow.StaffName, staffRow.Role}
				for _, cell := range staffRow.Cells {
					row = append(row, formatAssignmentCompact(cell))
				}
				row = append(row, fmt.Sprintf("%d", staffRow.Hours))
				rows = append(rows, row)
			}

			countRow := []string{"(day staff)", ""}
			for i := 0; i < roster.DaysPerWeek; i++ {
				countRow = append(countRow, fmt.Sprintf("%d", result.DayCounts[i]))
			}
			countRow = append(countRow, "")
			rows = append(rows, countRow)

			printTable(headers, rows)
			fmt.Println()

			return nil
		},
	}
}

// formatAssignmentCompact renders one stored assignment as "6AM-2PM", or "-"
// for an off day
func formatAssignmentCompact(assignment *db.Assignment) string {
	if assignment == nil {
		return "-"
	}
	start, errStart := roster.ParseClock(assignment.ShiftStart)
	end, errEnd := roster.ParseClock(assignment.ShiftEnd)
	if errStart != nil || errEnd != nil {
		return fmt.Sprintf("%s-%s", assignment.ShiftStart, assignment.ShiftEnd)
	}
	return fmt.Sprintf("%s-%s", compactClock(start), compactClock(end))
}
