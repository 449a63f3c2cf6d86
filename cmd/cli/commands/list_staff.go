package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superplus-ops/forecourt-roster/pkg/core/services"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List the configured staff roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ListStaff(app.Cfg, app.Logger)
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			fmt.Printf("\nFound %d staff members:\n\n", len(result.Staff))

			headers := []string{"Name", "Role", "Target", "Constraints"}
			rows := make([][]string, 0, len(result.Staff))
			for _, member := range result.Staff {
				rows = append(rows, []string{
					member.Name,
					member.Role,
					fmt.Sprintf("%dh", member.TargetHours),
					member.Constraints,
				})
			}
			printTable(headers, rows)

			fmt.Printf("\nSupervisors: %d  Auxiliaries: %d  Overnight specialists: %d  Overnight eligible: %d\n\n",
				result.SupervisorCount,
				result.AuxiliaryCount,
				result.SpecialistCount,
				result.OvernightEligible)

			return nil
		},
	}
}
