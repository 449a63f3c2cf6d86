package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/superplus-ops/forecourt-roster/internal/config"
	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
)

// StaffSummary is one configured staff member with display-ready fields
type StaffSummary struct {
	Name        string
	Role        string
	TargetHours int
	Constraints string
}

// ListStaffResult contains the configured roster laid out for display
type ListStaffResult struct {
	Staff             []StaffSummary
	SupervisorCount   int
	AuxiliaryCount    int
	SpecialistCount   int
	OvernightEligible int
}

// ListStaff summarizes the configured roster in roster order
func ListStaff(cfg *config.Config, logger *zap.Logger) (*ListStaffResult, error) {
	logger.Debug("Starting listStaff")

	staff, err := cfg.BuildRoster()
	if err != nil {
		return nil, fmt.Errorf("failed to build roster: %w", err)
	}
	logger.Debug("Built roster", zap.Int("staff_count", len(staff)))

	result := &ListStaffResult{
		Staff:             make([]StaffSummary, 0, len(staff)),
		SupervisorCount:   len(roster.Supervisors(staff)),
		AuxiliaryCount:    len(roster.Auxiliaries(staff)),
		SpecialistCount:   len(roster.Specialists(staff)),
		OvernightEligible: len(roster.OvernightEligible(staff)),
	}

	for _, member := range staff {
		result.Staff = append(result.Staff, StaffSummary{
			Name:        member.Name,
			Role:        roleLabel(member),
			TargetHours: member.Target(),
			Constraints: describeConstraints(member),
		})
	}

	return result, nil
}

// describeConstraints renders a staff member's day constraints for display
func describeConstraints(member roster.StaffMember) string {
	parts := make([]string, 0, 2)
	if len(member.FixedDaysOff) > 0 {
		parts = append(parts, "off "+joinDays(member.FixedDaysOff))
	}
	if len(member.MustWorkDays) > 0 {
		parts = append(parts, "works "+joinDays(member.MustWorkDays))
	}
	return strings.Join(parts, ", ")
}

func joinDays(days []roster.Weekday) string {
	tokens := make([]string, len(days))
	for i, day := range days {
		tokens[i] = day.Short()
	}
	return strings.Join(tokens, "/")
}
