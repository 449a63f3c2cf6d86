package planner

import (
	"fmt"

	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
)

// Policy collects the scheduling constants and per-role shift patterns.
// Defaults match the reference operation; every value can be overridden from
// configuration so no roster-specific behavior is baked into phase logic.
type Policy struct {
	// AnchorDay is the weekday whose crew is rotated week to week
	AnchorDay roster.Weekday

	// AnchorAttendants is the auxiliary-plus-general crew size on the
	// anchor day (the supervisor and overnight slot are extra)
	AnchorAttendants int

	// HourCap is the hard weekly ceiling; assignments that would exceed it
	// are rejected outright
	HourCap int

	// MaxSupervisorsPerDay bounds supervisor stacking on a single day
	MaxSupervisorsPerDay int

	// ExtendLimit is the most hours one reconciliation step may add to an
	// existing shift
	ExtendLimit int

	// LongShiftThreshold is the remaining-hours point at which general
	// staff are filled with full-span shifts instead of openers
	LongShiftThreshold int

	// SpecialistNightSpacing is the day gap between the overnight
	// specialist's nights, counted from the anchor day
	SpecialistNightSpacing int

	// Named shift shapes each phase draws from. All must exist in the
	// catalog.
	FullSpanShift  string
	OpeningShift   string
	MidShift       string
	ClosingShift   string
	LongAMShift    string
	LongPMShift    string
	OvernightShift string
}

// DefaultPolicy returns the policy constants of the reference operation
func DefaultPolicy() Policy {
	return Policy{
		AnchorDay:              roster.Sunday,
		AnchorAttendants:       4,
		HourCap:                48,
		MaxSupervisorsPerDay:   3,
		ExtendLimit:            3,
		LongShiftThreshold:     30,
		SpecialistNightSpacing: 2,
		FullSpanShift:          "full_day",
		OpeningShift:           "morning",
		MidShift:               "midday",
		ClosingShift:           "afternoon",
		LongAMShift:            "extended_am",
		LongPMShift:            "extended_pm",
		OvernightShift:         "overnight",
	}
}

// Validate checks the policy against the catalog. Unknown shift names are
// configuration errors.
func (p Policy) Validate(catalog roster.Catalog) error {
	if p.AnchorDay < 0 || p.AnchorDay >= roster.DaysPerWeek {
		return fmt.Errorf("anchor day %d out of range", int(p.AnchorDay))
	}
	if p.HourCap <= 0 {
		return fmt.Errorf("hour cap must be positive, got %d", p.HourCap)
	}
	named := map[string]string{
		"fullSpanShift":  p.FullSpanShift,
		"openingShift":   p.OpeningShift,
		"midShift":       p.MidShift,
		"closingShift":   p.ClosingShift,
		"longAMShift":    p.LongAMShift,
		"longPMShift":    p.LongPMShift,
		"overnightShift": p.OvernightShift,
	}
	for field, name := range named {
		if name == "" {
			return fmt.Errorf("policy %s is not set", field)
		}
		if !catalog.Contains(name) {
			return fmt.Errorf("policy %s references unknown shift %q", field, name)
		}
	}
	if !catalog.MustGet(p.OvernightShift).Overnight() {
		return fmt.Errorf("policy overnightShift %q does not wrap past midnight", p.OvernightShift)
	}
	return nil
}
