package roster

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is an hour-of-day boundary (0-23). All catalog shifts start and end
// on the hour.
type Clock int

// ParseClock parses a clock time such as "6:00 AM" or "12:00 PM"
func ParseClock(s string) (Clock, error) {
	trimmed := strings.ToUpper(strings.ReplaceAll(s, " ", ""))

	var pm bool
	switch {
	case strings.HasSuffix(trimmed, "PM"):
		pm = true
		trimmed = strings.TrimSuffix(trimmed, "PM")
	case strings.HasSuffix(trimmed, "AM"):
		trimmed = strings.TrimSuffix(trimmed, "AM")
	default:
		return 0, fmt.Errorf("clock time %q missing AM/PM suffix", s)
	}

	hourPart, minutePart, hasMinutes := strings.Cut(trimmed, ":")
	if hasMinutes && minutePart != "00" {
		return 0, fmt.Errorf("clock time %q is not on the hour", s)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	if pm && hour != 12 {
		hour += 12
	}
	if !pm && hour == 12 {
		hour = 0
	}

	return Clock(hour), nil
}

func (c Clock) String() string {
	hour := int(c) % 24
	suffix := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:00 %s", display, suffix)
}

// HoursBetween computes the span between two clock boundaries. An end time
// numerically before the start wraps past midnight.
func HoursBetween(start, end Clock) int {
	if end < start {
		return (24 - int(start)) + int(end)
	}
	return int(end) - int(start)
}

// ShiftDefinition is a named shift shape from the catalog. Shared by
// reference across all assignments; never mutated after catalog construction.
type ShiftDefinition struct {
	Name  string
	Start Clock
	End   Clock
	Hours int
}

// Overnight reports whether the shift wraps past midnight
func (s ShiftDefinition) Overnight() bool {
	return s.End < s.Start
}

// Catalog is a read-only lookup of shift name to shift shape
type Catalog struct {
	shifts map[string]ShiftDefinition
	order  []string
}

// NewCatalog builds a catalog from shift definitions, computing each shift's
// duration from its boundaries. Duplicate names are configuration errors.
func NewCatalog(defs []ShiftDefinition) (Catalog, error) {
	c := Catalog{shifts: make(map[string]ShiftDefinition, len(defs))}
	for _, def := range defs {
		if def.Name == "" {
			return Catalog{}, fmt.Errorf("shift definition with empty name")
		}
		if _, exists := c.shifts[def.Name]; exists {
			return Catalog{}, fmt.Errorf("duplicate shift name %q", def.Name)
		}
		def.Hours = HoursBetween(def.Start, def.End)
		c.shifts[def.Name] = def
		c.order = append(c.order, def.Name)
	}
	return c, nil
}

// Get returns the shift with the given name
func (c Catalog) Get(name string) (ShiftDefinition, bool) {
	def, ok := c.shifts[name]
	return def, ok
}

// MustGet returns the shift with the given name. An unknown name is a
// programmer error, so it panics rather than returning an error.
func (c Catalog) MustGet(name string) ShiftDefinition {
	def, ok := c.shifts[name]
	if !ok {
		panic(fmt.Sprintf("unknown shift name %q", name))
	}
	return def
}

// Contains reports whether a shift with the given name exists
func (c Catalog) Contains(name string) bool {
	_, ok := c.shifts[name]
	return ok
}

// Shifts returns all shift definitions in catalog order
func (c Catalog) Shifts() []ShiftDefinition {
	defs := make([]ShiftDefinition, 0, len(c.order))
	for _, name := range c.order {
		defs = append(defs, c.shifts[name])
	}
	return defs
}

// EarlyOpen returns the first opening boundary of the operating day: the
// earliest start among non-overnight shifts.
func (c Catalog) EarlyOpen() Clock {
	first := true
	var open Clock
	for _, name := range c.order {
		def := c.shifts[name]
		if def.Overnight() {
			continue
		}
		if first || def.Start < open {
			open = def.Start
			first = false
		}
	}
	return open
}

// LateClose returns the last closing boundary of the operating day: the
// latest end among non-overnight shifts.
func (c Catalog) LateClose() Clock {
	first := true
	var close Clock
	for _, name := range c.order {
		def := c.shifts[name]
		if def.Overnight() {
			continue
		}
		if first || def.End > close {
			close = def.End
			first = false
		}
	}
	return close
}

// OvernightShift returns the catalog's overnight-shaped shift, if any
func (c Catalog) OvernightShift() (ShiftDefinition, bool) {
	for _, name := range c.order {
		if c.shifts[name].Overnight() {
			return c.shifts[name], true
		}
	}
	return ShiftDefinition{}, false
}
