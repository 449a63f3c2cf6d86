package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func anchorFixture(weekID string, weekStart, generatedAt time.Time, names ...string) []anchorRecord {
	records := make([]anchorRecord, 0, len(names))
	for _, name := range names {
		records = append(records, anchorRecord{
			weekID:      weekID,
			weekStart:   weekStart,
			generatedAt: generatedAt,
			staffName:   name,
		})
	}
	return records
}

func TestLatestAnchorCrew_PicksNewestWeek(t *testing.T) {
	older := time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	records := append(
		anchorFixture("week-old", older, older, "Sam", "Alex"),
		anchorFixture("week-new", newer, newer, "Dave", "Nick")...,
	)

	assert.Equal(t, []string{"Dave", "Nick"}, latestAnchorCrew(records))
}

func TestLatestAnchorCrew_SameWeekStartBreaksTieOnGeneratedAt(t *testing.T) {
	weekStart := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	firstRun := time.Date(2025, 8, 29, 10, 0, 0, 0, time.UTC)
	secondRun := time.Date(2025, 8, 29, 15, 30, 0, 0, time.UTC)

	// a force-committed regeneration stores a second rotation record for
	// the same week_start; only the newer crew may come back
	records := append(
		anchorFixture("week-first", weekStart, firstRun, "Sam", "Alex", "Dave"),
		anchorFixture("week-second", weekStart, secondRun, "Nick", "Omar")...,
	)

	assert.Equal(t, []string{"Nick", "Omar"}, latestAnchorCrew(records))
}

func TestLatestAnchorCrew_NoRecords(t *testing.T) {
	crew := latestAnchorCrew(nil)
	assert.NotNil(t, crew)
	assert.Empty(t, crew)
}
