package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
)

func TestDefaultPolicy_ValidAgainstReferenceCatalog(t *testing.T) {
	assert.NoError(t, DefaultPolicy().Validate(newTestCatalog(t)))
}

func TestPolicyValidate_UnknownShift(t *testing.T) {
	policy := DefaultPolicy()
	policy.LongPMShift = "twilight"

	err := policy.Validate(newTestCatalog(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twilight")
}

func TestPolicyValidate_MissingShiftName(t *testing.T) {
	policy := DefaultPolicy()
	policy.MidShift = ""

	err := policy.Validate(newTestCatalog(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "midShift")
}

func TestPolicyValidate_OvernightMustWrap(t *testing.T) {
	policy := DefaultPolicy()
	policy.OvernightShift = "morning"

	err := policy.Validate(newTestCatalog(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrap")
}

func TestPolicyValidate_BadAnchorDay(t *testing.T) {
	policy := DefaultPolicy()
	policy.AnchorDay = roster.Weekday(9)

	err := policy.Validate(newTestCatalog(t))
	require.Error(t, err)
}
