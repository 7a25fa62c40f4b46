package tuition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matricula/tuition-engine/tuition"
)

func TestDefaultCatalog_AllPlansValid(t *testing.T) {
	// Every built-in config must satisfy the invariants: known cadence,
	// re-enrollment indices within [0, FeeCount), non-negative prices.

	catalog := tuition.DefaultCatalog()
	plans := catalog.Plans()
	require.Len(t, plans, 7)

	for _, planID := range plans {
		cfg := catalog.MustGet(planID)
		assert.NoError(t, cfg.Validate(), "plan %s", planID)
	}
}

func TestCatalog_UnknownPlan(t *testing.T) {
	catalog := tuition.DefaultCatalog()

	_, err := catalog.Get("Plan Fantasma")
	assert.ErrorIs(t, err, tuition.ErrUnknownPlan)
	assert.False(t, catalog.Has("Plan Fantasma"))

	assert.Panics(t, func() { catalog.MustGet("Plan Fantasma") })
}

func TestStudyPlanConfig_Validate_RejectsBadIndices(t *testing.T) {
	cfg := tuition.StudyPlanConfig{
		FeeCadence:          tuition.CadenceMonthly,
		FeeCount:            12,
		ReEnrollmentIndices: []int{12},
	}
	assert.Error(t, cfg.Validate())

	cfg.ReEnrollmentIndices = []int{-1}
	assert.Error(t, cfg.Validate())

	cfg.ReEnrollmentIndices = []int{0, 11}
	assert.NoError(t, cfg.Validate())
}

func TestCadence_FeeCategory(t *testing.T) {
	assert.Equal(t, tuition.CategoryMonthlyFee, tuition.CadenceMonthly.FeeCategory())
	assert.Equal(t, tuition.CategoryWeeklyFee, tuition.CadenceWeekly.FeeCategory())
}
