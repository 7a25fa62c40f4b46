package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matricula/tuition-engine/factory"
	"github.com/matricula/tuition-engine/tuition"
)

const validCatalog = `{
  "plans": [
    {
      "id": "Podología",
      "fee_cadence": "Semanalidad",
      "fee_count": 27,
      "prices": {"enrollment": 900, "re_enrollment": 0, "fee": 250}
    },
    {
      "id": "Licenciatura por Nivelación",
      "fee_cadence": "Mensualidad",
      "fee_count": 12,
      "re_enrollment_indices": [4, 8],
      "prices": {"enrollment": 2200, "re_enrollment": 2200, "fee": 2200}
    }
  ]
}`

func TestParseCatalog_Valid(t *testing.T) {
	catalog, err := factory.ParseCatalog([]byte(validCatalog))
	require.NoError(t, err)

	cfg, err := catalog.Get("Licenciatura por Nivelación")
	require.NoError(t, err)
	assert.Equal(t, tuition.CadenceMonthly, cfg.FeeCadence)
	assert.Equal(t, 12, cfg.FeeCount)
	assert.Equal(t, []int{4, 8}, cfg.ReEnrollmentIndices)
	assert.True(t, cfg.Prices.Fee.Equal(tuition.MoneyFromInt(2200)))

	weekly, err := catalog.Get("Podología")
	require.NoError(t, err)
	assert.Equal(t, tuition.CadenceWeekly, weekly.FeeCadence)
	assert.True(t, weekly.Prices.ReEnrollment.IsZero())
}

func TestParseCatalog_RejectsIndexOutsideSchedule(t *testing.T) {
	// re_enrollment index 12 on a 12-item plan violates [0, fee_count)

	bad := `{"plans": [{
		"id": "x", "fee_cadence": "Mensualidad", "fee_count": 12,
		"re_enrollment_indices": [12],
		"prices": {"enrollment": 100, "re_enrollment": 100, "fee": 100}
	}]}`

	_, err := factory.ParseCatalog([]byte(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "re-enrollment index 12")
}

func TestParseCatalog_RejectsUnknownCadence(t *testing.T) {
	bad := `{"plans": [{
		"id": "x", "fee_cadence": "Quincenal", "fee_count": 10,
		"prices": {"enrollment": 100, "re_enrollment": 0, "fee": 100}
	}]}`

	_, err := factory.ParseCatalog([]byte(bad))
	assert.Error(t, err)
}

func TestParseCatalog_RejectsDuplicateIDs(t *testing.T) {
	bad := `{"plans": [
		{"id": "x", "fee_cadence": "Mensualidad", "fee_count": 1, "prices": {"enrollment": 1, "re_enrollment": 0, "fee": 1}},
		{"id": "x", "fee_cadence": "Mensualidad", "fee_count": 1, "prices": {"enrollment": 1, "re_enrollment": 0, "fee": 1}}
	]}`

	_, err := factory.ParseCatalog([]byte(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate plan id")
}

func TestParseCatalog_RejectsEmptyCatalog(t *testing.T) {
	_, err := factory.ParseCatalog([]byte(`{"plans": []}`))
	assert.Error(t, err)
}
