/*
Package factory provides JSON to Catalog conversion.

PURPOSE:
  Converts a JSON catalog definition into a tuition.Catalog. This lets the
  school adjust plans and prices without a code change - the server takes a
  -catalog flag pointing at a JSON file and falls back to the built-in
  catalog otherwise.

JSON SCHEMA:
  {
    "plans": [
      {
        "id": "Podología",
        "fee_cadence": "Semanalidad",
        "fee_count": 27,
        "re_enrollment_indices": [],
        "prices": {"enrollment": 900, "re_enrollment": 0, "fee": 250}
      }
    ]
  }

VALIDATION:
  Every plan is validated on parse: known cadence, re-enrollment indices
  inside [0, fee_count), non-negative prices, no duplicate ids. A catalog
  that fails validation is rejected wholesale.
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/matricula/tuition-engine/tuition"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

type CatalogJSON struct {
	Plans []PlanJSON `json:"plans"`
}

type PlanJSON struct {
	ID                  string     `json:"id"`
	FeeCadence          string     `json:"fee_cadence"`
	FeeCount            int        `json:"fee_count"`
	ReEnrollmentIndices []int      `json:"re_enrollment_indices,omitempty"`
	Prices              PricesJSON `json:"prices"`
}

type PricesJSON struct {
	Enrollment   json.Number `json:"enrollment"`
	ReEnrollment json.Number `json:"re_enrollment"`
	Fee          json.Number `json:"fee"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseCatalog builds a validated Catalog from a JSON document.
func ParseCatalog(data []byte) (*tuition.Catalog, error) {
	var raw CatalogJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}
	if len(raw.Plans) == 0 {
		return nil, fmt.Errorf("catalog defines no plans")
	}

	plans := make(map[tuition.PlanID]tuition.StudyPlanConfig, len(raw.Plans))
	for _, p := range raw.Plans {
		if p.ID == "" {
			return nil, fmt.Errorf("plan with empty id")
		}
		id := tuition.PlanID(p.ID)
		if _, exists := plans[id]; exists {
			return nil, fmt.Errorf("duplicate plan id %q", p.ID)
		}

		cfg, err := toConfig(p)
		if err != nil {
			return nil, fmt.Errorf("plan %q: %w", p.ID, err)
		}
		plans[id] = cfg
	}
	return tuition.NewCatalog(plans), nil
}

func toConfig(p PlanJSON) (tuition.StudyPlanConfig, error) {
	enrollment, err := parsePrice(p.Prices.Enrollment, "enrollment")
	if err != nil {
		return tuition.StudyPlanConfig{}, err
	}
	reEnrollment, err := parsePrice(p.Prices.ReEnrollment, "re_enrollment")
	if err != nil {
		return tuition.StudyPlanConfig{}, err
	}
	fee, err := parsePrice(p.Prices.Fee, "fee")
	if err != nil {
		return tuition.StudyPlanConfig{}, err
	}

	cfg := tuition.StudyPlanConfig{
		FeeCadence:          tuition.Cadence(p.FeeCadence),
		FeeCount:            p.FeeCount,
		ReEnrollmentIndices: p.ReEnrollmentIndices,
		Prices: tuition.Prices{
			Enrollment:   enrollment,
			ReEnrollment: reEnrollment,
			Fee:          fee,
		},
	}
	if err := cfg.Validate(); err != nil {
		return tuition.StudyPlanConfig{}, err
	}
	return cfg, nil
}

func parsePrice(n json.Number, field string) (tuition.Money, error) {
	if n == "" {
		return tuition.Money{}, nil
	}
	m, err := tuition.ParseMoney(n.String())
	if err != nil {
		return tuition.Money{}, fmt.Errorf("price %s: %w", field, err)
	}
	return m, nil
}
