package tuition

import "fmt"

// =============================================================================
// CADENCE - Closed billing-frequency variant
// =============================================================================

// Cadence is the billing frequency of a plan's recurring fee. It is a closed
// variant: FeeCategory maps it to the payment category explicitly instead of
// leaning on string comparison.
type Cadence string

const (
	CadenceMonthly Cadence = "Mensualidad"
	CadenceWeekly  Cadence = "Semanalidad"
)

// FeeCategory returns the payment category a plain (non re-enrollment)
// schedule item settles into.
func (c Cadence) FeeCategory() Category {
	switch c {
	case CadenceWeekly:
		return CategoryWeeklyFee
	default:
		return CategoryMonthlyFee
	}
}

// Valid reports whether c is one of the two known cadences.
func (c Cadence) Valid() bool {
	return c == CadenceMonthly || c == CadenceWeekly
}

// =============================================================================
// STUDY PLAN CONFIG
// =============================================================================

// PlanID identifies a study plan. The values are the persisted plan names of
// the source data set, so documents written by earlier versions of the
// application load unchanged.
type PlanID string

const (
	PlanLevelingDegree   PlanID = "Licenciatura por Nivelación"
	PlanGeneralNursing   PlanID = "Enfermería General"
	PlanPodiatry         PlanID = "Podología"
	PlanPrehospitalCare  PlanID = "Atención Médica Prehospitalaria"
	PlanNursingAssistant PlanID = "Auxiliar de Enfermería"
	PlanSurgicalNursing  PlanID = "Enfermería Quirúrgica"
	PlanIndustrialNursing PlanID = "Enfermería Industrial"
)

// Prices holds the three fee amounts of a plan.
type Prices struct {
	Enrollment   Money `json:"enrollment"`
	ReEnrollment Money `json:"reEnrollment"`
	Fee          Money `json:"fee"`
}

// StudyPlanConfig is the immutable billing configuration of one plan.
// Invariant: every re-enrollment index is in [0, FeeCount).
type StudyPlanConfig struct {
	FeeCadence Cadence `json:"feeCadence"`
	FeeCount   int     `json:"feeCount"`

	// ReEnrollmentIndices are the 0-based installment indices at which the
	// re-enrollment fee is co-billed with the regular fee.
	ReEnrollmentIndices []int `json:"reEnrollmentIndices"`

	Prices Prices `json:"prices"`
}

// Validate checks the config invariants. The built-in catalog is validated
// by tests; the factory package validates user-supplied catalogs at load.
func (c StudyPlanConfig) Validate() error {
	if !c.FeeCadence.Valid() {
		return fmt.Errorf("unknown fee cadence %q", c.FeeCadence)
	}
	if c.FeeCount < 0 {
		return fmt.Errorf("negative fee count %d", c.FeeCount)
	}
	for _, idx := range c.ReEnrollmentIndices {
		if idx < 0 || idx >= c.FeeCount {
			return fmt.Errorf("re-enrollment index %d outside [0, %d)", idx, c.FeeCount)
		}
	}
	if c.Prices.Enrollment.IsNegative() || c.Prices.ReEnrollment.IsNegative() || c.Prices.Fee.IsNegative() {
		return fmt.Errorf("negative price in plan config")
	}
	return nil
}

func (c StudyPlanConfig) isReEnrollmentIndex(idx int) bool {
	for _, i := range c.ReEnrollmentIndices {
		if i == idx {
			return true
		}
	}
	return false
}

// =============================================================================
// CATALOG - Plan lookup, injected everywhere (no ambient globals)
// =============================================================================

// Catalog maps plan identifiers to their configuration. It is read-only
// after construction and passed explicitly to every function that needs it.
type Catalog struct {
	plans map[PlanID]StudyPlanConfig
}

func NewCatalog(plans map[PlanID]StudyPlanConfig) *Catalog {
	copied := make(map[PlanID]StudyPlanConfig, len(plans))
	for id, cfg := range plans {
		copied[id] = cfg
	}
	return &Catalog{plans: copied}
}

// Get returns the config for a plan, or ErrUnknownPlan. Within the shipped
// catalog the identifier space is closed, so a miss indicates corrupt data
// or a programming error; callers that know the plan exists use MustGet.
func (c *Catalog) Get(id PlanID) (StudyPlanConfig, error) {
	cfg, ok := c.plans[id]
	if !ok {
		return StudyPlanConfig{}, &UnknownPlanError{Plan: id}
	}
	return cfg, nil
}

// MustGet is Get for closed-enum call sites. Panics on a miss.
func (c *Catalog) MustGet(id PlanID) StudyPlanConfig {
	cfg, err := c.Get(id)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Has reports whether the catalog knows the plan.
func (c *Catalog) Has(id PlanID) bool {
	_, ok := c.plans[id]
	return ok
}

// Plans returns the catalog's plan identifiers, unordered.
func (c *Catalog) Plans() []PlanID {
	ids := make([]PlanID, 0, len(c.plans))
	for id := range c.plans {
		ids = append(ids, id)
	}
	return ids
}

// DefaultCatalog returns the built-in catalog with the school's seven plans.
// Prices are in MXN.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[PlanID]StudyPlanConfig{
		PlanGeneralNursing: {
			FeeCadence:          CadenceMonthly,
			FeeCount:            36,
			ReEnrollmentIndices: []int{4, 8, 12, 16, 20, 24, 28, 32}, // months 5, 9, ..., 33
			Prices: Prices{
				Enrollment:   MoneyFromInt(1900),
				ReEnrollment: MoneyFromInt(1900),
				Fee:          MoneyFromInt(1900),
			},
		},
		PlanLevelingDegree: {
			FeeCadence:          CadenceMonthly,
			FeeCount:            12,
			ReEnrollmentIndices: []int{4, 8}, // months 5 and 9
			Prices: Prices{
				Enrollment:   MoneyFromInt(2200),
				ReEnrollment: MoneyFromInt(2200),
				Fee:          MoneyFromInt(2200),
			},
		},
		PlanPodiatry: {
			FeeCadence: CadenceWeekly,
			FeeCount:   27,
			Prices: Prices{
				Enrollment:   MoneyFromInt(900),
				ReEnrollment: MoneyFromInt(0),
				Fee:          MoneyFromInt(250),
			},
		},
		PlanNursingAssistant: {
			FeeCadence:          CadenceWeekly,
			FeeCount:            54,
			ReEnrollmentIndices: []int{27}, // week 28
			Prices: Prices{
				Enrollment:   MoneyFromInt(900),
				ReEnrollment: MoneyFromInt(900),
				Fee:          MoneyFromInt(250),
			},
		},
		PlanPrehospitalCare: {
			FeeCadence:          CadenceWeekly,
			FeeCount:            54,
			ReEnrollmentIndices: []int{27}, // week 28
			Prices: Prices{
				Enrollment:   MoneyFromInt(900),
				ReEnrollment: MoneyFromInt(900),
				Fee:          MoneyFromInt(250),
			},
		},
		PlanSurgicalNursing: {
			FeeCadence: CadenceWeekly,
			FeeCount:   27,
			Prices: Prices{
				Enrollment:   MoneyFromInt(900),
				ReEnrollment: MoneyFromInt(0),
				Fee:          MoneyFromInt(250),
			},
		},
		PlanIndustrialNursing: {
			FeeCadence: CadenceWeekly,
			FeeCount:   27,
			Prices: Prices{
				Enrollment:   MoneyFromInt(900),
				ReEnrollment: MoneyFromInt(0),
				Fee:          MoneyFromInt(250),
			},
		},
	})
}
