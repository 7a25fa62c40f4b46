/*
Package tuition implements the payment-plan engine for the tuition tracker.

PURPOSE:
  This package contains the pure domain logic: the study-plan catalog, the
  deterministic schedule generator, due-date arithmetic, the payment
  allocation engine, and the overdue/revenue aggregations the dashboard
  reads. Everything here is side-effect free; persistence belongs to the
  docstore package and HTTP wiring to the api package.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A decimal amount in a single currency (MXN in practice)
  - Student: Identity, profile, plan, anchor date, and checklist
  - Payment: One row per money movement, append-only from the engine's view
  - Category/Status enums: The persisted Spanish values of the source data

DESIGN PRINCIPLES:
  1. Explicit injection: the Catalog and "today" are always parameters,
     never ambient globals
  2. Precision: Money uses decimal.Decimal, compared exactly
  3. Immutability: the allocation engine returns new checklists and new
     payment records instead of patching its inputs

SEE ALSO:
  - catalog.go:   StudyPlanConfig and the built-in plan catalog
  - schedule.go:  Due dates and schedule generation
  - allocate.go:  The allocation engine
  - aggregate.go: Overdue and revenue aggregations
*/
package tuition

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Decimal amount, single currency, exact comparison
// =============================================================================

// Money is an exact decimal amount. Threshold checks in the allocation
// engine (`remaining >= cost`) rely on exact comparison, so Money must
// never pass through a binary float.
type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func MoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{Value: d}, nil
}

func (m Money) Add(o Money) Money            { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money            { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) IsZero() bool                 { return m.Value.IsZero() }
func (m Money) IsPositive() bool             { return m.Value.IsPositive() }
func (m Money) IsNegative() bool             { return m.Value.IsNegative() }
func (m Money) Equal(o Money) bool           { return m.Value.Equal(o.Value) }
func (m Money) LessThan(o Money) bool        { return m.Value.LessThan(o.Value) }
func (m Money) GreaterThan(o Money) bool     { return m.Value.GreaterThan(o.Value) }
func (m Money) Covers(o Money) bool          { return m.Value.GreaterThanOrEqual(o.Value) }
func (m Money) String() string               { return m.Value.String() }

// MarshalJSON emits a raw number, matching the source document format and
// the CSV export ("Monto" is a raw number, not a currency string).
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Value.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("invalid money value %q: %w", b, err)
	}
	m.Value = d
	return nil
}

// =============================================================================
// PAYMENT - One row per money movement
// =============================================================================

// Category values are the persisted Spanish strings of the source data set.
type Category string

const (
	CategoryEnrollment   Category = "Inscripción"
	CategoryReEnrollment Category = "Reinscripción"
	CategoryMonthlyFee   Category = "Mensualidad"
	CategoryWeeklyFee    Category = "Semanalidad"
	CategoryBalance      Category = "Saldo a favor"
	CategoryMaterials    Category = "Materiales"
	CategoryExam         Category = "Examen"
	CategoryOther        Category = "Otros"
)

// AllocationCategories are the categories the engine itself emits. A Paid
// payment in one of these categories is immutable evidence of an allocation
// outcome: it is deleted or superseded wholesale, never split.
var AllocationCategories = []Category{
	CategoryEnrollment,
	CategoryReEnrollment,
	CategoryMonthlyFee,
	CategoryWeeklyFee,
	CategoryBalance,
}

func (c Category) IsAllocationCategory() bool {
	for _, ac := range AllocationCategories {
		if c == ac {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Pagado"
	PaymentPending PaymentStatus = "Pendiente"
)

// Payment is a single money movement. The allocation engine emits payments
// with an empty ID; the caller assigns IDs and persists the batch together
// with the updated checklist.
type Payment struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"studentId"`
	Description string        `json:"description"`
	Amount      Money         `json:"amount"`
	Date        Date          `json:"date"`
	Category    Category      `json:"category"`
	Status      PaymentStatus `json:"status"`
}

// =============================================================================
// STUDENT
// =============================================================================

type StudentStatus string

const (
	StudentActive   StudentStatus = "Activo"
	StudentInactive StudentStatus = "Inactivo"
)

type Student struct {
	ID              string            `json:"id"`
	FirstName       string            `json:"nombre"`
	PaternalSurname string            `json:"apellidoPaterno"`
	MaternalSurname string            `json:"apellidoMaterno"`
	BirthDate       Date              `json:"fechaNacimiento"`
	Street          string            `json:"calle"`
	StreetNumber    string            `json:"numero"`
	Neighborhood    string            `json:"colonia"`
	Phone           string            `json:"telefono"`
	CURP            string            `json:"curp"`
	Status          StudentStatus     `json:"status"`
	StudyPlan       PlanID            `json:"studyPlan"`
	EnrollmentDate  Date              `json:"enrollmentDate"`
	CourseStartDate Date              `json:"courseStartDate"`
	PlanStatus      PaymentPlanStatus `json:"paymentPlanStatus"`
}

// FullName returns "surname surname name", the collation key used for
// student listings.
func (s Student) FullName() string {
	return fmt.Sprintf("%s %s %s", s.PaternalSurname, s.MaternalSurname, s.FirstName)
}

// DisplayName returns "name paternal-surname", used in the export filename
// and the global CSV's student column.
func (s Student) DisplayName() string {
	return fmt.Sprintf("%s %s", s.FirstName, s.PaternalSurname)
}

// ChangePlan returns a copy of the student on the new plan with a freshly
// reset checklist. Destructive: callers must confirm with the user first
// (declining keeps the old plan and the old checklist).
func (s Student) ChangePlan(cfg StudyPlanConfig, plan PlanID) Student {
	out := s
	out.StudyPlan = plan
	out.PlanStatus = NewPaymentPlanStatus(cfg)
	return out
}
