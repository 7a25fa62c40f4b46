package tuition_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matricula/tuition-engine/tuition"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func podiatryStudent(catalog *tuition.Catalog) tuition.Student {
	cfg := catalog.MustGet(tuition.PlanPodiatry)
	return tuition.Student{
		ID:              "st-1",
		FirstName:       "María",
		PaternalSurname: "López",
		Status:          tuition.StudentActive,
		StudyPlan:       tuition.PlanPodiatry,
		CourseStartDate: tuition.NewDate(2024, time.May, 1),
		PlanStatus:      tuition.NewPaymentPlanStatus(cfg),
	}
}

func allocMeta() tuition.PaymentMeta {
	return tuition.PaymentMeta{Date: tuition.NewDate(2024, time.May, 10)}
}

// =============================================================================
// PRIORITY ORDER
// =============================================================================

func TestAllocate_EnrollmentThenFirstFee_NoBalance(t *testing.T) {
	// GIVEN: Podología student, nothing paid (enrollment 900, fee 250)
	// WHEN: allocating exactly 1150
	// THEN: one Enrollment record (900) + one fee record (250) retiring
	//       item 0, no Balance record

	catalog := tuition.DefaultCatalog()
	student := podiatryStudent(catalog)

	result, err := tuition.Allocate(catalog, student, tuition.MoneyFromInt(1150), allocMeta())
	require.NoError(t, err)

	require.Len(t, result.Payments, 2)
	assert.Equal(t, tuition.CategoryEnrollment, result.Payments[0].Category)
	assert.Equal(t, "Pago de Inscripción", result.Payments[0].Description)
	assert.True(t, result.Payments[0].Amount.Equal(tuition.MoneyFromInt(900)))

	assert.Equal(t, tuition.CategoryWeeklyFee, result.Payments[1].Category)
	assert.Equal(t, "Pago de Semanalidad 1", result.Payments[1].Description)
	assert.True(t, result.Payments[1].Amount.Equal(tuition.MoneyFromInt(250)))

	assert.True(t, result.Status.Enrollment)
	assert.True(t, result.Status.ItemPaid(0))
	assert.False(t, result.Status.ItemPaid(1))
}

func TestAllocate_RemainderBecomesBalance(t *testing.T) {
	// GIVEN: Podología student, nothing paid
	// WHEN: allocating 1000 (covers enrollment, not the 250 fee)
	// THEN: Enrollment record + a 100 Balance record

	catalog := tuition.DefaultCatalog()
	student := podiatryStudent(catalog)

	result, err := tuition.Allocate(catalog, student, tuition.MoneyFromInt(1000), allocMeta())
	require.NoError(t, err)

	require.Len(t, result.Payments, 2)
	assert.Equal(t, tuition.CategoryEnrollment, result.Payments[0].Category)
	assert.Equal(t, tuition.CategoryBalance, result.Payments[1].Category)
	assert.Equal(t, "Saldo a favor", result.Payments[1].Description)
	assert.True(t, result.Payments[1].Amount.Equal(tuition.MoneyFromInt(100)))
	assert.False(t, result.Status.ItemPaid(0))
}

func TestAllocate_ReEnrollmentItem_UsesReEnrollmentCategory(t *testing.T) {
	// GIVEN: Auxiliar de Enfermería student with everything up to week 28 paid
	// WHEN: allocating the combined week-28 cost (250 + 900)
	// THEN: one ReEnrollment record retiring item 27

	catalog := tuition.DefaultCatalog()
	cfg := catalog.MustGet(tuition.PlanNursingAssistant)
	student := podiatryStudent(catalog)
	student.StudyPlan = tuition.PlanNursingAssistant
	status := tuition.NewPaymentPlanStatus(cfg).WithEnrollmentPaid()
	for i := 0; i < 27; i++ {
		status = status.WithItemPaid(i)
	}
	student.PlanStatus = status

	result, err := tuition.Allocate(catalog, student, tuition.MoneyFromInt(1150), allocMeta())
	require.NoError(t, err)

	require.Len(t, result.Payments, 1)
	assert.Equal(t, tuition.CategoryReEnrollment, result.Payments[0].Category)
	assert.Equal(t, "Pago de Semanalidad 28 / Reinscripción 1", result.Payments[0].Description)
	assert.True(t, result.Status.ItemPaid(27))
}

// =============================================================================
// HARD STOP (earliest-due-first, never cheapest-fit)
// =============================================================================

func TestAllocate_HardStop_DoesNotSkipToLaterCheaperItem(t *testing.T) {
	// GIVEN: a plan whose first schedule item co-bills a re-enrollment
	//        (cost 1150) while later items cost 250, enrollment already paid
	// WHEN: allocating 1150 with enrollment still owed (900)
	// THEN: after enrollment the remaining 250 cannot cover item 0, so the
	//       loop halts: the 250 becomes Balance even though item 1 costs 250

	catalog := tuition.NewCatalog(map[tuition.PlanID]tuition.StudyPlanConfig{
		"frontloaded": {
			FeeCadence:          tuition.CadenceWeekly,
			FeeCount:            4,
			ReEnrollmentIndices: []int{0},
			Prices: tuition.Prices{
				Enrollment:   tuition.MoneyFromInt(900),
				ReEnrollment: tuition.MoneyFromInt(900),
				Fee:          tuition.MoneyFromInt(250),
			},
		},
	})
	student := tuition.Student{
		ID:              "st-2",
		Status:          tuition.StudentActive,
		StudyPlan:       "frontloaded",
		CourseStartDate: tuition.NewDate(2024, time.May, 1),
		PlanStatus:      tuition.NewPaymentPlanStatus(catalog.MustGet("frontloaded")),
	}

	result, err := tuition.Allocate(catalog, student, tuition.MoneyFromInt(1150), allocMeta())
	require.NoError(t, err)

	require.Len(t, result.Payments, 2)
	assert.Equal(t, tuition.CategoryEnrollment, result.Payments[0].Category)
	assert.Equal(t, tuition.CategoryBalance, result.Payments[1].Category)
	assert.True(t, result.Payments[1].Amount.Equal(tuition.MoneyFromInt(250)))

	assert.False(t, result.Status.ItemPaid(0), "item 0 is not covered")
	assert.False(t, result.Status.ItemPaid(1), "item 1 must not be paid out of order")
}

// =============================================================================
// ERROR CASES
// =============================================================================

func TestAllocate_InsufficientAmount_EmitsNothing(t *testing.T) {
	// GIVEN: unpaid enrollment of 900
	// WHEN: allocating 500
	// THEN: InsufficientAmount, zero records, input checklist untouched

	catalog := tuition.DefaultCatalog()
	student := podiatryStudent(catalog)

	_, err := tuition.Allocate(catalog, student, tuition.MoneyFromInt(500), allocMeta())
	require.Error(t, err)
	assert.ErrorIs(t, err, tuition.ErrInsufficientAmount)

	var insufficient *tuition.InsufficientAmountError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Inscripción", insufficient.NextItem)
	assert.True(t, insufficient.NextCost.Equal(tuition.MoneyFromInt(900)))

	assert.False(t, student.PlanStatus.Enrollment)
}

func TestAllocate_MissingAnchorDate(t *testing.T) {
	catalog := tuition.DefaultCatalog()
	student := podiatryStudent(catalog)
	student.CourseStartDate = tuition.Date{}

	_, err := tuition.Allocate(catalog, student, tuition.MoneyFromInt(900), allocMeta())
	assert.ErrorIs(t, err, tuition.ErrMissingAnchorDate)
}

func TestAllocate_UnknownPlan(t *testing.T) {
	catalog := tuition.DefaultCatalog()
	student := podiatryStudent(catalog)
	student.StudyPlan = "Plan Fantasma"

	_, err := tuition.Allocate(catalog, student, tuition.MoneyFromInt(900), allocMeta())
	assert.ErrorIs(t, err, tuition.ErrUnknownPlan)

	var unknown *tuition.UnknownPlanError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, tuition.PlanID("Plan Fantasma"), unknown.Plan)
}

func TestAllocate_NonPositiveAmount(t *testing.T) {
	catalog := tuition.DefaultCatalog()
	student := podiatryStudent(catalog)

	_, err := tuition.Allocate(catalog, student, tuition.MoneyFromInt(0), allocMeta())
	assert.ErrorIs(t, err, tuition.ErrInvalidAmount)

	_, err = tuition.Allocate(catalog, student, tuition.MoneyFromInt(-50), allocMeta())
	assert.ErrorIs(t, err, tuition.ErrInvalidAmount)
}

// =============================================================================
// INVARIANTS
// =============================================================================

func TestAllocate_Conservation_SumEqualsAmount(t *testing.T) {
	// GIVEN: a fresh Podología student
	// WHEN: allocating a range of amounts that retire at least one item
	// THEN: the emitted records always sum to the exact amount paid in

	catalog := tuition.DefaultCatalog()

	for _, amount := range []int{900, 1000, 1150, 1400, 2575, 900 + 27*250 + 333} {
		student := podiatryStudent(catalog)
		result, err := tuition.Allocate(catalog, student, tuition.MoneyFromInt(amount), allocMeta())
		require.NoError(t, err, "amount %d", amount)
		assert.True(t, result.Total().Equal(tuition.MoneyFromInt(amount)),
			"amount %d: emitted %s", amount, result.Total())
	}
}

func TestAllocate_FullyPaidStudent_AmountBecomesSingleBalance(t *testing.T) {
	// GIVEN: a student with every due retired
	// WHEN: allocating 300
	// THEN: a single Balance record of 300

	catalog := tuition.DefaultCatalog()
	student := podiatryStudent(catalog)
	status := student.PlanStatus.WithEnrollmentPaid()
	for i := range status.Schedule {
		status = status.WithItemPaid(i)
	}
	student.PlanStatus = status

	result, err := tuition.Allocate(catalog, student, tuition.MoneyFromInt(300), allocMeta())
	require.NoError(t, err)

	require.Len(t, result.Payments, 1)
	assert.Equal(t, tuition.CategoryBalance, result.Payments[0].Category)
	assert.True(t, result.Payments[0].Amount.Equal(tuition.MoneyFromInt(300)))
}

func TestAllocate_DoesNotMutateInput(t *testing.T) {
	// GIVEN: a student checklist snapshot
	// WHEN: an allocation retires several items
	// THEN: the input student's checklist is unchanged (the engine returns a
	//       replacement, it never patches)

	catalog := tuition.DefaultCatalog()
	student := podiatryStudent(catalog)

	result, err := tuition.Allocate(catalog, student, tuition.MoneyFromInt(1650), allocMeta())
	require.NoError(t, err)

	assert.False(t, student.PlanStatus.Enrollment)
	for i := range student.PlanStatus.Schedule {
		assert.False(t, student.PlanStatus.Schedule[i])
	}
	assert.True(t, result.Status.Enrollment)
}

func TestAllocate_EmittedRecords_CarryMetaAndStudent(t *testing.T) {
	catalog := tuition.DefaultCatalog()
	student := podiatryStudent(catalog)
	meta := tuition.PaymentMeta{Date: tuition.NewDate(2024, time.June, 2)}

	result, err := tuition.Allocate(catalog, student, tuition.MoneyFromInt(900), meta)
	require.NoError(t, err)

	for _, p := range result.Payments {
		assert.Equal(t, student.ID, p.StudentID)
		assert.Equal(t, "2024-06-02", p.Date.String())
		assert.Equal(t, tuition.PaymentPaid, p.Status)
		assert.Empty(t, p.ID, "engine leaves IDs for the caller to assign")
		assert.True(t, p.Amount.IsPositive())
	}
}

func TestAllocate_ErrorsAreClientErrors(t *testing.T) {
	assert.True(t, tuition.IsClientError(tuition.ErrInsufficientAmount))
	assert.True(t, tuition.IsClientError(tuition.ErrMissingAnchorDate))
	assert.True(t, tuition.IsClientError(tuition.ErrInvalidAmount))
	assert.False(t, tuition.IsClientError(errors.New("disk on fire")))
	assert.True(t, tuition.IsNotFound(tuition.ErrUnknownStudent))
	assert.True(t, tuition.IsNotFound(&tuition.UnknownPlanError{Plan: "x"}))
}
