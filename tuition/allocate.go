/*
allocate.go - Payment allocation engine

PURPOSE:
  Applies a gross payment amount against a student's outstanding dues in a
  fixed priority order and splits any remainder into a credit-balance
  record. This is the one place checklists get marked paid.

PRIORITY ORDER (strict, greedy, no partial retirement):
  1. Enrollment fee, if unpaid and covered
  2. Schedule items in ascending index order; the loop halts outright the
     moment the remaining amount cannot cover the earliest unpaid item — it
     never scans forward for a cheaper later item (earliest-due-first, hard
     stop)
  3. Any positive remainder becomes a single "Saldo a favor" record

ALL-OR-NOTHING:
  The engine never mutates its inputs. It returns the records to append and
  the replacement checklist; the caller persists both together so partial
  application cannot occur. On error nothing is returned at all.
*/
package tuition

import "fmt"

// PaymentMeta carries the caller-supplied fields copied onto every record
// the engine emits.
type PaymentMeta struct {
	Date Date
}

// AllocationResult is the outcome of a successful allocation.
type AllocationResult struct {
	// Payments are the emitted records, in priority order, with empty IDs.
	// The caller assigns IDs and appends them atomically with Status.
	Payments []Payment

	// Status is the replacement checklist for the student.
	Status PaymentPlanStatus
}

// Total returns the sum of the emitted record amounts. For any successful
// allocation it equals the amount passed in (conservation).
func (r AllocationResult) Total() Money {
	total := Money{}
	for _, p := range r.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Allocate applies amount against the student's outstanding dues.
//
// Fails with ErrInvalidAmount (amount not positive), ErrUnknownPlan (plan
// missing from the catalog), ErrMissingAnchorDate (no course start date),
// or InsufficientAmountError (amount retires nothing). The student value is
// never modified.
func Allocate(catalog *Catalog, student Student, amount Money, meta PaymentMeta) (AllocationResult, error) {
	if !amount.IsPositive() {
		return AllocationResult{}, ErrInvalidAmount
	}
	cfg, err := catalog.Get(student.StudyPlan)
	if err != nil {
		return AllocationResult{}, err
	}
	if student.CourseStartDate.IsZero() {
		return AllocationResult{}, ErrMissingAnchorDate
	}

	remaining := amount
	status := student.PlanStatus.Clone()
	retired := 0
	var payments []Payment

	emit := func(description string, cost Money, category Category) {
		payments = append(payments, Payment{
			StudentID:   student.ID,
			Description: description,
			Amount:      cost,
			Date:        meta.Date,
			Category:    category,
			Status:      PaymentPaid,
		})
		remaining = remaining.Sub(cost)
	}

	// 1. Enrollment fee first. A zero-priced enrollment is retired without
	// emitting a record (records must carry a positive amount).
	if !status.Enrollment && remaining.Covers(cfg.Prices.Enrollment) {
		if cfg.Prices.Enrollment.IsPositive() {
			emit("Pago de Inscripción", cfg.Prices.Enrollment, CategoryEnrollment)
		}
		status = status.WithEnrollmentPaid()
		retired++
	}

	// 2. Schedule items, earliest due first, hard stop on the first unpaid
	// item the remaining amount cannot cover.
	schedule := GenerateSchedule(student.CourseStartDate, cfg)
	for _, item := range schedule {
		if !remaining.IsPositive() {
			break
		}
		if status.ItemPaid(item.Index) {
			continue
		}
		if !remaining.Covers(item.Cost) {
			break
		}
		if item.Cost.IsPositive() {
			category := cfg.FeeCadence.FeeCategory()
			if item.IsReEnrollment {
				category = CategoryReEnrollment
			}
			emit(fmt.Sprintf("Pago de %s", item.Label), item.Cost, category)
		}
		status = status.WithItemPaid(item.Index)
		retired++
	}

	// Nothing retired while dues remain outstanding: the amount could not
	// cover the next due item. Surface it without touching any state rather
	// than banking the whole amount as credit.
	if retired == 0 && !status.Complete() {
		label, cost := nextUnpaid(cfg, schedule, status)
		return AllocationResult{}, &InsufficientAmountError{
			Amount:   amount,
			NextCost: cost,
			NextItem: label,
		}
	}

	// 3. Remainder becomes a credit balance.
	if remaining.IsPositive() {
		emit("Saldo a favor", remaining, CategoryBalance)
	}

	return AllocationResult{Payments: payments, Status: status}, nil
}

// nextUnpaid returns the label and cost of the earliest outstanding due.
func nextUnpaid(cfg StudyPlanConfig, schedule []ScheduleItem, status PaymentPlanStatus) (string, Money) {
	if !status.Enrollment {
		return "Inscripción", cfg.Prices.Enrollment
	}
	for _, item := range schedule {
		if !status.ItemPaid(item.Index) {
			return item.Label, item.Cost
		}
	}
	return "", Money{}
}
