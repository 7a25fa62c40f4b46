/*
errors.go - Error types for the tuition engine

PURPOSE:
  All engine error kinds in one place. Sentinels support errors.Is; the
  structured variants carry context and unwrap to their sentinel.

ERROR KINDS:
  MissingAnchorDate  date-dependent operation on a student without a course
                     start date
  UnknownPlan        plan identifier not in the catalog (closed enum, so a
                     miss means corrupt data or a programming error)
  InsufficientAmount payment amount cannot retire the next unpaid item and
                     produced no records at all
  UnknownStudent     payment references a student id not in the collection

All are reported synchronously and never retried; callers abort the mutating
operation without partial state changes.
*/
package tuition

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMissingAnchorDate is returned when a date-dependent operation is
	// attempted for a student with no course start date.
	ErrMissingAnchorDate = errors.New("student has no course start date")

	// ErrUnknownPlan is returned when a plan identifier is not in the catalog.
	ErrUnknownPlan = errors.New("unknown study plan")

	// ErrInsufficientAmount is returned when a payment amount cannot retire
	// the next unpaid item and no allocation was produced.
	ErrInsufficientAmount = errors.New("amount insufficient to cover next due item")

	// ErrUnknownStudent is returned when a payment references a student id
	// that is not present in the collection.
	ErrUnknownStudent = errors.New("student not found")

	// ErrInvalidAmount is returned when an allocation is attempted with a
	// zero or negative amount.
	ErrInvalidAmount = errors.New("payment amount must be positive")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// UnknownPlanError reports which plan identifier missed the catalog.
type UnknownPlanError struct {
	Plan PlanID
}

func (e *UnknownPlanError) Error() string {
	return fmt.Sprintf("unknown study plan %q", string(e.Plan))
}

func (e *UnknownPlanError) Unwrap() error { return ErrUnknownPlan }

// InsufficientAmountError reports the amount offered and the cost of the
// next unpaid item it failed to cover.
type InsufficientAmountError struct {
	Amount   Money
	NextCost Money
	NextItem string // label of the next unpaid item ("Inscripción", "Mensualidad 3", ...)
}

func (e *InsufficientAmountError) Error() string {
	return fmt.Sprintf("amount %s insufficient to cover %s (%s)",
		e.Amount, e.NextItem, e.NextCost)
}

func (e *InsufficientAmountError) Unwrap() error { return ErrInsufficientAmount }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true when the error is caused by user input rather
// than a system failure, so the API maps it to a 4xx status.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingAnchorDate) ||
		errors.Is(err, ErrInsufficientAmount) ||
		errors.Is(err, ErrInvalidAmount)
}

// IsNotFound returns true when the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownStudent) ||
		errors.Is(err, ErrUnknownPlan)
}
