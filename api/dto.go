/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the API contract. Domain types already carry the
  persisted JSON shape (the document format), so responses reuse them
  directly; requests get their own types so input validation and date
  parsing stay at the edge.

VALIDATION:
  Request types carry go-playground/validator struct tags; handlers run the
  validator before touching domain logic.
*/
package api

import (
	"encoding/json"

	"github.com/matricula/tuition-engine/tuition"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// StudentRequest is the body for creating or updating a student.
type StudentRequest struct {
	FirstName       string `json:"nombre" validate:"required"`
	PaternalSurname string `json:"apellidoPaterno" validate:"required"`
	MaternalSurname string `json:"apellidoMaterno"`
	BirthDate       string `json:"fechaNacimiento"`
	Street          string `json:"calle"`
	StreetNumber    string `json:"numero"`
	Neighborhood    string `json:"colonia"`
	Phone           string `json:"telefono"`
	CURP            string `json:"curp"`
	Status          string `json:"status" validate:"required,oneof=Activo Inactivo"`
	StudyPlan       string `json:"studyPlan" validate:"required"`
	EnrollmentDate  string `json:"enrollmentDate"`
	CourseStartDate string `json:"courseStartDate"`

	// ConfirmPlanChange acknowledges that switching plans resets the
	// payment checklist. Updates that change the plan without it are
	// rejected with 409 and leave the student untouched.
	ConfirmPlanChange bool `json:"confirmPlanChange,omitempty"`
}

// PaymentRequest is the body for creating or updating a payment. For
// status "Pagado" the allocation engine decides descriptions, categories
// and record amounts; for "Pendiente" the record is stored as given.
type PaymentRequest struct {
	StudentID   string      `json:"studentId" validate:"required"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount" validate:"required"`
	Date        string      `json:"date" validate:"required"`
	Category    string      `json:"category"`
	Status      string      `json:"status" validate:"required,oneof=Pagado Pendiente"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// PlanDTO describes one catalog entry.
type PlanDTO struct {
	ID                  tuition.PlanID  `json:"id"`
	FeeCadence          tuition.Cadence `json:"feeCadence"`
	FeeCount            int             `json:"feeCount"`
	ReEnrollmentIndices []int           `json:"reEnrollmentIndices"`
	Prices              tuition.Prices  `json:"prices"`
}

// ScheduleEntryDTO is one due in a student's schedule view, enriched with
// checklist and overdue state.
type ScheduleEntryDTO struct {
	Label          string        `json:"label"`
	DueDate        tuition.Date  `json:"dueDate"`
	Cost           tuition.Money `json:"cost"`
	IsReEnrollment bool          `json:"isReEnrollment"`
	Paid           bool          `json:"paid"`
	Overdue        bool          `json:"overdue"`
}

// ScheduleResponse is the full checklist view for one student.
type ScheduleResponse struct {
	StudentID  string             `json:"studentId"`
	Enrollment ScheduleEntryDTO   `json:"enrollment"`
	Items      []ScheduleEntryDTO `json:"items"`
}

// AllocationResponse reports what a Paid payment turned into.
type AllocationResponse struct {
	Payments []tuition.Payment `json:"payments"`
	Student  tuition.Student   `json:"student"`
}

// DashboardResponse carries the aggregate figures.
type DashboardResponse struct {
	Today          tuition.Date                     `json:"today"`
	TotalCollected tuition.Money                    `json:"totalCollected"`
	TotalOverdue   tuition.Money                    `json:"totalOverdue"`
	ActiveStudents int                              `json:"activeStudents"`
	RevenueByPlan  map[tuition.PlanID]tuition.Money `json:"revenueByPlan"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
