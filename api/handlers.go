/*
handlers.go - HTTP handlers for the tuition tracker

PURPOSE:
  Exposes the tuition engine over REST. Handlers parse and validate input,
  call the pure domain logic, commit the result to the in-memory document,
  and queue a debounced save.

ARCHITECTURE:
  The Handler owns the whole working document (students + payments) behind
  one mutex. Every mutation is applied to the in-memory collections and the
  updated document is queued on the debounced writer, so a payment batch
  and its checklist always land in the same save (all-or-nothing). The
  mutex also serializes allocations: the engine snapshots a checklist and
  returns a replacement, so two concurrent allocations against the same
  student must never interleave.

ERROR HANDLING:
  - 400: invalid input, MissingAnchorDate, InsufficientAmount
  - 404: unknown student/payment/plan
  - 409: plan change without confirmation
  - 500: store failures
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/matricula/tuition-engine/docstore"
	"github.com/matricula/tuition-engine/export"
	"github.com/matricula/tuition-engine/tuition"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	catalog  *tuition.Catalog
	store    docstore.Store
	writer   *docstore.DebouncedWriter
	validate *validator.Validate

	// now supplies "today" for overdue computation; tests override it.
	now func() tuition.Date

	mu       sync.Mutex
	students []tuition.Student
	payments []tuition.Payment
}

// NewHandler creates a handler around the given catalog and store. The
// writer batches document saves; pass a zero-window writer in tests.
func NewHandler(catalog *tuition.Catalog, store docstore.Store, writer *docstore.DebouncedWriter) *Handler {
	return &Handler{
		catalog:  catalog,
		store:    store,
		writer:   writer,
		validate: validator.New(),
		now:      tuition.Today,
	}
}

// LoadDocument pulls the owner's document into memory. Checklists written
// against an older catalog are realigned to the current fee count (progress
// is kept for the shared prefix).
func (h *Handler) LoadDocument(ctx context.Context) error {
	doc, err := h.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.students = doc.Students
	h.payments = doc.Payments

	for i, student := range h.students {
		cfg, err := h.catalog.Get(student.StudyPlan)
		if err != nil || student.PlanStatus.Matches(cfg) {
			continue
		}
		realigned := tuition.NewPaymentPlanStatus(cfg)
		realigned.Enrollment = student.PlanStatus.Enrollment
		for j := 0; j < len(realigned.Schedule) && j < len(student.PlanStatus.Schedule); j++ {
			realigned.Schedule[j] = student.PlanStatus.Schedule[j]
		}
		h.students[i].PlanStatus = realigned
	}
	return nil
}

// queueSaveLocked snapshots the current document onto the debounced writer.
// Callers must hold h.mu.
func (h *Handler) queueSaveLocked() {
	h.writer.Queue(docstore.Document{Students: h.students, Payments: h.payments})
}

func (h *Handler) findStudentLocked(id string) (int, bool) {
	for i, s := range h.students {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (h *Handler) findPaymentLocked(id string) (int, bool) {
	for i, p := range h.payments {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}

// today resolves the reference day for overdue computations, honoring the
// ?today=YYYY-MM-DD override so reports are reproducible.
func (h *Handler) today(r *http.Request) (tuition.Date, error) {
	if raw := r.URL.Query().Get("today"); raw != "" {
		return tuition.ParseDate(raw)
	}
	return h.now(), nil
}

// =============================================================================
// PLAN ENDPOINTS
// =============================================================================

// ListPlans returns the catalog.
// GET /api/plans
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	ids := h.catalog.Plans()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	dtos := make([]PlanDTO, 0, len(ids))
	for _, id := range ids {
		cfg := h.catalog.MustGet(id)
		dtos = append(dtos, PlanDTO{
			ID:                  id,
			FeeCadence:          cfg.FeeCadence,
			FeeCount:            cfg.FeeCount,
			ReEnrollmentIndices: cfg.ReEnrollmentIndices,
			Prices:              cfg.Prices,
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// STUDENT ENDPOINTS
// =============================================================================

// ListStudents returns students, optionally filtered by ?status= and
// ?plan=, sorted by surname.
// GET /api/students
func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")
	planFilter := r.URL.Query().Get("plan")

	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]tuition.Student, 0, len(h.students))
	for _, s := range h.students {
		if statusFilter != "" && string(s.Status) != statusFilter {
			continue
		}
		if planFilter != "" && string(s.StudyPlan) != planFilter {
			continue
		}
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].FullName()) < strings.ToLower(result[j].FullName())
	})
	writeJSON(w, http.StatusOK, result)
}

// CreateStudent registers a student with a fresh checklist for their plan.
// POST /api/students
func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid student", err)
		return
	}

	plan := tuition.PlanID(req.StudyPlan)
	cfg, err := h.catalog.Get(plan)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	student, err := req.toStudent(uuid.NewString())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}
	student.PlanStatus = tuition.NewPaymentPlanStatus(cfg)

	h.mu.Lock()
	h.students = append(h.students, student)
	h.queueSaveLocked()
	h.mu.Unlock()

	writeJSON(w, http.StatusCreated, student)
}

// GetStudent returns one student.
// GET /api/students/{id}
func (h *Handler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.mu.Lock()
	defer h.mu.Unlock()
	idx, ok := h.findStudentLocked(id)
	if !ok {
		writeDomainError(w, tuition.ErrUnknownStudent)
		return
	}
	writeJSON(w, http.StatusOK, h.students[idx])
}

// UpdateStudent replaces a student's profile. Changing the study plan is
// destructive (the checklist is regenerated) and therefore requires
// confirmPlanChange; without it the update is rejected wholesale.
// PUT /api/students/{id}
func (h *Handler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid student", err)
		return
	}

	plan := tuition.PlanID(req.StudyPlan)
	cfg, err := h.catalog.Get(plan)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	updated, err := req.toStudent(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	idx, ok := h.findStudentLocked(id)
	if !ok {
		writeDomainError(w, tuition.ErrUnknownStudent)
		return
	}
	current := h.students[idx]

	if current.StudyPlan != plan {
		if !req.ConfirmPlanChange {
			writeError(w, http.StatusConflict,
				"Changing the study plan resets the payment checklist; set confirmPlanChange to proceed", nil)
			return
		}
		updated = updated.ChangePlan(cfg, plan)
	} else {
		updated.PlanStatus = current.PlanStatus
	}

	h.students[idx] = updated
	h.queueSaveLocked()
	writeJSON(w, http.StatusOK, updated)
}

// DeleteStudent removes a student and their payment history.
// DELETE /api/students/{id}
func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.mu.Lock()
	defer h.mu.Unlock()
	idx, ok := h.findStudentLocked(id)
	if !ok {
		writeDomainError(w, tuition.ErrUnknownStudent)
		return
	}

	h.students = append(h.students[:idx], h.students[idx+1:]...)
	kept := h.payments[:0]
	for _, p := range h.payments {
		if p.StudentID != id {
			kept = append(kept, p)
		}
	}
	h.payments = kept
	h.queueSaveLocked()
	w.WriteHeader(http.StatusNoContent)
}

// GetStudentSchedule returns the generated schedule with checklist and
// overdue state per item.
// GET /api/students/{id}/schedule
func (h *Handler) GetStudentSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	today, err := h.today(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid today parameter", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	idx, ok := h.findStudentLocked(id)
	if !ok {
		writeDomainError(w, tuition.ErrUnknownStudent)
		return
	}
	student := h.students[idx]

	cfg, err := h.catalog.Get(student.StudyPlan)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if student.CourseStartDate.IsZero() {
		writeDomainError(w, tuition.ErrMissingAnchorDate)
		return
	}

	enrollmentDue := tuition.DueDate(student.CourseStartDate, cfg, tuition.ItemEnrollment, 0)
	resp := ScheduleResponse{
		StudentID: student.ID,
		Enrollment: ScheduleEntryDTO{
			Label:   "Inscripción",
			DueDate: enrollmentDue,
			Cost:    cfg.Prices.Enrollment,
			Paid:    student.PlanStatus.Enrollment,
			Overdue: !student.PlanStatus.Enrollment && enrollmentDue.Before(today),
		},
		Items: make([]ScheduleEntryDTO, 0, cfg.FeeCount),
	}
	for _, item := range tuition.GenerateSchedule(student.CourseStartDate, cfg) {
		paid := student.PlanStatus.ItemPaid(item.Index)
		resp.Items = append(resp.Items, ScheduleEntryDTO{
			Label:          item.Label,
			DueDate:        item.DueDate,
			Cost:           item.Cost,
			IsReEnrollment: item.IsReEnrollment,
			Paid:           paid,
			Overdue:        !paid && item.DueDate.Before(today),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListStudentPayments returns a student's payments, newest first.
// GET /api/students/{id}/payments
func (h *Handler) ListStudentPayments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.findStudentLocked(id); !ok {
		writeDomainError(w, tuition.ErrUnknownStudent)
		return
	}
	writeJSON(w, http.StatusOK, h.paymentsOfLocked(id))
}

// ExportStudentPayments streams the student's history as CSV.
// GET /api/students/{id}/payments/export
func (h *Handler) ExportStudentPayments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.mu.Lock()
	idx, ok := h.findStudentLocked(id)
	if !ok {
		h.mu.Unlock()
		writeDomainError(w, tuition.ErrUnknownStudent)
		return
	}
	student := h.students[idx]
	payments := h.paymentsOfLocked(id)
	h.mu.Unlock()

	filename := "historial_pagos_" + strings.ReplaceAll(student.DisplayName(), " ", "_") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.StudentPayments(w, payments); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export payments", err)
	}
}

func (h *Handler) paymentsOfLocked(studentID string) []tuition.Payment {
	result := make([]tuition.Payment, 0)
	for _, p := range h.payments {
		if p.StudentID == studentID {
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[j].Date.Before(result[i].Date) })
	return result
}

// =============================================================================
// PAYMENT ENDPOINTS
// =============================================================================

// ListPayments returns all payments, optionally restricted to students of
// one plan via ?plan=.
// GET /api/payments
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	planFilter := r.URL.Query().Get("plan")

	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]tuition.Payment, 0, len(h.payments))
	if planFilter == "" {
		result = append(result, h.payments...)
	} else {
		inPlan := make(map[string]bool)
		for _, s := range h.students {
			if string(s.StudyPlan) == planFilter {
				inPlan[s.ID] = true
			}
		}
		for _, p := range h.payments {
			if inPlan[p.StudentID] {
				result = append(result, p)
			}
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[j].Date.Before(result[i].Date) })
	writeJSON(w, http.StatusOK, result)
}

// CreatePayment records a payment. A "Pagado" payment runs the allocation
// engine: the gross amount is split across outstanding dues and the
// student's checklist is advanced; records and checklist commit together.
// A "Pendiente" payment is stored as given.
// POST /api/payments
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	req, amount, date, ok := h.decodePayment(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	idx, found := h.findStudentLocked(req.StudentID)
	if !found {
		writeDomainError(w, tuition.ErrUnknownStudent)
		return
	}

	if tuition.PaymentStatus(req.Status) == tuition.PaymentPaid {
		result, err := tuition.Allocate(h.catalog, h.students[idx], amount, tuition.PaymentMeta{Date: date})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		h.commitAllocationLocked(idx, result)
		writeJSON(w, http.StatusCreated, AllocationResponse{
			Payments: result.Payments,
			Student:  h.students[idx],
		})
		return
	}

	payment := tuition.Payment{
		ID:          uuid.NewString(),
		StudentID:   req.StudentID,
		Description: req.Description,
		Amount:      amount,
		Date:        date,
		Category:    tuition.Category(req.Category),
		Status:      tuition.PaymentPending,
	}
	h.payments = append(h.payments, payment)
	h.queueSaveLocked()
	writeJSON(w, http.StatusCreated, payment)
}

// UpdatePayment edits a payment. Turning a Pending payment into Paid
// deletes the original record wholesale and replaces it with whatever the
// allocation produces; every other edit is an in-place field replacement
// with no allocation run.
// PUT /api/payments/{id}
func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	req, amount, date, ok := h.decodePayment(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	pIdx, found := h.findPaymentLocked(id)
	if !found {
		writeError(w, http.StatusNotFound, "Payment not found", nil)
		return
	}
	sIdx, found := h.findStudentLocked(req.StudentID)
	if !found {
		writeDomainError(w, tuition.ErrUnknownStudent)
		return
	}

	existing := h.payments[pIdx]
	becomesPaid := existing.Status != tuition.PaymentPaid &&
		tuition.PaymentStatus(req.Status) == tuition.PaymentPaid

	if becomesPaid {
		result, err := tuition.Allocate(h.catalog, h.students[sIdx], amount, tuition.PaymentMeta{Date: date})
		if err != nil {
			// Allocation failed: the original pending record stays as it was.
			writeDomainError(w, err)
			return
		}
		h.payments = append(h.payments[:pIdx], h.payments[pIdx+1:]...)
		h.commitAllocationLocked(sIdx, result)
		writeJSON(w, http.StatusOK, AllocationResponse{
			Payments: result.Payments,
			Student:  h.students[sIdx],
		})
		return
	}

	updated := tuition.Payment{
		ID:          existing.ID,
		StudentID:   req.StudentID,
		Description: req.Description,
		Amount:      amount,
		Date:        date,
		Category:    tuition.Category(req.Category),
		Status:      tuition.PaymentStatus(req.Status),
	}
	h.payments[pIdx] = updated
	h.queueSaveLocked()
	writeJSON(w, http.StatusOK, updated)
}

// DeletePayment removes a payment record as a whole.
// DELETE /api/payments/{id}
func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.mu.Lock()
	defer h.mu.Unlock()
	idx, found := h.findPaymentLocked(id)
	if !found {
		writeError(w, http.StatusNotFound, "Payment not found", nil)
		return
	}
	h.payments = append(h.payments[:idx], h.payments[idx+1:]...)
	h.queueSaveLocked()
	w.WriteHeader(http.StatusNoContent)
}

// ExportAllPayments streams every payment as CSV with a student column.
// GET /api/payments/export
func (h *Handler) ExportAllPayments(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	names := make(map[string]string, len(h.students))
	for _, s := range h.students {
		names[s.ID] = s.DisplayName()
	}
	payments := make([]tuition.Payment, len(h.payments))
	copy(payments, h.payments)
	h.mu.Unlock()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="pagos.csv"`)
	if err := export.AllPayments(w, payments, names); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export payments", err)
	}
}

// commitAllocationLocked assigns IDs to the emitted records and applies the
// records + replacement checklist in one step. Callers must hold h.mu.
func (h *Handler) commitAllocationLocked(studentIdx int, result tuition.AllocationResult) {
	for i := range result.Payments {
		result.Payments[i].ID = uuid.NewString()
	}
	h.payments = append(h.payments, result.Payments...)
	h.students[studentIdx].PlanStatus = result.Status
	h.queueSaveLocked()
}

// decodePayment parses and validates a payment body.
func (h *Handler) decodePayment(w http.ResponseWriter, r *http.Request) (PaymentRequest, tuition.Money, tuition.Date, bool) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return req, tuition.Money{}, tuition.Date{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payment", err)
		return req, tuition.Money{}, tuition.Date{}, false
	}

	amount, err := tuition.ParseMoney(req.Amount.String())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid amount", err)
		return req, tuition.Money{}, tuition.Date{}, false
	}
	if !amount.IsPositive() {
		writeDomainError(w, tuition.ErrInvalidAmount)
		return req, tuition.Money{}, tuition.Date{}, false
	}

	date, err := tuition.ParseDate(req.Date)
	if err != nil || date.IsZero() {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return req, tuition.Money{}, tuition.Date{}, false
	}

	if req.Category != "" && !validCategory(tuition.Category(req.Category)) {
		writeError(w, http.StatusBadRequest, "Unknown payment category", nil)
		return req, tuition.Money{}, tuition.Date{}, false
	}
	if req.Category == "" {
		req.Category = string(tuition.CategoryOther)
	}
	return req, amount, date, true
}

func validCategory(c tuition.Category) bool {
	switch c {
	case tuition.CategoryEnrollment, tuition.CategoryReEnrollment,
		tuition.CategoryMonthlyFee, tuition.CategoryWeeklyFee,
		tuition.CategoryBalance, tuition.CategoryMaterials,
		tuition.CategoryExam, tuition.CategoryOther:
		return true
	}
	return false
}

// =============================================================================
// DASHBOARD ENDPOINT
// =============================================================================

// Dashboard returns total collected, total overdue, active-student count
// and revenue by plan, optionally scoped to ?plan= and anchored at ?today=.
// GET /api/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	today, err := h.today(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid today parameter", err)
		return
	}
	planFilter := r.URL.Query().Get("plan")

	h.mu.Lock()
	students := make([]tuition.Student, 0, len(h.students))
	for _, s := range h.students {
		if planFilter == "" || string(s.StudyPlan) == planFilter {
			students = append(students, s)
		}
	}
	inScope := make(map[string]bool, len(students))
	for _, s := range students {
		inScope[s.ID] = true
	}
	payments := make([]tuition.Payment, 0, len(h.payments))
	for _, p := range h.payments {
		if inScope[p.StudentID] {
			payments = append(payments, p)
		}
	}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, DashboardResponse{
		Today:          today,
		TotalCollected: tuition.TotalCollected(payments),
		TotalOverdue:   tuition.OverdueTotal(h.catalog, students, today),
		ActiveStudents: tuition.CountActive(students),
		RevenueByPlan:  tuition.RevenueByPlan(students, payments),
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps engine errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case tuition.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	case tuition.IsClientError(err):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

// toStudent converts a validated request into a domain student. The
// checklist is left for the caller to set.
func (r StudentRequest) toStudent(id string) (tuition.Student, error) {
	birth, err := tuition.ParseDate(r.BirthDate)
	if err != nil {
		return tuition.Student{}, err
	}
	enrolled, err := tuition.ParseDate(r.EnrollmentDate)
	if err != nil {
		return tuition.Student{}, err
	}
	courseStart, err := tuition.ParseDate(r.CourseStartDate)
	if err != nil {
		return tuition.Student{}, err
	}

	return tuition.Student{
		ID:              id,
		FirstName:       r.FirstName,
		PaternalSurname: r.PaternalSurname,
		MaternalSurname: r.MaternalSurname,
		BirthDate:       birth,
		Street:          r.Street,
		StreetNumber:    r.StreetNumber,
		Neighborhood:    r.Neighborhood,
		Phone:           r.Phone,
		CURP:            r.CURP,
		Status:          tuition.StudentStatus(r.Status),
		StudyPlan:       tuition.PlanID(r.StudyPlan),
		EnrollmentDate:  enrolled,
		CourseStartDate: courseStart,
	}, nil
}
