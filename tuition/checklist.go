package tuition

// =============================================================================
// PAYMENT PLAN STATUS - Per-student checklist of retired items
// =============================================================================

// PaymentPlanStatus records which dues a student has retired: the one-off
// enrollment fee plus one flag per schedule item, index-aligned with the
// generated schedule. Its Schedule length must always match the FeeCount of
// the student's current plan; changing plans resets it via
// NewPaymentPlanStatus.
//
// Updates are value-style: the With* methods return a new checklist and
// leave the receiver untouched, so the allocation engine can hand back a
// replacement without aliasing the stored one.
type PaymentPlanStatus struct {
	Enrollment bool   `json:"enrollment"`
	Schedule   []bool `json:"schedule"`
}

// NewPaymentPlanStatus returns the all-false checklist for a plan. Only the
// item count matters here, so no anchor date is needed.
func NewPaymentPlanStatus(cfg StudyPlanConfig) PaymentPlanStatus {
	return PaymentPlanStatus{
		Enrollment: false,
		Schedule:   make([]bool, cfg.FeeCount),
	}
}

// Clone returns a deep copy.
func (s PaymentPlanStatus) Clone() PaymentPlanStatus {
	out := PaymentPlanStatus{Enrollment: s.Enrollment}
	out.Schedule = make([]bool, len(s.Schedule))
	copy(out.Schedule, s.Schedule)
	return out
}

// WithEnrollmentPaid returns a copy with the enrollment fee marked retired.
func (s PaymentPlanStatus) WithEnrollmentPaid() PaymentPlanStatus {
	out := s.Clone()
	out.Enrollment = true
	return out
}

// WithItemPaid returns a copy with schedule item i marked retired.
// Out-of-range indices are ignored (stale checklist against a shrunk plan).
func (s PaymentPlanStatus) WithItemPaid(i int) PaymentPlanStatus {
	out := s.Clone()
	if i >= 0 && i < len(out.Schedule) {
		out.Schedule[i] = true
	}
	return out
}

// ItemPaid reports whether schedule item i is retired.
func (s PaymentPlanStatus) ItemPaid(i int) bool {
	return i >= 0 && i < len(s.Schedule) && s.Schedule[i]
}

// Complete reports whether every due, enrollment included, is retired.
func (s PaymentPlanStatus) Complete() bool {
	if !s.Enrollment {
		return false
	}
	for _, paid := range s.Schedule {
		if !paid {
			return false
		}
	}
	return true
}

// Matches reports whether the checklist length is consistent with a plan
// config. Used to detect documents written against an older catalog.
func (s PaymentPlanStatus) Matches(cfg StudyPlanConfig) bool {
	return len(s.Schedule) == cfg.FeeCount
}
