/*
aggregate.go - Overdue and revenue aggregations (dashboard read path)

PURPOSE:
  Rolls schedule + checklist state across the whole student collection into
  the dashboard numbers: total overdue, total collected, and revenue by
  plan. Pure reads; "today" is always an explicit parameter so the numbers
  are reproducible in tests.

OVERDUE RULE:
  An item counts as overdue when it is unmarked in the checklist and its due
  date is strictly before today, compared as calendar days. Only Active
  students with a course start date qualify.
*/
package tuition

// OverdueItem is one unpaid due whose date has passed.
type OverdueItem struct {
	StudentID string `json:"studentId"`
	Label     string `json:"label"`
	DueDate   Date   `json:"dueDate"`
	Cost      Money  `json:"cost"`
}

// OverdueReport lists every overdue item for active students with a set
// course start date, ordered per student (enrollment first, then schedule
// order). Unknown plans are skipped: a stale document must not take the
// dashboard down.
func OverdueReport(catalog *Catalog, students []Student, today Date) []OverdueItem {
	var items []OverdueItem
	for _, student := range students {
		if student.Status != StudentActive || student.CourseStartDate.IsZero() {
			continue
		}
		cfg, err := catalog.Get(student.StudyPlan)
		if err != nil {
			continue
		}

		enrollmentDue := DueDate(student.CourseStartDate, cfg, ItemEnrollment, 0)
		if !student.PlanStatus.Enrollment && enrollmentDue.Before(today) {
			items = append(items, OverdueItem{
				StudentID: student.ID,
				Label:     "Inscripción",
				DueDate:   enrollmentDue,
				Cost:      cfg.Prices.Enrollment,
			})
		}

		for _, item := range GenerateSchedule(student.CourseStartDate, cfg) {
			if !student.PlanStatus.ItemPaid(item.Index) && item.DueDate.Before(today) {
				items = append(items, OverdueItem{
					StudentID: student.ID,
					Label:     item.Label,
					DueDate:   item.DueDate,
					Cost:      item.Cost,
				})
			}
		}
	}
	return items
}

// OverdueTotal sums the costs of every overdue item.
func OverdueTotal(catalog *Catalog, students []Student, today Date) Money {
	total := Money{}
	for _, item := range OverdueReport(catalog, students, today) {
		total = total.Add(item.Cost)
	}
	return total
}

// TotalCollected sums all Paid payment amounts.
func TotalCollected(payments []Payment) Money {
	total := Money{}
	for _, p := range payments {
		if p.Status == PaymentPaid {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// RevenueByPlan sums Paid payment amounts per study plan, restricted to
// payments whose payer is a currently Active student.
func RevenueByPlan(students []Student, payments []Payment) map[PlanID]Money {
	byID := make(map[string]Student, len(students))
	for _, s := range students {
		byID[s.ID] = s
	}

	revenue := make(map[PlanID]Money)
	for _, p := range payments {
		if p.Status != PaymentPaid {
			continue
		}
		student, ok := byID[p.StudentID]
		if !ok || student.Status != StudentActive {
			continue
		}
		revenue[student.StudyPlan] = revenue[student.StudyPlan].Add(p.Amount)
	}
	return revenue
}

// CountActive returns how many students are currently Active.
func CountActive(students []Student) int {
	n := 0
	for _, s := range students {
		if s.Status == StudentActive {
			n++
		}
	}
	return n
}
