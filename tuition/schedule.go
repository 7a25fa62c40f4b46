/*
schedule.go - Due-date arithmetic and schedule generation

PURPOSE:
  Turns (course start date, plan config) into the ordered list of dues a
  student owes. The schedule is derived data: it is recomputed every time it
  is needed and never persisted, so a catalog price change is reflected
  everywhere immediately.

DETERMINISM:
  GenerateSchedule is a pure function. The same start date and config always
  produce the same items, which is what lets the checklist be a plain
  index-aligned slice of booleans.
*/
package tuition

import "fmt"

// ItemType distinguishes the one-off enrollment due from the recurring fees.
type ItemType string

const (
	ItemEnrollment ItemType = "enrollment"
	ItemFee        ItemType = "fee"
)

// ScheduleItem is one recurring due of a student's plan.
type ScheduleItem struct {
	Index          int    `json:"index"`
	Label          string `json:"label"`
	DueDate        Date   `json:"dueDate"`
	IsReEnrollment bool   `json:"isReEnrollment"`
	Cost           Money  `json:"cost"`
}

// DueDate computes the due date of a single item.
//
//   - enrollment: due on the course start date itself, index ignored
//   - fee, monthly cadence: start + index calendar months, day-of-month
//     clamped to the target month's last day
//   - fee, weekly cadence: start + 7*index days
func DueDate(courseStart Date, cfg StudyPlanConfig, itemType ItemType, index int) Date {
	if itemType == ItemEnrollment {
		return courseStart
	}
	if cfg.FeeCadence == CadenceMonthly {
		return courseStart.AddMonths(index)
	}
	return courseStart.AddDays(7 * index)
}

// GenerateSchedule produces the full ordered list of recurring dues for a
// plan anchored at courseStart. Exactly cfg.FeeCount items, ascending by
// index and due date. Items at a re-enrollment index co-bill the
// re-enrollment fee and carry a running re-enrollment ordinal in the label
// ("Mensualidad 5 / Reinscripción 1").
//
// An unset courseStart yields an empty schedule: without an anchor there is
// nothing to date. Callers that only need the item count use the checklist
// constructor instead.
func GenerateSchedule(courseStart Date, cfg StudyPlanConfig) []ScheduleItem {
	if courseStart.IsZero() {
		return nil
	}

	schedule := make([]ScheduleItem, 0, cfg.FeeCount)
	reEnrollmentOrdinal := 0

	for i := 0; i < cfg.FeeCount; i++ {
		item := ScheduleItem{
			Index:   i,
			DueDate: DueDate(courseStart, cfg, ItemFee, i),
			Cost:    cfg.Prices.Fee,
		}
		if cfg.isReEnrollmentIndex(i) {
			reEnrollmentOrdinal++
			item.IsReEnrollment = true
			item.Cost = item.Cost.Add(cfg.Prices.ReEnrollment)
			item.Label = fmt.Sprintf("%s %d / Reinscripción %d", cfg.FeeCadence, i+1, reEnrollmentOrdinal)
		} else {
			item.Label = fmt.Sprintf("%s %d", cfg.FeeCadence, i+1)
		}
		schedule = append(schedule, item)
	}
	return schedule
}
