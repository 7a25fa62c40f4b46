package tuition

import (
	"bytes"
	"fmt"
	"time"
)

// =============================================================================
// DATE - Calendar date, no time-of-day component
// =============================================================================

// Date is a calendar day. All comparisons happen at day granularity: the
// string "2024-03-01" means that literal day no matter the caller's time
// zone, so everything is pinned to UTC midnight internally. A zero Date
// represents "unset" (students without a course start date).
type Date struct {
	Time time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string. An empty string parses to the zero
// Date (unset), matching the source documents where courseStartDate may be "".
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	return Date{Time: t}, nil
}

// Today returns the current calendar day. Core functions never call this;
// "today" is always injected by the caller.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Comparison
func (d Date) Before(other Date) bool { return d.normalize().Before(other.normalize()) }
func (d Date) After(other Date) bool  { return d.normalize().After(other.normalize()) }
func (d Date) Equal(other Date) bool  { return d.normalize().Equal(other.normalize()) }
func (d Date) IsZero() bool           { return d.Time.IsZero() }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{Time: d.normalize().AddDate(0, 0, n)} }

// AddMonths adds n calendar months keeping the day-of-month, clamped to the
// last day of the target month when the source day does not exist there
// (Jan 31 + 1 month = Feb 29 in a leap year, Feb 28 otherwise). Note that
// time.Time.AddDate normalizes overflow forward instead, which is exactly
// the drift this method exists to avoid.
func (d Date) AddMonths(n int) Date {
	year, month, day := d.normalize().Date()
	firstOfTarget := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return NewDate(firstOfTarget.Year(), firstOfTarget.Month(), day)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.normalize().Format(dateLayout)
}

// MarshalJSON emits "YYYY-MM-DD", or "" for an unset date.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
