package core

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the only date format accepted from the export and the only
// format written back out.
const DateLayout = "01/02/2006"

// Date represents a Gregorian calendar date with no time-of-day component.
// All dates are anchored at midnight UTC so day arithmetic is exact.
type Date time.Time

// strictDateShape enforces zero-padded MM/DD/YYYY before calendar validation.
// time.Parse alone would accept single-digit months and days.
var strictDateShape = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// NewDate creates a date from its calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a strict MM/DD/YYYY string into a Date. Both the shape
// (two-digit month and day, four-digit year, slash separators) and the
// calendar validity (days-in-month, leap years) are checked.
func ParseDate(s string) (Date, error) {
	if !strictDateShape.MatchString(s) {
		return Date{}, fmt.Errorf("%w: %q does not match MM/DD/YYYY", ErrInvalidDate, s)
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
	}
	return Date(t), nil
}

// Time returns the underlying time.Time.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// Format renders the date as MM/DD/YYYY.
func (d Date) Format() string {
	return d.Time().Format(DateLayout)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// DayName returns the English weekday name, e.g. "Sunday".
func (d Date) DayName() string {
	return d.Weekday().String()
}

// AddDays returns the date n days forward (or backward for negative n).
func (d Date) AddDays(n int) Date {
	return Date(d.Time().AddDate(0, 0, n))
}

// Before returns true if d is strictly before u.
func (d Date) Before(u Date) bool {
	return d.Time().Before(u.Time())
}

// After returns true if d is strictly after u.
func (d Date) After(u Date) bool {
	return d.Time().After(u.Time())
}

// Equal returns true if both dates fall on the same calendar day.
func (d Date) Equal(u Date) bool {
	return d.Time().Equal(u.Time())
}

// IsZero checks if the date is the zero value.
func (d Date) IsZero() bool {
	return d.Time().IsZero()
}

// DaysBetween returns the number of whole days from a to b. Negative when
// b precedes a.
func DaysBetween(a, b Date) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}

// String implements fmt.Stringer using the export format.
func (d Date) String() string {
	return d.Format()
}
