package domain

import (
	"fmt"
	"time"
)

// MonthFormat is the textual layout of a Month (yyyy-mm)
const MonthFormat = "2006-01"

// DateFormat is the textual layout of operation and inception dates
const DateFormat = "2006-01-02"

// Month identifies a calendar month. It is comparable and can be used as a map key.
// The zero Month means "not set".
type Month struct {
	year  int
	month time.Month
}

// NewMonth returns a normalized Month (month overflow rolls into the year)
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{year: t.Year(), month: t.Month()}
}

// MonthOf returns the month containing t. The day of month is irrelevant.
func MonthOf(t time.Time) Month {
	return Month{year: t.Year(), month: t.Month()}
}

// ParseMonth parses a yyyy-mm string
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q (expected yyyy-mm): %w", s, err)
	}
	return MonthOf(t), nil
}

// Year returns the calendar year
func (m Month) Year() int { return m.year }

// Month returns the calendar month
func (m Month) Month() time.Month { return m.month }

// IsZero reports whether m is the zero Month
func (m Month) IsZero() bool { return m.year == 0 && m.month == 0 }

// Time returns the first day of the month at midnight UTC
func (m Month) Time() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns the last calendar day of the month at midnight UTC
func (m Month) LastDay() time.Time {
	return m.AddMonths(1).Time().AddDate(0, 0, -1)
}

// AddMonths returns the month n months after m (n may be negative)
func (m Month) AddMonths(n int) Month {
	return NewMonth(m.year, m.month+time.Month(n))
}

// Before reports whether m is strictly before x
func (m Month) Before(x Month) bool {
	return m.index() < x.index()
}

// After reports whether m is strictly after x
func (m Month) After(x Month) bool {
	return m.index() > x.index()
}

// MonthsBetween returns the number of months from a to b (negative if b is before a)
func MonthsBetween(a, b Month) int {
	return b.index() - a.index()
}

// String formats the month as yyyy-mm
func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return m.Time().Format(MonthFormat)
}

// MarshalText implements encoding.TextMarshaler
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Month) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*m = Month{}
		return nil
	}
	parsed, err := ParseMonth(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Month) index() int {
	return m.year*12 + int(m.month) - 1
}

// MaxMonth returns the later of a and b. The zero Month never wins over a set one.
func MaxMonth(a, b Month) Month {
	if a.IsZero() {
		return b
	}
	if b.IsZero() || !b.After(a) {
		return a
	}
	return b
}
