// Package month parses "YYYY-MM" strings and turns them into half-open UTC windows.
package month

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const Layout = "2006-01"

var (
	pattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

	ErrInvalid = errors.New("month must be in YYYY-MM format")
)

// Month is a calendar month in UTC.
type Month struct {
	Year  int
	Month time.Month
}

// Parse accepts exactly four digits, a dash and two digits naming a real month.
func Parse(s string) (Month, error) {
	if !pattern.MatchString(s) {
		return Month{}, ErrInvalid
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Month{}, ErrInvalid
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// Valid reports whether s is an acceptable month.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Of returns the month t falls in, evaluated in UTC.
func Of(t time.Time) Month {
	u := t.UTC()
	return Month{Year: u.Year(), Month: u.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start is the first instant of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the first instant of the following month; the window is [Start, End).
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

func (m Month) Window() (time.Time, time.Time) {
	return m.Start(), m.End()
}

func (m Month) Contains(t time.Time) bool {
	u := t.UTC()
	return !u.Before(m.Start()) && u.Before(m.End())
}
