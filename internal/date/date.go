// Package date provides a calendar date with day granularity.
//
// Streaks, budgets and the transaction log all key on calendar days, so a
// bare time.Time is the wrong currency: it drags a clock and a timezone
// through the persistence boundary. Date normalizes everything to a civil
// day and marshals as an ISO 8601 date string.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the canonical string representation, ISO 8601.
const Format = "2006-01-02"

// Date represents a civil calendar date with no time-of-day component.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date in local time.
func Today() Date { return New(time.Now().Date()) }

// Parse parses an ISO 8601 date string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want %q: %w", s, Format, err)
	}

	return New(t.Date()), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// static tables.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// time returns the canonical time.Time for the date, midnight UTC.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Time returns the canonical time.Time for the date, midnight UTC. Used
// at storage boundaries that want DATE columns.
func (d Date) Time() time.Time { return d.time() }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Year returns the year.
func (d Date) Year() int { return d.y }

// Month returns the month.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Add returns the date shifted by the given number of days.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// DaysUntil returns the number of whole days from d to x. Negative when x
// is before d.
func (d Date) DaysUntil(x Date) int {
	return int(x.time().Sub(d.time()) / (24 * time.Hour))
}

// MonthKey returns the year-month key ("2025-07") used for monthly rollups.
func (d Date) MonthKey() string { return d.time().Format("2006-01") }

// String formats the date in ISO 8601.
func (d Date) String() string { return d.time().Format(Format) }

// MarshalJSON encodes the date as an ISO 8601 string. The zero date
// encodes as "" so unset dates survive a store roundtrip.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}

	return json.Marshal(d.String())
}

// UnmarshalJSON decodes an ISO 8601 string. "" and null decode to the
// zero date.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		*d = Date{}
		return nil
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

var (
	_ json.Marshaler   = (*Date)(nil)
	_ json.Unmarshaler = (*Date)(nil)
)
