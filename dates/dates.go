// Package dates holds the day level arithmetic the range engine is written against.
//
// Days are calendar days: adding a day keeps the wall clock, and the difference between
// two times ignores any change in zone offset between them, so a span that crosses a
// daylight saving transition still counts as a whole number of days.
package dates

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Layout is the short form used for parsing and printing dates.
const Layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

var ErrInvalidDate = errors.New("invalid date")

func AddDays(t time.Time, n int) time.Time {
	if n == 0 {
		return t
	}
	return t.AddDate(0, 0, n)
}

func SubtractDays(t time.Time, n int) time.Time {
	return AddDays(t, -n)
}

// DaysBetween returns the whole days in a - b, truncated toward zero. It works on wall
// clock seconds rather than a time.Duration, which saturates at about 292 years.
func DaysBetween(a, b time.Time) int {
	_, offA := a.Zone()
	_, offB := b.Zone()
	secs := (a.Unix() + int64(offA)) - (b.Unix() + int64(offB))
	return int(secs / secondsPerDay)
}

func Before(a, b time.Time) bool { return a.Before(b) }
func After(a, b time.Time) bool  { return a.After(b) }

// SameOrBetween reports whether min <= t <= max.
func SameOrBetween(t, min, max time.Time) bool {
	return (t.Equal(min) || t.After(min)) &&
		(t.Equal(max) || t.Before(max))
}

func SameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

func Min(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func Max(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// ParseDate accepts either a bare date (2006-01-02, read as UTC midnight) or an RFC3339
// timestamp. An empty string parses to the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(Layout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.Mark(errors.Wrapf(err, "can not parse date %q", s), ErrInvalidDate)
	}
	return t, nil
}
