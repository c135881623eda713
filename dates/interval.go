package dates

import (
	"fmt"
	"time"
)

// Interval is a closed span of time. Nothing forces Start <= End.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Contains(timestamp time.Time) bool {
	return SameOrBetween(timestamp, i.Start, i.End)
}

// Days is the whole number of days from Start to End.
func (i Interval) Days() int {
	return DaysBetween(i.End, i.Start)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s - %s]", i.Start.Format(Layout), i.End.Format(Layout))
}

// IsWithin reports whether inner lies entirely inside outer. Both edges are inclusive.
func IsWithin(inner, outer Interval) bool {
	return !inner.Start.Before(outer.Start) && !inner.End.After(outer.End)
}
