package dateranger

import (
	"time"

	"github.com/hoyle1974/dateranger/dates"
)

// bounds is the immutable part of a ranger. A zero min or max means that side is open,
// and a zero delta means the endpoints may meet.
type bounds struct {
	min   time.Time
	max   time.Time
	delta int
}

func (b bounds) hasMin() bool { return !b.min.IsZero() }
func (b bounds) hasMax() bool { return !b.max.IsZero() }

// clamp forces t into [min, max]. The min side wins if the two disagree.
func (b bounds) clamp(t time.Time) time.Time {
	if b.hasMin() && dates.Before(t, b.min) {
		return b.min
	}
	if b.hasMax() && dates.After(t, b.max) {
		return b.max
	}
	return t
}

// capStart keeps a new start at least delta days below max so the end has room to follow.
func (b bounds) capStart(t time.Time) time.Time {
	if !b.hasMax() || b.delta <= 0 {
		return t
	}
	latest := dates.SubtractDays(b.max, b.delta)
	if dates.After(t, latest) {
		return latest
	}
	return t
}

// floorEnd keeps a new end at least delta days above min so the start has room to follow.
func (b bounds) floorEnd(t time.Time) time.Time {
	if !b.hasMin() || b.delta <= 0 {
		return t
	}
	earliest := dates.AddDays(b.min, b.delta)
	if dates.Before(t, earliest) {
		return earliest
	}
	return t
}

// reconcilable reports whether the bounds leave room for a full delta.
func (b bounds) reconcilable() bool {
	if b.delta <= 0 || !b.hasMin() || !b.hasMax() {
		return true
	}
	return dates.DaysBetween(b.max, b.min) >= b.delta
}
