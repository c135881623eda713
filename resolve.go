package dateranger

import (
	"fmt"
	"time"

	"github.com/hoyle1974/dateranger/dates"
)

// When the bounds are narrower than the delta the bounds win: each endpoint is clamped
// last, so the result is the whole [min, max] span and the delta is left short.

func (r *Ranger) onStartDateSet(newStart time.Time) {
	candidate := r.bounds.clamp(r.bounds.capStart(newStart))
	if !candidate.Equal(newStart) {
		r.stats.clamped++
		r.logger.Debug(fmt.Sprintf("ranger %s: start %s clamped to %s", r.id, format(newStart), format(candidate)))
	}
	r.start = candidate

	end := dates.Max(r.end, r.start)
	if r.bounds.delta > 0 && dates.DaysBetween(end, r.start) < r.bounds.delta {
		end = dates.AddDays(r.start, r.bounds.delta)
	}
	end = r.bounds.clamp(end)

	if !end.Equal(r.end) {
		r.stats.adjusted++
		r.logger.Debug(fmt.Sprintf("ranger %s: end moved from %s to %s", r.id, format(r.end), format(end)))
	}
	r.end = end
}

func (r *Ranger) onEndDateSet(newEnd time.Time) {
	candidate := r.bounds.clamp(r.bounds.floorEnd(newEnd))
	if !candidate.Equal(newEnd) {
		r.stats.clamped++
		r.logger.Debug(fmt.Sprintf("ranger %s: end %s clamped to %s", r.id, format(newEnd), format(candidate)))
	}
	r.end = candidate

	start := dates.Min(r.start, r.end)
	if r.bounds.delta > 0 && dates.DaysBetween(r.end, start) < r.bounds.delta {
		start = dates.SubtractDays(r.end, r.bounds.delta)
	}
	start = r.bounds.clamp(start)

	if !start.Equal(r.start) {
		r.stats.adjusted++
		r.logger.Debug(fmt.Sprintf("ranger %s: start moved from %s to %s", r.id, format(r.start), format(start)))
	}
	r.start = start
}

func format(t time.Time) string {
	return t.Format(time.RFC3339)
}
