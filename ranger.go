// Package dateranger keeps a start/end date pair consistent under optional outer bounds
// and a minimum gap in days.
//
// Every assignment to an endpoint is clamped into the bounds, committed, and then the other
// endpoint is moved as little as possible so that start <= end and the gap is at least
// MinDelta days. Invalid input is never an error: a zero time is ignored and out of range
// values are clamped. If MaxDate - MinDate is shorter than MinDelta the bounds take priority
// and the range spans the whole [MinDate, MaxDate] window; DeltaHonored and the Try variants
// report that case.
//
// A Ranger is owned by one goroutine at a time. Use Locked to share one.
package dateranger

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hoyle1974/dateranger/dates"
	"github.com/hoyle1974/dateranger/misc"
	"github.com/hoyle1974/dateranger/telemetry"
)

// Interval is re-exported so callers of IsWithin need not import dates.
type Interval = dates.Interval

// Options configures a Ranger. Zero values mean "not set".
type Options struct {
	StartDate time.Time // defaults to Now()
	EndDate   time.Time // defaults to Now()
	MinDate   time.Time
	MaxDate   time.Time
	MinDelta  int // days, negative is treated as 0

	Now     func() time.Time
	Logger  telemetry.Logger
	Metrics telemetry.Metrics
}

type stats struct {
	clamped    int64
	adjusted   int64
	notHonored int64
}

// Ranger holds a start and end date that always satisfy the bounds it was built with.
// Create one with New; the zero value is not usable.
type Ranger struct {
	_       misc.NoCopy
	id      uuid.UUID
	bounds  bounds
	start   time.Time
	end     time.Time
	logger  telemetry.Logger
	metrics telemetry.Metrics
	stats   stats
}

// New builds a Ranger from opts. Missing endpoints default to opts.Now(), both are clamped
// into [MinDate, MaxDate], and then the start is applied as if it had just been set.
func New(opts Options) *Ranger {
	r := &Ranger{
		id:      uuid.New(),
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
	if r.logger == nil {
		r.logger = telemetry.NOPLogger{}
	}
	if r.metrics == nil {
		r.metrics = telemetry.NOPMetrics{}
	}

	delta := opts.MinDelta
	if delta < 0 {
		r.logger.Info(fmt.Sprintf("ranger %s: negative min delta %d treated as 0", r.id, delta))
		delta = 0
	}
	r.bounds = bounds{min: opts.MinDate, max: opts.MaxDate, delta: delta}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	start, end := opts.StartDate, opts.EndDate
	if start.IsZero() || end.IsZero() {
		n := now()
		if start.IsZero() {
			start = n
		}
		if end.IsZero() {
			end = n
		}
	}

	r.start = r.bounds.clamp(start)
	r.end = r.bounds.clamp(end)
	r.onStartDateSet(r.start)
	r.report()

	return r
}

// ID identifies the ranger in logs.
func (r *Ranger) ID() uuid.UUID { return r.id }

// StartDate returns the current start, never after EndDate.
func (r *Ranger) StartDate() time.Time { return r.start }

// EndDate returns the current end, never before StartDate.
func (r *Ranger) EndDate() time.Time { return r.end }

// SetStartDate assigns the start and drags the end along if needed. A zero time is ignored.
func (r *Ranger) SetStartDate(t time.Time) {
	if t.IsZero() {
		return
	}
	r.onStartDateSet(t)
	r.report()
}

// SetEndDate assigns the end and drags the start along if needed. A zero time is ignored.
func (r *Ranger) SetEndDate(t time.Time) {
	if t.IsZero() {
		return
	}
	r.onEndDateSet(t)
	r.report()
}

// TrySetStartDate behaves exactly like SetStartDate. The state is always updated; the
// returned error, if any, wraps ErrDeltaNotHonored.
func (r *Ranger) TrySetStartDate(t time.Time) error {
	r.SetStartDate(t)
	return r.deltaErr()
}

// TrySetEndDate is the end side of TrySetStartDate.
func (r *Ranger) TrySetEndDate(t time.Time) error {
	r.SetEndDate(t)
	return r.deltaErr()
}

// DeltaHonored reports whether the current gap is at least MinDelta days.
func (r *Ranger) DeltaHonored() bool {
	return r.bounds.delta <= 0 || dates.DaysBetween(r.end, r.start) >= r.bounds.delta
}

func (r *Ranger) Interval() Interval {
	return Interval{Start: r.start, End: r.end}
}

// Bounds returns the configuration the ranger was built with.
func (r *Ranger) Bounds() (minDate, maxDate time.Time, minDelta int) {
	return r.bounds.min, r.bounds.max, r.bounds.delta
}

func (r *Ranger) String() string {
	return fmt.Sprintf("Ranger(%s %s)", r.id, r.Interval())
}

// IsWithin reports whether inner lies entirely inside outer, edges included.
func IsWithin(inner, outer Interval) bool {
	return dates.IsWithin(inner, outer)
}

func (r *Ranger) deltaErr() error {
	if r.DeltaHonored() {
		return nil
	}
	err := newDeltaError(r.Interval(), r.bounds.delta)
	if !r.bounds.reconcilable() {
		err = errors.Mark(errors.Wrapf(err, "bounds %s too narrow", Interval{Start: r.bounds.min, End: r.bounds.max}), ErrBoundsTooNarrow)
	}
	return err
}

func (r *Ranger) report() {
	if !r.DeltaHonored() {
		r.stats.notHonored++
		if r.bounds.reconcilable() {
			// Only narrow bounds may cost the delta.
			r.logger.Error(fmt.Sprintf("ranger %s: delta lost inside wide bounds", r.id), r.deltaErr())
		} else {
			r.logger.Info(fmt.Sprintf("ranger %s: bounds [%s, %s] leave only %d of %d days",
				r.id, format(r.bounds.min), format(r.bounds.max), dates.DaysBetween(r.end, r.start), r.bounds.delta))
		}
	}
	r.metrics.SetCount("ranger.clamped", r.stats.clamped)
	r.metrics.SetCount("ranger.adjusted", r.stats.adjusted)
	r.metrics.SetCount("ranger.delta_not_honored", r.stats.notHonored)
	r.metrics.SetGuage("ranger.span_days", float64(dates.DaysBetween(r.end, r.start)))
}
