package dateranger

import (
	"sync"
	"time"
)

// Locked serialises access to a Ranger that is shared between goroutines.
type Locked struct {
	lock   sync.Mutex
	ranger *Ranger
}

func NewLocked(opts Options) *Locked {
	return &Locked{ranger: New(opts)}
}

func (l *Locked) StartDate() time.Time {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.ranger.StartDate()
}

func (l *Locked) EndDate() time.Time {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.ranger.EndDate()
}

func (l *Locked) Interval() Interval {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.ranger.Interval()
}

func (l *Locked) SetStartDate(t time.Time) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.ranger.SetStartDate(t)
}

func (l *Locked) SetEndDate(t time.Time) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.ranger.SetEndDate(t)
}

func (l *Locked) TrySetStartDate(t time.Time) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.ranger.TrySetStartDate(t)
}

func (l *Locked) TrySetEndDate(t time.Time) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.ranger.TrySetEndDate(t)
}

// Update runs fn while holding the lock so several assignments land together.
func (l *Locked) Update(fn func(r *Ranger)) {
	l.lock.Lock()
	defer l.lock.Unlock()
	fn(l.ranger)
}
