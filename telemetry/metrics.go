package telemetry

import (
	"fmt"
	"sync"
)

// This package is how a ranger reports what it did.  By default they are no-ops.
// But a user can provide an implementation if they want their metrics to go somewhere.

type Metrics interface {
	SetCount(key string, value int64)
	SetGuage(key string, value float64)
}

type NOPMetrics struct {
}

func (n NOPMetrics) SetCount(key string, value int64) {
}
func (n NOPMetrics) SetGuage(key string, value float64) {
}

// MemoryMetrics keeps the last value written for every key.
type MemoryMetrics struct {
	lock   sync.Mutex
	counts map[string]int64
	guages map[string]float64
}

func NewMemoryMetrics() *MemoryMetrics {
	return &MemoryMetrics{
		counts: map[string]int64{},
		guages: map[string]float64{},
	}
}

func (m *MemoryMetrics) SetCount(key string, value int64) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.counts[key] = value
}

func (m *MemoryMetrics) SetGuage(key string, value float64) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.guages[key] = value
}

func (m *MemoryMetrics) Count(key string) int64 {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.counts[key]
}

func (m *MemoryMetrics) Guage(key string) float64 {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.guages[key]
}

func (m *MemoryMetrics) String() string {
	m.lock.Lock()
	defer m.lock.Unlock()
	return fmt.Sprintf("Metrics(Counts: %v, Guages: %v)", m.counts, m.guages)
}
