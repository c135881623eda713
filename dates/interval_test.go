package dates

import (
	"testing"
	"time"
)

func TestIsWithin(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2015, 12, 17, h, m, 0, 0, time.UTC)
	}
	outer := Interval{Start: at(10, 0), End: at(10, 30)}

	tests := []struct {
		name  string
		inner Interval
		want  bool
	}{
		{"extends before start", Interval{at(9, 30), at(10, 0)}, false},
		{"extends past end", Interval{at(10, 15), at(10, 45)}, false},
		{"strictly inside", Interval{at(10, 5), at(10, 25)}, true},
		{"same interval", outer, true},
		{"touching start", Interval{at(10, 0), at(10, 10)}, true},
		{"touching end", Interval{at(10, 20), at(10, 30)}, true},
		{"covers outer", Interval{at(9, 0), at(11, 0)}, false},
		{"disjoint", Interval{at(11, 0), at(11, 30)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWithin(tt.inner, outer); got != tt.want {
				t.Fatalf("IsWithin(%v, %v) = %v, want %v", tt.inner, outer, got, tt.want)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	i := Interval{
		Start: time.Date(2016, 12, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2016, 12, 22, 0, 0, 0, 0, time.UTC),
	}

	if !i.Contains(i.Start) || !i.Contains(i.End) {
		t.Fatalf("edges should be contained")
	}
	if i.Contains(i.End.Add(time.Nanosecond)) {
		t.Fatalf("time after end should not be contained")
	}
	if i.Days() != 7 {
		t.Fatalf("expected 7 days but got %d", i.Days())
	}
	if i.String() != "[2016-12-15 - 2016-12-22]" {
		t.Fatalf("unexpected string: %s", i.String())
	}
}
