// Package period computes the rolling time window a ranking run covers.
package period

import (
	"fmt"
	"time"
)

type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

// Window is the interval [Start, End] a ranking run covers. Both ends are
// inclusive, matching how the persisted rankings have always been cut.
type Window struct {
	Start time.Time
	End   time.Time
	Days  int
}

// All lists the periods in refresh order.
func All() []Period {
	return []Period{Daily, Weekly, Monthly}
}

func (p Period) String() string {
	return string(p)
}

// Days returns the window length in whole days.
func (p Period) Days() int {
	switch p {
	case Daily:
		return 1
	case Weekly:
		return 7
	case Monthly:
		return 30
	default:
		// An unknown tag is a programming error, not a runtime condition.
		panic(fmt.Sprintf("unknown ranking period: %q", string(p)))
	}
}

// Resolve computes the window ending at now for the given period.
func Resolve(p Period, now time.Time) Window {
	days := p.Days()
	return Window{
		Start: now.Add(-time.Duration(days) * 24 * time.Hour),
		End:   now,
		Days:  days,
	}
}

// Contains reports whether t falls inside the window. Both boundary
// instants are included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
