package domain

import "time"

// Clock is the wall-clock source consulted by every time-dependent rule.
// Injected so maturity and window math is testable against fixed instants.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func NewSystemClock() Clock { return systemClock{} }
