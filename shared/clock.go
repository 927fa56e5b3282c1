package shared

import "time"

// IClock hands out wall time. Due-date math goes through this so tests
// can pin the clock wherever they need it.
type IClock interface {
	Now() time.Time
}

type sysClock struct{}

func NewClock() IClock {
	return &sysClock{}
}

func (c *sysClock) Now() time.Time {
	return time.Now()
}
