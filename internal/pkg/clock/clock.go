// Package clock abstracts the current time for timestamps and render timing
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/ducttape-items/internal/pkg/clock Clock

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// Real reads the system clock
type Real struct{}

// Now returns time.Now
func (Real) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return Real{}
}

// Fixed always reports At
type Fixed struct {
	At time.Time
}

// Now returns At
func (c *Fixed) Now() time.Time {
	return c.At
}
