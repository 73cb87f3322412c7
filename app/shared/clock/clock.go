// Package clock abstracts the current time for code that parses relative input.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Anchor always returns the same instant.
type Anchor struct {
	At time.Time
}

func (a Anchor) Now() time.Time { return a.At }
