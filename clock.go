package distrib

import "time"

// Clock represents clock interface to get current time.
// Uses to derive seed of unseeded generators.
type Clock interface {
	Now() time.Time
}

type nativeClock struct{}

func (c nativeClock) Now() time.Time {
	return time.Now()
}
