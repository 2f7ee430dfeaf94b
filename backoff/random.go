// Package backoff provides randomized retry delays.
package backoff

import (
	"sync"
	"time"

	"github.com/koykov/distrib/rng"
)

// Backoff describes retry delay policy.
type Backoff interface {
	Next(interval time.Duration, attempt int) time.Duration
}

// Random (aka Full Jitter) applies to interval random value according formula `value/2 + random[0...value)`.
// If Base is set, value is the Base delay of the attempt, otherwise the interval itself.
type Random struct {
	Base Backoff
	Pool *rng.Pool
	once sync.Once
}

func (b *Random) Next(interval time.Duration, attempt int) time.Duration {
	b.once.Do(func() {
		if b.Pool == nil {
			b.Pool = &rng.Pool{}
		}
	})
	if b.Base != nil {
		interval = b.Base.Next(interval, attempt)
	}
	p := b.Pool.Get()
	defer b.Pool.Put(p)
	return interval/2 + time.Duration(p.IntN(int(interval)))
}
