package jitter

import (
	"sync"
	"time"

	"github.com/koykov/distrib/rng"
)

// Decorrelated grows interval randomly from previous value: next = random[Min...prev*3], capped with Max.
// The first call uses given interval as previous value.
//
// Decorrelated keeps state, so isn't designed to share between retry sequences.
type Decorrelated struct {
	Pool     *rng.Pool
	Min, Max time.Duration

	once sync.Once
	mux  sync.Mutex
	prev time.Duration
}

func (j *Decorrelated) Apply(interval time.Duration) time.Duration {
	initPool(&j.once, &j.Pool)
	j.mux.Lock()
	defer j.mux.Unlock()
	if j.prev == 0 {
		j.prev = interval
	}
	hi := 3 * j.prev
	if hi < j.Min {
		hi = j.Min
	}
	p := j.Pool.Get()
	next := time.Duration(p.IntBetween(int(j.Min), int(hi)))
	j.Pool.Put(p)
	if j.Max > 0 && next > j.Max {
		next = j.Max
	}
	j.prev = next
	return next
}

// Reset drops accumulated state.
func (j *Decorrelated) Reset() {
	j.mux.Lock()
	j.prev = 0
	j.mux.Unlock()
}
