package jitter

import (
	"sync"
	"time"

	"github.com/koykov/distrib/rng"
)

// Full returns random value of [0...interval).
type Full struct {
	Pool *rng.Pool
	once sync.Once
}

func (j *Full) Apply(interval time.Duration) time.Duration {
	initPool(&j.once, &j.Pool)
	p := j.Pool.Get()
	defer j.Pool.Put(p)
	return time.Duration(p.IntN(int(interval)))
}
