package jitter

import (
	"sync"
	"time"

	"github.com/koykov/distrib/rng"
)

// Half returns half of original interval and random value of [0...half).
type Half struct {
	Pool *rng.Pool
	once sync.Once
}

func (j *Half) Apply(interval time.Duration) time.Duration {
	initPool(&j.once, &j.Pool)
	p := j.Pool.Get()
	defer j.Pool.Put(p)
	half := interval / 2
	return half + time.Duration(p.IntN(int(half)))
}
