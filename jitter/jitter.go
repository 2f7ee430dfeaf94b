// Package jitter provides randomized variations of retry intervals.
package jitter

import (
	"sync"
	"time"

	"github.com/koykov/distrib/rng"
)

// Jitter describes interval randomizer.
type Jitter interface {
	Apply(interval time.Duration) time.Duration
}

// Set up default pool if nothing provided.
func initPool(once *sync.Once, pool **rng.Pool) {
	once.Do(func() {
		if *pool == nil {
			*pool = &rng.Pool{}
		}
	})
}
