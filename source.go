package distrib

import "math/rand/v2"

// Source describes uniform random source.
//
// Source isn't designed for concurrent use: stateful implementations mutate internal state on every draw without
// synchronization. See rng.Pool for concurrent consumers.
type Source interface {
	// Float64 returns next draw in range [0, 1).
	Float64() float64
}

// SourceFunc is a function adapter of Source.
type SourceFunc func() float64

func (fn SourceFunc) Float64() float64 {
	return fn()
}

// Uint64Source describes generator of 64-bit integers, like gonum's prng or math/rand.Source64.
type Uint64Source interface {
	Uint64() uint64
}

type uint64Source struct {
	src Uint64Source
}

// FromUint64 makes Source from integer generator. Uses top 53 bits of each value.
func FromUint64(src Uint64Source) Source {
	return uint64Source{src: src}
}

func (s uint64Source) Float64() float64 {
	return float64(s.src.Uint64()>>11) / (1 << 53)
}

// nativeSource delegates to global generator of the runtime.
type nativeSource struct{}

func (nativeSource) Float64() float64 {
	return rand.Float64()
}

// DefaultSource returns source backed by the runtime global generator. Has no seeding control.
func DefaultSource() Source {
	return nativeSource{}
}
