package distrib

import "gonum.org/v1/gonum/mathext/prng"

// NewMT19937 makes Mersenne Twister source seeded with seed.
func NewMT19937(seed uint64) Source {
	mt := prng.NewMT19937()
	mt.Seed(seed)
	return FromUint64(mt)
}
