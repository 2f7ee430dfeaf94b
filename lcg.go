package distrib

const (
	// LCG modulus (Mersenne prime 2^31-1).
	lcgM = 1<<31 - 1
	// LCG multiplier (MINSTD).
	lcgA = 48271
)

// LCG is a Lehmer linear congruential generator: state = state * 48271 mod (2^31-1).
//
// Each draw returns state/m. State never reaches zero, so output is in range (0, 1) on a grid of step 1/m, which
// is coarser than float64 precision and never yields 0 exactly. Consider MT19937 if that matters.
//
// LCG isn't thread-safe.
type LCG struct {
	state uint64
}

// NewLCG makes new generator seeded with seed.
//
// Generators with the same non-zero seed produce identical sequences. Zero seed means "no seed": the state will
// derive from current time mixed with one draw of DefaultSource.
func NewLCG(seed int64) *LCG {
	return newLCG(seed, nativeClock{}, DefaultSource())
}

// NewLCGWithClock makes new generator like NewLCG, but unseeded state derives from clock instead of current time.
func NewLCGWithClock(seed int64, clock Clock) *LCG {
	if clock == nil {
		clock = nativeClock{}
	}
	return newLCG(seed, clock, DefaultSource())
}

func newLCG(seed int64, clock Clock, entropy Source) *LCG {
	if seed == 0 {
		return &LCG{state: lcgEntropySeed(clock, entropy)}
	}
	return &LCG{state: lcgFoldSeed(seed)}
}

// Float64 advances the state and returns next value.
func (l *LCG) Float64() float64 {
	l.state = l.state * lcgA % lcgM
	return float64(l.state) / lcgM
}

// Fold seed to range (0, m). Zero state is a fixed point of the recurrence.
func lcgFoldSeed(seed int64) uint64 {
	s := seed % lcgM
	if s < 0 {
		s += lcgM
	}
	if s == 0 {
		s = lcgM - 1
	}
	return uint64(s)
}

func lcgEntropySeed(clock Clock, entropy Source) uint64 {
	const half = lcgM / 2
	ts := clock.Now().UnixMilli() % half
	if ts < 0 {
		ts += half
	}
	es := int64(lcgA*entropy.Float64()) % half
	s := (ts + es) % lcgM
	if s <= 0 {
		s += lcgM - 1
	}
	return uint64(s)
}
