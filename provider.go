package distrib

import "math"

// MaxSafeInteger is the upper (exclusive) bound of Provider.Int.
// Greatest integer that float64 represents together with all its predecessors.
const MaxSafeInteger = 1<<53 - 1

// Provider derives distributions and array utilities from its uniform source.
//
// Provider owns the source exclusively and isn't thread-safe. Use one provider per goroutine or take them from
// rng.Pool.
type Provider struct {
	key string
	src Source
	mw  MetricsWriter
	l   Logger
}

// New makes provider over src. Nil src means DefaultSource.
func New(src Source) *Provider {
	return NewWithConfig(&Config{Source: src})
}

// NewWithConfig makes provider using config params.
func NewWithConfig(conf *Config) *Provider {
	c := conf.Copy()
	p := &Provider{
		key: c.Key,
		src: c.Source,
		mw:  c.MetricsWriter,
		l:   c.Logger,
	}
	if p.src == nil {
		p.src = DefaultSource()
	}
	if p.mw == nil {
		p.mw = DummyMetrics{}
	}
	return p
}

// Key returns provider key.
func (p *Provider) Key() string {
	return p.key
}

// Bernoulli returns true with probability p.
// Values of p aren't checked: p <= 0 always gives false, p >= 1 always gives true.
func (p *Provider) Bernoulli(prob float64) bool {
	p.mw.ProviderCall(OpBernoulli)
	return p.draw() < prob
}

// Coin returns Bernoulli trial with probability 0.5.
func (p *Provider) Coin() bool {
	return p.Bernoulli(defaultBernoulliP)
}

// Int returns random integer in range [0, MaxSafeInteger).
func (p *Provider) Int() int {
	p.mw.ProviderCall(OpUniformInt)
	return int(math.Floor(p.draw() * MaxSafeInteger))
}

// IntN returns random integer in range [0, n).
func (p *Provider) IntN(n int) int {
	p.mw.ProviderCall(OpUniformInt)
	return p.intn(n)
}

// IntBetween returns random integer in range [min, max].
//
// Note that max is inclusive, unlike IntN.
func (p *Provider) IntBetween(min, max int) int {
	p.mw.ProviderCall(OpUniformInt)
	return p.intBetween(min, max)
}

// UniformInt dispatches integer draw by arguments count:
//   - () -> Int
//   - (n) -> IntN
//   - (min, max) -> IntBetween
//
// Any other count of arguments gives ErrInvalidArgument.
func (p *Provider) UniformInt(args ...int) (int, error) {
	switch len(args) {
	case 0:
		return p.Int(), nil
	case 1:
		return p.IntN(args[0]), nil
	case 2:
		return p.IntBetween(args[0], args[1]), nil
	default:
		p.mw.ProviderFail(OpUniformInt)
		return 0, ErrInvalidArgument
	}
}

// Float64 returns random float in range [0, 1).
func (p *Provider) Float64() float64 {
	p.mw.ProviderCall(OpUniform)
	return p.draw()
}

// FloatN returns random float in range [0, x).
func (p *Provider) FloatN(x float64) float64 {
	p.mw.ProviderCall(OpUniform)
	return p.draw() * x
}

// FloatBetween returns random float in range [min, max).
func (p *Provider) FloatBetween(min, max float64) float64 {
	p.mw.ProviderCall(OpUniform)
	return interpolate(min, max, p.draw())
}

// Uniform dispatches float draw by arguments count:
//   - () -> Float64
//   - (x) -> FloatN
//   - (min, max) -> FloatBetween
//
// Any other count of arguments gives ErrInvalidArgument.
func (p *Provider) Uniform(args ...float64) (float64, error) {
	switch len(args) {
	case 0:
		return p.Float64(), nil
	case 1:
		return p.FloatN(args[0]), nil
	case 2:
		return p.FloatBetween(args[0], args[1]), nil
	default:
		p.mw.ProviderFail(OpUniform)
		return 0, ErrInvalidArgument
	}
}

func (p *Provider) draw() float64 {
	p.mw.SourceDraw()
	return p.src.Float64()
}

func (p *Provider) intn(n int) int {
	return int(math.Floor(p.draw() * float64(n)))
}

func (p *Provider) intBetween(min, max int) int {
	r := int(math.Floor(interpolate(float64(min), float64(max)+1, p.draw())))
	if r > max && max >= min {
		// Rounding of interpolation on wide ranges.
		r = max
	}
	return r
}

func (p *Provider) logf(format string, v ...any) {
	if p.l != nil {
		p.l.Printf(format, v...)
	}
}

// Linear interpolation between a and b, t in range [0, 1).
func interpolate(a, b, t float64) float64 {
	return a + (b-a)*t
}
