package distrib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koykov/distrib/internal/stats"
)

func TestProvider(t *testing.T) {
	t.Run("default source", func(t *testing.T) {
		p := New(nil)
		assert.Equal(t, DefaultSource(), p.src)
		assert.IsType(t, DummyMetrics{}, p.mw)
	})
	t.Run("config copy", func(t *testing.T) {
		conf := &Config{Key: "foobar", Source: NewLCG(1)}
		p := NewWithConfig(conf)
		conf.Key = "changed"
		assert.Equal(t, "foobar", p.Key())
	})
	t.Run("metrics", func(t *testing.T) {
		m := newTestMetrics()
		p := NewWithConfig(&Config{Source: seq(.5), MetricsWriter: m})
		p.Coin()
		p.IntN(10)
		p.Dice(3, 6)
		p.BatesN(0, 1, 5)
		_, _ = p.UniformInt(1, 2, 3)
		assert.Equal(t, 1+1+3+5, m.draws)
		assert.Equal(t, 1, m.calls[OpBernoulli])
		assert.Equal(t, 1, m.calls[OpUniformInt])
		assert.Equal(t, 1, m.calls[OpDice])
		assert.Equal(t, 1, m.calls[OpBates])
		assert.Equal(t, 1, m.fails[OpUniformInt])
	})
}

func TestBernoulli(t *testing.T) {
	t.Run("bounds", func(t *testing.T) {
		p := New(seq(0, .5, .999999))
		for i := 0; i < 3; i++ {
			assert.False(t, p.Bernoulli(0))
			assert.False(t, p.Bernoulli(-1))
			assert.True(t, p.Bernoulli(1))
			assert.True(t, p.Bernoulli(2))
		}
	})
	t.Run("strict", func(t *testing.T) {
		p := New(seq(.3))
		assert.False(t, p.Bernoulli(.3))
		assert.True(t, p.Bernoulli(.30001))
	})
	t.Run("coin", func(t *testing.T) {
		p := New(NewLCG(1234567))
		s := stats.Observe(func() float64 { return b2f(p.Coin()) }, samples)
		require.NoError(t, stats.Validate(s, stats.Expect{
			Tolerance: .1,
			Mean:      stats.Value(.5),
			Variance:  stats.Value(.25),
			Min:       stats.Value(0),
			Max:       stats.Value(1),
		}))
	})
	t.Run("probability", func(t *testing.T) {
		p := New(NewMT19937(1))
		for prob := .1; prob <= .9; prob += .2 {
			s := stats.Observe(func() float64 { return b2f(p.Bernoulli(prob)) }, samples)
			require.NoError(t, stats.Validate(s, stats.Expect{
				Tolerance: .1,
				Mean:      stats.Value(prob),
				Variance:  stats.Value(prob * (1 - prob)),
			}), "p=%g", prob)
		}
	})
}

func TestUniformInt(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		p := New(seq(0, .5))
		assert.Equal(t, 0, p.Int())
		assert.Equal(t, 1<<52-1, p.Int())

		p = New(NewLCG(1234567))
		for i := 0; i < samples; i++ {
			x := p.Int()
			if x < 0 || x >= MaxSafeInteger {
				t.Fatalf("value %d out of range", x)
			}
		}
	})
	t.Run("n", func(t *testing.T) {
		p := New(seq(0, .099, .1, .999999))
		assert.Equal(t, []int{0, 0, 1, 9}, []int{p.IntN(10), p.IntN(10), p.IntN(10), p.IntN(10)})

		p = New(NewMT19937(2))
		for n := 10; n < 30; n += 5 {
			fn := float64(n)
			s := stats.Observe(func() float64 { return float64(p.IntN(n)) }, samples)
			require.NoError(t, stats.Validate(s, stats.Expect{
				Tolerance: .1 * fn,
				Mean:      stats.Value((fn - 1) / 2),
				Variance:  stats.Value((fn*fn - 1) / 12),
				Min:       stats.Value(0),
				Max:       stats.Value(fn - 1),
			}), "n=%d", n)
		}
	})
	t.Run("between", func(t *testing.T) {
		p := New(seq(0, .5, .999999))
		assert.Equal(t, []int{3, 4, 5}, []int{p.IntBetween(3, 5), p.IntBetween(3, 5), p.IntBetween(3, 5)})
		p = New(seq(0, .999999))
		assert.Equal(t, []int{-5, -3}, []int{p.IntBetween(-5, -3), p.IntBetween(-5, -3)})
		p = New(seq(.7))
		assert.Equal(t, 7, p.IntBetween(7, 7))

		p = New(NewMT19937(3))
		for min := -20; min <= 20; min += 10 {
			for width := 4; width <= 19; width += 3 {
				max := min + width
				fw := float64(width)
				s := stats.Observe(func() float64 { return float64(p.IntBetween(min, max)) }, samples)
				require.NoError(t, stats.Validate(s, stats.Expect{
					Tolerance: .1 * fw,
					Mean:      stats.Value(float64(min) + .5*fw),
					Variance:  stats.Value(((fw+1)*(fw+1) - 1) / 12),
					Min:       stats.Value(float64(min)),
					Max:       stats.Value(float64(max)),
				}), "min=%d max=%d", min, max)
				assert.Equal(t, float64(min), s.Min)
				assert.Equal(t, float64(max), s.Max)
			}
		}
	})
	t.Run("between wide range", func(t *testing.T) {
		// Greatest draw below 1 rounds interpolation up to max+1 on ranges wider than 2^53.
		const top, min, max = 1 - 0x1p-53, 1, 1<<54 - 1
		require.Equal(t, float64(max+1), interpolate(min, float64(max)+1, top))
		p := New(seq(top, 0))
		assert.Equal(t, []int{max, min}, []int{p.IntBetween(min, max), p.IntBetween(min, max)})
	})
	t.Run("dispatch", func(t *testing.T) {
		p := New(seq(.5))
		x, err := p.UniformInt()
		require.NoError(t, err)
		assert.Equal(t, 1<<52-1, x)
		x, err = p.UniformInt(10)
		require.NoError(t, err)
		assert.Equal(t, 5, x)
		x, err = p.UniformInt(10, 19)
		require.NoError(t, err)
		assert.Equal(t, 15, x)
		_, err = p.UniformInt(1, 2, 3)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestUniform(t *testing.T) {
	t.Run("float", func(t *testing.T) {
		p := New(NewLCG(1234567))
		s := stats.Observe(p.Float64, samples)
		require.NoError(t, stats.Validate(s, uniformExpect()))
		assert.Less(t, s.Max, 1.)
	})
	t.Run("x", func(t *testing.T) {
		p := New(seq(.25))
		assert.Equal(t, 1., p.FloatN(4))

		p = New(NewMT19937(4))
		for x := 3.5; x <= 7.5; x += 2. / 3 {
			s := stats.Observe(func() float64 { return p.FloatN(x) }, samples)
			require.NoError(t, stats.Validate(s, stats.Expect{
				Tolerance: .1 * x,
				Mean:      stats.Value(x / 2),
				Variance:  stats.Value(x * x / 12),
				Min:       stats.Value(0),
				Max:       stats.Value(x),
			}), "x=%g", x)
			assert.Less(t, s.Max, x)
		}
	})
	t.Run("between", func(t *testing.T) {
		p := New(seq(0, .5))
		assert.Equal(t, -2., p.FloatBetween(-2, 2))
		assert.Equal(t, 0., p.FloatBetween(-2, 2))

		p = New(NewMT19937(5))
		for min := -6.; min <= 6; min += 1.5 {
			for width := 1. / 3; width <= 5./3; width += 1. / 3 {
				max := min + width
				s := stats.Observe(func() float64 { return p.FloatBetween(min, max) }, samples)
				require.NoError(t, stats.Validate(s, stats.Expect{
					Tolerance: .1 * width,
					Mean:      stats.Value(min + .5*width),
					Variance:  stats.Value(width * width / 12),
					Min:       stats.Value(min),
					Max:       stats.Value(max),
				}), "min=%g max=%g", min, max)
				assert.Less(t, s.Max, max)
			}
		}
	})
	t.Run("dispatch", func(t *testing.T) {
		p := New(seq(.5))
		x, err := p.Uniform()
		require.NoError(t, err)
		assert.Equal(t, .5, x)
		x, err = p.Uniform(3)
		require.NoError(t, err)
		assert.Equal(t, 1.5, x)
		x, err = p.Uniform(1, 2)
		require.NoError(t, err)
		assert.Equal(t, 1.5, x)
		_, err = p.Uniform(1, 2, 3)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestInterpolate(t *testing.T) {
	assert.Equal(t, 1., interpolate(1, 3, 0))
	assert.Equal(t, 2., interpolate(1, 3, .5))
	assert.True(t, math.IsNaN(interpolate(math.NaN(), 1, .5)))
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func BenchmarkProvider(b *testing.B) {
	b.Run("lcg", func(b *testing.B) {
		p := New(NewLCG(1))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = p.IntBetween(1, 6)
		}
	})
	b.Run("mt19937", func(b *testing.B) {
		p := New(NewMT19937(1))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = p.IntBetween(1, 6)
		}
	})
}
