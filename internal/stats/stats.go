// Package stats observes samples of random variables and validates their moments.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats describes observed sample.
type Stats struct {
	N        int
	Mean     float64
	Variance float64
	Min      float64
	Max      float64
}

// Observe calls fn n times and collects stats of returned values.
func Observe(fn func() float64, n int) Stats {
	if n <= 0 {
		return Stats{}
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = fn()
	}
	return Of(xs)
}

// Of collects stats of xs.
func Of(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	mean, variance := stat.MeanVariance(xs, nil)
	return Stats{
		N:        len(xs),
		Mean:     mean,
		Variance: variance,
		Min:      floats.Min(xs),
		Max:      floats.Max(xs),
	}
}

// Expect describes expected stats. Nil fields aren't checked.
//
// Mean and Variance compares with Tolerance, Min and Max are hard bounds: observed values must lay inside
// [Min, Max].
type Expect struct {
	Tolerance float64
	Mean      *float64
	Variance  *float64
	Min       *float64
	Max       *float64
}

// Value is a helper to fill Expect fields.
func Value(x float64) *float64 {
	return &x
}

// Validate checks s against e and returns error describing the first violation.
func Validate(s Stats, e Expect) error {
	if s.N == 0 {
		return fmt.Errorf("empty sample")
	}
	if e.Mean != nil && math.Abs(s.Mean-*e.Mean) > e.Tolerance {
		return fmt.Errorf("mean %g out of %g +/- %g", s.Mean, *e.Mean, e.Tolerance)
	}
	if e.Variance != nil && math.Abs(s.Variance-*e.Variance) > e.Tolerance {
		return fmt.Errorf("variance %g out of %g +/- %g", s.Variance, *e.Variance, e.Tolerance)
	}
	if e.Min != nil && s.Min < *e.Min {
		return fmt.Errorf("min %g less than %g", s.Min, *e.Min)
	}
	if e.Max != nil && s.Max > *e.Max {
		return fmt.Errorf("max %g greater than %g", s.Max, *e.Max)
	}
	return nil
}
