package backoff

import (
	"math"
	"time"
)

// Linear multiplies interval to attempts value: 1s, 2s, 3s, ...
type Linear struct{}

func (Linear) Next(interval time.Duration, attempt int) time.Duration {
	return interval * time.Duration(attempt)
}

// Exponential grows interval by formula `value*2^n` where `n` - number of attempts: 2s, 4s, 8s, ...
type Exponential struct{}

func (Exponential) Next(interval time.Duration, attempt int) time.Duration {
	return interval * time.Duration(math.Pow(2, float64(attempt)))
}

// Logarithmic grows interval by formula `value*ln(n+1)`: 0.69s, 1.1s, 1.39s, ...
type Logarithmic struct{}

func (Logarithmic) Next(interval time.Duration, attempt int) time.Duration {
	return time.Duration(float64(interval) * math.Log(float64(attempt)+1))
}

// Polynomial grows interval by formula `value*n^K`, e.g. for K=3: 1s, 8s, 27s, ...
type Polynomial struct {
	K uint64
}

func (p Polynomial) Next(interval time.Duration, attempt int) time.Duration {
	return interval * time.Duration(math.Pow(float64(attempt), float64(p.K)))
}

// Quadratic grows interval by formula `value*n^2`: 1s, 4s, 9s, ...
type Quadratic struct{}

func (Quadratic) Next(interval time.Duration, attempt int) time.Duration {
	return interval * time.Duration(attempt*attempt)
}
