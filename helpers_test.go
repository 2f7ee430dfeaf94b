package distrib

import (
	"fmt"
	"time"
)

const samples = 8000

// seq returns source looping through given values.
func seq(xs ...float64) Source {
	var i int
	return SourceFunc(func() float64 {
		x := xs[i%len(xs)]
		i++
		return x
	})
}

type testMetrics struct {
	draws, fallbacks int
	calls, fails     map[string]int
}

func newTestMetrics() *testMetrics {
	return &testMetrics{calls: map[string]int{}, fails: map[string]int{}}
}

func (m *testMetrics) SourceDraw()            { m.draws++ }
func (m *testMetrics) ProviderCall(op string) { m.calls[op]++ }
func (m *testMetrics) ProviderFail(op string) { m.fails[op]++ }
func (m *testMetrics) WeightsFallback()       { m.fallbacks++ }

type testLogger struct {
	lines []string
}

func (l *testLogger) Printf(format string, v ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}
