package distrib

const (
	// Default probability of Bernoulli trial.
	defaultBernoulliP = .5
	// Default amount of draws to average in Bates distribution.
	defaultBatesN = 4
)

// Config describes provider properties.
type Config struct {
	// Provider key. Indicates provider in logs and metrics.
	Key string
	// Source of uniform draws. The provider owns it exclusively.
	// If this param omit DefaultSource will use instead.
	Source Source

	// Metrics writer handler.
	// If this param omit DummyMetrics will use instead.
	MetricsWriter MetricsWriter

	// Logger handler.
	Logger Logger
}

// Copy copies config instance to protect provider from changing params after start.
func (c *Config) Copy() *Config {
	cpy := *c
	return &cpy
}
