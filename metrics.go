package distrib

// Provider operations, uses as metrics labels.
const (
	OpBernoulli    = "bernoulli"
	OpUniformInt   = "uniform_int"
	OpUniform      = "uniform"
	OpDice         = "dice"
	OpBates        = "bates"
	OpPick         = "pick"
	OpPop          = "pop"
	OpPickWeighted = "pick_weighted"
	OpShuffle      = "shuffle"
)

// MetricsWriter is an interface of provider metrics handler.
// See example of implementations https://github.com/koykov/distrib/tree/master/metrics.
type MetricsWriter interface {
	// SourceDraw registers raw draw from the source.
	SourceDraw()
	// ProviderCall registers call of operation op.
	ProviderCall(op string)
	// ProviderFail registers failed call of operation op.
	ProviderFail(op string)
	// WeightsFallback registers weighted pick that didn't reach the threshold and fell back to the last index.
	WeightsFallback()
}
