package distrib

// DummyMetrics is a stub metrics writer handler that uses by default and does nothing.
// Need just to reduce checks in code.
type DummyMetrics struct{}

func (DummyMetrics) SourceDraw()         {}
func (DummyMetrics) ProviderCall(string) {}
func (DummyMetrics) ProviderFail(string) {}
func (DummyMetrics) WeightsFallback()    {}
