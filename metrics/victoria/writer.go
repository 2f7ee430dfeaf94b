package victoria

import (
	"github.com/koykov/vmchain"
)

// Writer mirrors distrib.MetricsWriter; the module doesn't depend on distrib itself.
type Writer interface {
	SourceDraw()
	ProviderCall(op string)
	ProviderFail(op string)
	WeightsFallback()
}

// writer is a VictoriaMetrics implementation of distrib.MetricsWriter.
type writer struct {
	name   string
	prefix string
}

// NewWriter makes a new instance of metrics writer.
func NewWriter(name string, options ...Option) Writer {
	mw := &writer{name: name}
	for _, fn := range options {
		fn(mw)
	}
	if len(mw.prefix) == 0 {
		mw.prefix = "distrib"
	}
	return mw
}

func (w writer) SourceDraw() {
	vmchain.Counter(w.prefix+"_draws").WithLabel("provider", w.name).Inc()
}

func (w writer) ProviderCall(op string) {
	vmchain.Counter(w.prefix+"_calls").WithLabel("provider", w.name).WithLabel("op", op).Inc()
}

func (w writer) ProviderFail(op string) {
	vmchain.Counter(w.prefix+"_fails").WithLabel("provider", w.name).WithLabel("op", op).Inc()
}

func (w writer) WeightsFallback() {
	vmchain.Counter(w.prefix+"_weights_fallback").WithLabel("provider", w.name).Inc()
}
