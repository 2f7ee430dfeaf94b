// Package log provides metrics writer printing provider events to a structured logger.
//
// Don't use in production. Only for debug purposes.
package log

import (
	clog "github.com/charmbracelet/log"
)

// Writer is a log implementation of distrib.MetricsWriter.
type Writer struct {
	name string
	l    *clog.Logger
}

// NewWriter makes writer of provider name. Nil logger means the default charmbracelet logger.
func NewWriter(name string, logger *clog.Logger) *Writer {
	if logger == nil {
		logger = clog.Default()
	}
	return &Writer{name: name, l: logger}
}

func (w Writer) SourceDraw() {
	w.l.Debug("source draw", "provider", w.name)
}

func (w Writer) ProviderCall(op string) {
	w.l.Debug("provider call", "provider", w.name, "op", op)
}

func (w Writer) ProviderFail(op string) {
	w.l.Warn("provider call failed", "provider", w.name, "op", op)
}

func (w Writer) WeightsFallback() {
	w.l.Warn("weighted pick fell back to last index", "provider", w.name)
}
