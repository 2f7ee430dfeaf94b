// Package rng provides pool of distribution providers for concurrent consumers.
package rng

import (
	"sync"
	"time"

	"github.com/koykov/distrib"
)

// Pool keeps providers to borrow one per goroutine, since distrib.Provider isn't thread-safe.
type Pool struct {
	p sync.Pool
	// New makes source of every new provider.
	// If this param omit time-seeded MT19937 will use instead.
	New func() distrib.Source
	// Config is a template of every new provider. Source param is ignored in favor of New.
	Config *distrib.Config

	once sync.Once
}

func (p *Pool) Get() *distrib.Provider {
	p.once.Do(p.init)
	raw := p.p.Get()
	if raw == nil {
		conf := p.Config.Copy()
		conf.Source = p.New()
		return distrib.NewWithConfig(conf)
	}
	return raw.(*distrib.Provider)
}

// Template returns copy of providers config template.
// Use it to build providers over custom sources (e.g. seeded ones) with the same key, metrics and logger.
func (p *Pool) Template() *distrib.Config {
	p.once.Do(p.init)
	return p.Config.Copy()
}

func (p *Pool) Put(x *distrib.Provider) {
	if x == nil {
		return
	}
	p.p.Put(x)
}

func (p *Pool) init() {
	if p.New == nil {
		p.New = func() distrib.Source {
			return distrib.NewMT19937(uint64(time.Now().UnixNano()))
		}
	}
	if p.Config == nil {
		p.Config = &distrib.Config{}
	}
}
