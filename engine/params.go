package engine

import (
	"github.com/polyspring/polyspring/density"
	"github.com/polyspring/polyspring/triangulate"
)

// Params holds the relaxation constants from spec.md's "Parameters"
// section, with their documented defaults.
type Params struct {
	DT      float64 // time step
	TriTol  float64 // displacement-since-triangulation threshold, relative to rest length
	IntPres float64 // interior pressure (> 1 so equilibrium edge length exceeds the rest length)
	K       float64 // spring stiffness
	StopTol float64 // per-iteration displacement threshold, relative to rest length
}

// defaultParams returns spec.md's documented defaults.
func defaultParams() Params {
	return Params{
		DT:      0.2,
		TriTol:  0.1,
		IntPres: 1.2,
		K:       1,
		StopTol: 0.001,
	}
}

// config bundles Params with the two pluggable collaborators (density,
// triangulator), resolved once by New from Option values, the
// same shape as builder.builderConfig bundling rng/idFn/weightFn.
type config struct {
	params       Params
	density      density.Func
	triangulator triangulate.Triangulator
}

func newConfig(opts ...Option) config {
	cfg := config{
		params:       defaultParams(),
		density:      density.DefaultFunc,
		triangulator: triangulate.Delaunay2D{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures an Engine at construction time. Options are
// applied left-to-right; later options override earlier ones.
type Option func(*config)

// WithDT overrides the time step. Panics if dt <= 0.
func WithDT(dt float64) Option {
	if dt <= 0 {
		panic("engine.WithDT: dt must be > 0")
	}
	return func(c *config) { c.params.DT = dt }
}

// WithTriTol overrides the re-triangulation drift threshold. Panics if
// triTol <= 0.
func WithTriTol(triTol float64) Option {
	if triTol <= 0 {
		panic("engine.WithTriTol: triTol must be > 0")
	}
	return func(c *config) { c.params.TriTol = triTol }
}

// WithIntPres overrides the interior pressure. Panics if intPres <= 0.
func WithIntPres(intPres float64) Option {
	if intPres <= 0 {
		panic("engine.WithIntPres: intPres must be > 0")
	}
	return func(c *config) { c.params.IntPres = intPres }
}

// WithK overrides the spring stiffness. Panics if k <= 0.
func WithK(k float64) Option {
	if k <= 0 {
		panic("engine.WithK: k must be > 0")
	}
	return func(c *config) { c.params.K = k }
}

// WithStopTol overrides the convergence threshold. Panics if
// stopTol <= 0.
func WithStopTol(stopTol float64) Option {
	if stopTol <= 0 {
		panic("engine.WithStopTol: stopTol must be > 0")
	}
	return func(c *config) { c.params.StopTol = stopTol }
}

// WithDensity injects a non-default target density function (spec §6:
// "the interface is that of any user-supplied density"). A nil d is a
// no-op and leaves the default (density.Uniform).
func WithDensity(d density.Func) Option {
	return func(c *config) {
		if d != nil {
			c.density = d
		}
	}
}

// WithTriangulator injects a non-default Triangulator, e.g. a test
// double or an alternative Delaunay implementation. A nil t is a no-op.
func WithTriangulator(t triangulate.Triangulator) Option {
	return func(c *config) {
		if t != nil {
			c.triangulator = t
		}
	}
}
