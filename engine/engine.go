package engine

import (
	"math"

	"github.com/polyspring/polyspring/density"
	"github.com/polyspring/polyspring/edges"
	"github.com/polyspring/polyspring/points"
	"github.com/polyspring/polyspring/region"
	"github.com/polyspring/polyspring/triangulate"
)

// Engine is Polyspring: the relaxation orchestrator described in
// spec.md §4.5. Zero value is not usable; construct with New.
type Engine struct {
	cfg config

	region region.Region
	pts    *points.PointSet
	tri    *triangulate.Triangulation
	es     *edges.EdgeSet

	ell0        float64 // uniform rest length, fixed until the next SetPoints
	stale       bool    // re-triangulate flag
	initialized bool
	failed      error // sticky error from a prior fatal Iterate failure
	iterations  int
}

// New returns an Engine configured with opts, defaulting to the unit
// square region, a uniform density, and the Delaunay2D triangulator.
// The engine is not usable until SetPoints succeeds.
func New(opts ...Option) *Engine {
	return &Engine{
		cfg:    newConfig(opts...),
		region: region.NewSquare(),
	}
}

// SetRegion selects the named region variant for subsequent
// SetPoints/Iterate calls. Returns region.ErrUnknownRegion for any name
// other than "square", the only implemented variant.
func (e *Engine) SetRegion(name string) error {
	r, err := region.ByName(name)
	if err != nil {
		return err
	}
	e.region = r
	return nil
}

// SetPoints ingests buffers (see points.Buffer), pre-uniformizes them
// into the current region's inner box, computes the rest length ell0
// from the region's area and point count, resets the iteration/
// triangulation counters, and sets the re-triangulate flag.
//
// Errors from points.Set (ErrTooFewPoints, ErrNilBuffer, ErrBadStride,
// ErrRaggedBuffer) are surfaced immediately and the engine is left
// uninitialized, per spec §7.
func (e *Engine) SetPoints(buffers ...points.Buffer) error {
	ps := points.New()
	if err := ps.Set(buffers...); err != nil {
		e.initialized = false
		return err
	}
	ps.PreUniformize(e.region)

	n := ps.N()
	area := e.region.Area()
	ell0 := math.Sqrt(2 / (math.Sqrt(3) * float64(n) / area))

	e.pts = ps
	e.tri = triangulate.New(e.cfg.triangulator)
	e.es = edges.New()
	e.ell0 = ell0
	e.stale = true
	e.initialized = true
	e.failed = nil
	e.iterations = 0

	return nil
}

// densityFunc returns the configured density, defaulting to Uniform.
func (e *Engine) densityFunc() density.Func {
	if e.cfg.density == nil {
		return density.DefaultFunc
	}
	return e.cfg.density
}
