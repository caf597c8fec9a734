// Package density defines the target point-density function injected
// into edge scaling, and a small set of ready-to-use densities.
//
// Func mirrors the shape of builder.WeightFn: a plain function type
// threaded through configuration rather than an interface, with a
// DefaultFunc (Uniform) and a couple of generators (Radial, Grid) for
// non-trivial cases. Func must return a strictly positive value for
// every point it is evaluated at; edges.ScalingFactor divides by h^2,
// so a non-positive density is a contract violation by the caller
// (spec: "treated as a contract violation by the caller, documented,
// not checked").
package density

// Func is the target density at a location (x, y) in normalized
// [0,1]x[0,1] coordinates. It must always return a positive value.
type Func func(x, y float64) float64

// DefaultFunc is Uniform, the density used when none is supplied.
var DefaultFunc Func = Uniform

// Uniform is the built-in density: constant 1 everywhere.
func Uniform(_, _ float64) float64 { return 1 }
