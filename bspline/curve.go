// Package bspline implements quadratic B-spline curves over clamped uniform
// knot vectors. Control points are either given directly or fitted to sample
// data by least squares (normal equations over the basis design matrix).
//
// Evaluation is position-only: requesting derivatives returns an explicit
// unsupported-order error rather than fabricated values.
package bspline

import (
	"fmt"

	"github.com/npillmayer/pcurve"
	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'pcurve'
func tracer() tracing.Trace {
	return tracing.Select("pcurve")
}

// Degree of all curves in this package.
const Degree = 2

// Curve is an open quadratic B-spline. Control points and knot vector are
// computed at construction and immutable thereafter.
type Curve struct {
	controls []vec3.T
	knots    KnotVector
}

// New creates a B-spline curve from the given control points. At least
// Degree+1 control points are required.
func New(controls []vec3.T) (*Curve, error) {
	kv, err := Knots(len(controls), Degree)
	if err != nil {
		return nil, err
	}
	c := &Curve{
		controls: append([]vec3.T(nil), controls...),
		knots:    kv,
	}
	tracer().Debugf("b-spline with %d control points, domain [%g,%g]",
		len(controls), c.DomainStart(), c.DomainEnd())
	return c, nil
}

// Controls returns a copy of the curve's control points.
func (c *Curve) Controls() []vec3.T {
	return append([]vec3.T(nil), c.controls...)
}

// KnotVector returns the curve's knot vector.
func (c *Curve) KnotVector() KnotVector {
	return c.knots
}

// Evaluate computes the curve position at t as the basis-weighted sum of the
// control points. Only d = 0 is supported; the underlying representation
// carries no derivative information (see package doc).
func (c *Curve) Evaluate(t float64, d int) (pcurve.Sample, error) {
	if d != 0 {
		return nil, fmt.Errorf("%w: b-spline evaluation is position-only, requested order %d",
			pcurve.ErrUnsupportedOrder, d)
	}
	if t < c.DomainStart() || t > c.DomainEnd() {
		return nil, fmt.Errorf("%w: t=%g not in [%g,%g]",
			pcurve.ErrOutOfDomain, t, c.DomainStart(), c.DomainEnd())
	}
	var pt vec3.T
	for i := range c.controls {
		if b := c.knots.Basis(i, Degree, t); b != 0 {
			w := c.controls[i].Scaled(b)
			pt = vec3.Add(&pt, &w)
		}
	}
	s := pcurve.NewSample(0)
	s[0] = pt
	return s, nil
}

// DomainStart returns the first non-repeated knot.
func (c *Curve) DomainStart() float64 {
	return c.knots.DomainStart()
}

// DomainEnd returns the last non-repeated knot.
func (c *Curve) DomainEnd() float64 {
	return c.knots.DomainEnd()
}

// IsClosed is false: curves of this package are open.
func (c *Curve) IsClosed() bool {
	return false
}
