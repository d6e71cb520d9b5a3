// Package torusknot implements analytic (p,q) torus knots with exact first
// and second derivatives.
package torusknot

import (
	"fmt"
	"math"

	"github.com/npillmayer/pcurve"
	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'pcurve'
func tracer() tracing.Trace {
	return tracing.Select("pcurve")
}

// Curve is a (p,q) torus knot
//
//	x(t) = (R + cos(qt)) cos(pt)
//	y(t) = (R + cos(qt)) sin(pt)
//	z(t) = sin(qt)
//
// winding p times around the torus axis and q times through its hole. The
// curve is closed over t in [0, 2πq].
type Curve struct {
	r    float64 // major radius offset
	p, q int
}

// New creates the (2,3) torus knot with major radius 2, the shape used by the
// demo scenario. Its domain is [0, 6π].
func New() *Curve {
	c, _ := NewPQ(2, 2, 3)
	return c
}

// NewPQ creates a (p,q) torus knot with the given major radius. p and q must
// be positive and coprime, otherwise the parametrization retraces itself
// instead of forming a knot.
func NewPQ(r float64, p, q int) (*Curve, error) {
	if r <= 0 {
		return nil, fmt.Errorf("%w: major radius must be positive, got %g", pcurve.ErrInvalidCurve, r)
	}
	if p < 1 || q < 1 {
		return nil, fmt.Errorf("%w: winding numbers must be positive, got (%d,%d)", pcurve.ErrInvalidCurve, p, q)
	}
	if gcd(p, q) != 1 {
		return nil, fmt.Errorf("%w: winding numbers (%d,%d) are not coprime", pcurve.ErrInvalidCurve, p, q)
	}
	tracer().Debugf("(%d,%d) torus knot with major radius %g", p, q, r)
	return &Curve{r: r, p: p, q: q}, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Evaluate computes position and up to two derivatives at t. The derivatives
// are exact analytic expressions, obtained term-by-term by the product rule.
// Orders above 2 are not supported. The curve is closed, so any t is
// accepted and wraps around the domain.
func (c *Curve) Evaluate(t float64, d int) (pcurve.Sample, error) {
	if d < 0 || d > 2 {
		return nil, fmt.Errorf("%w: torus knot supports derivative orders 0..2, requested %d",
			pcurve.ErrUnsupportedOrder, d)
	}
	p, q, r := float64(c.p), float64(c.q), c.r
	sp, cp := math.Sincos(p * t)
	sq, cq := math.Sincos(q * t)

	s := pcurve.NewSample(d)
	s[0] = vec3.T{(r + cq) * cp, (r + cq) * sp, sq}

	if d > 0 {
		dx := -p*(r+cq)*sp - q*sq*cp
		dy := p*(r+cq)*cp - q*sq*sp
		dz := q * cq
		s[1] = vec3.T{dx, dy, dz}
	}
	if d > 1 {
		// differentiate dx = A + B with A = -p(r+cos qt)sin pt, B = -q sin qt cos pt
		xpp := -p*(p*(r+cq)*cp-q*sq*sp) - q*(q*cq*cp-p*sq*sp)
		ypp := p*(-p*(r+cq)*sp-q*sq*cp) - q*(q*cq*sp+p*sq*cp)
		zpp := -q * q * sq
		s[2] = vec3.T{xpp, ypp, zpp}
	}
	return s, nil
}

// DomainStart returns 0.
func (c *Curve) DomainStart() float64 {
	return 0
}

// DomainEnd returns 2πq, the smallest interval over which the knot is traced
// out exactly once (6π for the (2,3) knot).
func (c *Curve) DomainEnd() float64 {
	return 2 * math.Pi * float64(c.q)
}

// IsClosed is true.
func (c *Curve) IsClosed() bool {
	return true
}
