// Package subdiv implements closed subdivision curves by Lane–Riesenfeld
// refinement: repeated midpoint insertion followed by averaging passes over
// the cyclic control polygon. The refined point sequence is computed once at
// construction and evaluation interpolates linearly between neighboring
// points, with a central finite difference standing in for the tangent.
package subdiv

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

// MaxDegree bounds the refinement depth. The point count grows with
// 2^degree times the control polygon size, so deep refinement is refused at
// construction instead of exhausting memory.
const MaxDegree = 12

// Closed is a closed subdivision curve over the parameter domain [0,1]. The
// refined point sequence is immutable after construction; the curve may be
// evaluated concurrently.
type Closed struct {
	controls []vec3.T
	points   []vec3.T
	degree   int
}

// NewClosed creates a closed subdivision curve from a cyclic control polygon.
// The degree doubles as the number of refinement rounds and, minus one, the
// number of averaging passes per round; the limit curve is the uniform
// B-spline of that degree. Degrees 1..MaxDegree are accepted, and the polygon
// needs at least 3 points.
func NewClosed(controls []vec3.T, degree int) (*Closed, error) {
	if err := validate(controls, degree); err != nil {
		return nil, err
	}
	c := &Closed{
		controls: append([]vec3.T(nil), controls...),
		degree:   degree,
	}
	c.points = refine(c.controls, degree)
	// Force the last point onto the first, ensuring closure without a gap.
	if len(c.points) > 1 {
		c.points[len(c.points)-1] = c.points[0]
	}
	tracer().Debugf("subdivision curve: %d control points, degree %d, %d refined points",
		len(controls), degree, len(c.points))
	return c, nil
}

func validate(controls []vec3.T, degree int) error {
	if len(controls) < 3 {
		return fmt.Errorf("%w: closed polygon needs at least 3 points, got %d",
			pcurve.ErrInvalidCurve, len(controls))
	}
	if degree < 1 || degree > MaxDegree {
		return fmt.Errorf("%w: subdivision degree must be in 1..%d, got %d",
			pcurve.ErrInvalidCurve, MaxDegree, degree)
	}
	for i, pt := range controls {
		for _, x := range pt {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: control point %d has invalid coordinate",
					pcurve.ErrInvalidCurve, i)
			}
		}
	}
	return nil
}

// refine runs the Lane–Riesenfeld algorithm: degree rounds of splitting,
// each followed by degree-1 averaging passes.
func refine(controls []vec3.T, degree int) []vec3.T {
	points := controls
	for iter := 0; iter < degree; iter++ {
		points = split(points)
		for avg := 1; avg < degree; avg++ {
			points = smooth(points)
		}
	}
	return points
}

// split doubles a cyclic polygon by inserting edge midpoints between the
// original points.
func split(points []vec3.T) []vec3.T {
	n := len(points)
	doubled := make([]vec3.T, 2*n)
	for i := 0; i < n; i++ {
		doubled[2*i] = points[i]
		nxt := (i + 1) % n
		mid := vec3.Add(&points[i], &points[nxt])
		doubled[2*i+1] = mid.Scaled(0.5)
	}
	return doubled
}

// smooth replaces every point by the average of itself and its cyclic
// predecessor (one box-filter pass).
func smooth(points []vec3.T) []vec3.T {
	n := len(points)
	smoothed := make([]vec3.T, n)
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		avg := vec3.Add(&points[i], &points[prev])
		smoothed[i] = avg.Scaled(0.5)
	}
	return smoothed
}

// Points returns a copy of the refined point sequence. Its first and last
// entries are equal.
func (c *Closed) Points() []vec3.T {
	return append([]vec3.T(nil), c.points...)
}

// Evaluate interpolates the refined point sequence at t. The position is the
// linear interpolation between the two nearest refined points; the first
// derivative, if requested, is the central difference over the neighbors of
// the base index -- a discrete approximation, not an exact tangent. Higher
// orders are not supported.
//
// The curve is closed: parameters outside [0,1] wrap around.
func (c *Closed) Evaluate(t float64, d int) (pcurve.Sample, error) {
	if d < 0 || d > 1 {
		return nil, fmt.Errorf("%w: subdivision curve supports derivative orders 0..1, requested %d",
			pcurve.ErrUnsupportedOrder, d)
	}
	n := len(c.points)
	scaled := t * float64(n-1)
	index := int(math.Floor(scaled)) % n
	if index < 0 {
		index += n
	}
	alpha := scaled - math.Floor(scaled)

	p1 := c.points[index]
	p2 := c.points[(index+1)%n]
	a := p1.Scaled(1 - alpha)
	b := p2.Scaled(alpha)

	s := pcurve.NewSample(d)
	s[0] = vec3.Add(&a, &b)
	if d > 0 {
		next := (index + 1) % n
		prev := (index - 1 + n) % n
		diff := vec3.Sub(&c.points[next], &c.points[prev])
		s[1] = diff.Scaled(0.5)
	}
	return s, nil
}

// DomainStart returns 0.
func (c *Closed) DomainStart() float64 {
	return 0
}

// DomainEnd returns 1.
func (c *Closed) DomainEnd() float64 {
	return 1
}

// IsClosed is true.
func (c *Closed) IsClosed() bool {
	return true
}
