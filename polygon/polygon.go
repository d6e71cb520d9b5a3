// Package polygon builds planar control polygons. Polygons are built with a
// builder pattern similar to package jhobby of the arithm module:
//
//	pg := NullPolygon().Knot(arithm.P(0,0)).Knot(arithm.P(1,3)).Knot(arithm.P(3,0)).Cycle()
//
// Cyclic polygons can be combined with boolean operations and lifted into 3D
// control polygons for the subdivision engine in package subdiv.
package polygon

import (
	"errors"
	"fmt"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
)

// L writes to trace with key 'pcurve'
func L() tracing.Trace {
	return tracing.Select("pcurve")
}

var (
	// ErrNotCyclic indicates an operation requiring a closed polygon outline.
	ErrNotCyclic = errors.New("polygon is not cyclic")
	// ErrTooFewKnots indicates a polygon with fewer than 3 knots.
	ErrTooFewKnots = errors.New("polygon has too few knots")
)

// Polygon is a planar polygon, open while being built and closed by a call
// to Cycle.
type Polygon struct {
	knots []arithm.Pair
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a corner point. Part of builder functionality.
func (pg *Polygon) Knot(p arithm.Pair) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// Cycle closes the polygon outline. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a cyclic rectangle polygon from two opposite corners.
func Box(nw, se arithm.Pair) *Polygon {
	return NullPolygon().
		Knot(nw).
		Knot(arithm.P(se.X(), nw.Y())).
		Knot(se).
		Knot(arithm.P(nw.X(), se.Y())).
		Cycle()
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) arithm.Pair {
	return pg.knots[i]
}

// IsCycle tells whether the polygon outline has been closed.
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// AsString returns a polygon as a (debugging) string, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var s string
	for i, p := range pg.knots {
		if i > 0 {
			s += " -- "
		}
		s += p.String()
	}
	if pg.cycle {
		s += " -- cycle"
	}
	return s
}

// Lift raises a cyclic polygon into 3D at height z, yielding a control
// polygon for a closed subdivision curve.
func (pg *Polygon) Lift(z float64) ([]vec3.T, error) {
	if !pg.cycle {
		return nil, ErrNotCyclic
	}
	if pg.N() < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewKnots, pg.N())
	}
	controls := make([]vec3.T, pg.N())
	for i, p := range pg.knots {
		controls[i] = vec3.T{p.X(), p.Y(), z}
	}
	return controls, nil
}

// Unite combines two cyclic polygons into the outlines of their union.
// The union of disjoint polygons has multiple outlines, hence the slice
// result.
func Unite(a, b *Polygon) ([]*Polygon, error) {
	return construct(polyclip.UNION, a, b)
}

// Intersect combines two cyclic polygons into the outlines of their
// intersection. The result may be empty.
func Intersect(a, b *Polygon) ([]*Polygon, error) {
	return construct(polyclip.INTERSECTION, a, b)
}

func construct(op polyclip.Op, a, b *Polygon) ([]*Polygon, error) {
	pa, err := a.clipShape()
	if err != nil {
		return nil, err
	}
	pb, err := b.clipShape()
	if err != nil {
		return nil, err
	}
	result := pa.Construct(op, pb)
	L().Debugf("polygon op yields %d outline(s)", len(result))
	polygons := make([]*Polygon, 0, len(result))
	for _, contour := range result {
		pg := NullPolygon()
		for _, pt := range contour {
			pg.Knot(arithm.P(pt.X, pt.Y))
		}
		polygons = append(polygons, pg.Cycle())
	}
	return polygons, nil
}

func (pg *Polygon) clipShape() (polyclip.Polygon, error) {
	if !pg.cycle {
		return nil, ErrNotCyclic
	}
	if pg.N() < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewKnots, pg.N())
	}
	contour := make(polyclip.Contour, pg.N())
	for i, p := range pg.knots {
		contour[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return polyclip.Polygon{contour}, nil
}
