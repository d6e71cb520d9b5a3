package bspline

import (
	"fmt"

	"github.com/npillmayer/pcurve"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/mat"
)

// Above this condition number the normal equations are treated as singular.
const condMax = 1e12

// Fit creates a B-spline curve approximating the given sample points with n
// control points, by least squares.
//
// Sample i is assigned the parameter value i/(m-1), scaled into the knot
// domain. The design matrix N holds the nonzero basis values per row, and the
// control points solve the normal equations
//
//	NᵀN x = Nᵀp
//
// per spatial coordinate. A rank-deficient or badly conditioned system is
// reported as an invalid-curve error instead of returning degenerate control
// points; m >= n samples are required.
func Fit(samples []vec3.T, n int) (*Curve, error) {
	m := len(samples)
	if m == 0 {
		return nil, fmt.Errorf("%w: no sample points to fit", pcurve.ErrInvalidCurve)
	}
	if m < n {
		return nil, fmt.Errorf("%w: fit needs at least as many samples as control points (%d < %d)",
			pcurve.ErrInvalidCurve, m, n)
	}
	kv, err := Knots(n, Degree)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("fitting %d samples with %d control points", m, n)

	start, end := kv.DomainStart(), kv.DomainEnd()
	N := mat.NewDense(m, n, nil)
	p := mat.NewDense(m, 3, nil)
	for i := 0; i < m; i++ {
		t := start + (end-start)*float64(i)/float64(m-1)
		span := kv.Span(t)
		row := kv.basisRow(span, t)
		for j := 0; j <= Degree; j++ {
			N.Set(i, span-Degree+j, row[j])
		}
		p.SetRow(i, samples[i][:])
	}

	var ntn mat.SymDense
	ntn.SymOuterK(1, N.T())
	var chol mat.Cholesky
	if ok := chol.Factorize(&ntn); !ok {
		return nil, fmt.Errorf("%w: singular normal equations, samples do not determine %d control points",
			pcurve.ErrInvalidCurve, n)
	}
	if cond := chol.Cond(); cond > condMax {
		return nil, fmt.Errorf("%w: normal equations badly conditioned (cond=%g)",
			pcurve.ErrInvalidCurve, cond)
	}
	var ntp, x mat.Dense
	ntp.Mul(N.T(), p)
	if err := chol.SolveTo(&x, &ntp); err != nil {
		return nil, fmt.Errorf("%w: %v", pcurve.ErrInvalidCurve, err)
	}

	controls := make([]vec3.T, n)
	for i := 0; i < n; i++ {
		controls[i] = vec3.T{x.At(i, 0), x.At(i, 1), x.At(i, 2)}
	}
	return &Curve{controls: controls, knots: kv}, nil
}
