package bspline

import (
	"fmt"

	"github.com/npillmayer/pcurve"
)

// KnotVector is a clamped uniform knot vector: the first and last degree+1
// entries are pinned to the domain bounds, interior entries are consecutive
// integers. It is immutable after construction.
type KnotVector struct {
	knots  []float64
	degree int
}

// Knots generates the clamped uniform knot vector for n control points and
// the given degree. The vector has n+degree+1 entries.
func Knots(n, degree int) (KnotVector, error) {
	if degree < 1 {
		return KnotVector{}, fmt.Errorf("%w: degree must be at least 1, got %d", pcurve.ErrInvalidCurve, degree)
	}
	if n < degree+1 {
		return KnotVector{}, fmt.Errorf("%w: need at least %d control points for degree %d, got %d",
			pcurve.ErrInvalidCurve, degree+1, degree, n)
	}
	m := n + degree + 1
	knots := make([]float64, m)
	for i := 0; i <= degree; i++ {
		knots[i] = 0
	}
	for i := degree + 1; i < m-(degree+1); i++ {
		knots[i] = float64(i - degree)
	}
	maxValue := float64(m - 2*(degree+1) + 1)
	for i := m - (degree + 1); i < m; i++ {
		knots[i] = maxValue
	}
	return KnotVector{knots: knots, degree: degree}, nil
}

// Len returns the number of knots.
func (kv KnotVector) Len() int {
	return len(kv.knots)
}

// Degree returns the degree the vector was generated for.
func (kv KnotVector) Degree() int {
	return kv.degree
}

// At returns knot i.
func (kv KnotVector) At(i int) float64 {
	return kv.knots[i]
}

// NumBasis returns the number of basis functions, i.e. the number of control
// points the vector supports.
func (kv KnotVector) NumBasis() int {
	return len(kv.knots) - kv.degree - 1
}

// DomainStart returns the first non-repeated knot.
func (kv KnotVector) DomainStart() float64 {
	return kv.knots[kv.degree]
}

// DomainEnd returns the last non-repeated knot.
func (kv KnotVector) DomainEnd() float64 {
	return kv.knots[len(kv.knots)-kv.degree-1]
}

// Span returns the index of the knot interval containing t. If no half-open
// span matches (t at or beyond the domain end), the last valid span index is
// returned.
func (kv KnotVector) Span(t float64) int {
	n := kv.NumBasis()
	for j := kv.degree; j < n; j++ {
		if t >= kv.knots[j] && t < kv.knots[j+1] {
			return j
		}
	}
	return n - 1
}

// Basis evaluates basis function i of degree k at parameter t, by the
// Cox–de Boor recursion.
//
// The degree-0 base case includes t at the very last knot for the last basis
// function, so that the curve is defined at the closing parameter. A
// recursion term contributes 0 whenever its denominator vanishes (repeated
// knots).
func (kv KnotVector) Basis(i, k int, t float64) float64 {
	if k == 0 {
		if (kv.knots[i] <= t && t < kv.knots[i+1]) ||
			(t == kv.knots[len(kv.knots)-1] && i == kv.NumBasis()-1) {
			return 1
		}
		return 0
	}
	var term1, term2 float64
	if denom := kv.knots[i+k] - kv.knots[i]; denom != 0 {
		term1 = (t - kv.knots[i]) / denom * kv.Basis(i, k-1, t)
	}
	if denom := kv.knots[i+k+1] - kv.knots[i+1]; denom != 0 {
		term2 = (kv.knots[i+k+1] - t) / denom * kv.Basis(i+1, k-1, t)
	}
	return term1 + term2
}

// basisRow computes the degree+1 nonzero basis values at t in one sweep,
// for the span containing t (algorithm A2.2 from Piegl & Tiller). Row r
// holds the value of basis function span-degree+r.
func (kv KnotVector) basisRow(span int, t float64) []float64 {
	k := kv.degree
	row := make([]float64, k+1)
	left := make([]float64, k+1)
	right := make([]float64, k+1)
	row[0] = 1
	for j := 1; j <= k; j++ {
		left[j] = t - kv.knots[span+1-j]
		right[j] = kv.knots[span+j] - t
		saved := 0.0
		for r := 0; r < j; r++ {
			temp := 0.0
			if denom := right[r+1] + left[j-r]; denom != 0 {
				temp = row[r] / denom
			}
			row[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		row[j] = saved
	}
	return row
}
