package pcurve

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'pcurve'
func tracer() tracing.Trace {
	return tracing.Select("pcurve")
}

var (
	// ErrInvalidCurve indicates construction arguments which cannot yield a
	// well-defined curve (too few control points, degenerate fit, ...).
	ErrInvalidCurve = errors.New("invalid curve configuration")
	// ErrOutOfDomain indicates a parameter outside the curve's domain.
	// Closed curves wrap around instead of returning this error.
	ErrOutOfDomain = errors.New("parameter outside curve domain")
	// ErrUnsupportedOrder indicates a derivative order the curve kind cannot
	// provide.
	ErrUnsupportedOrder = errors.New("unsupported derivative order")
)

// Curve is the contract between curve implementations and sampling/rendering
// drivers. Implementations evaluate position and derivatives at a parameter
// value; they do not render or manage any scene state.
type Curve interface {
	// Evaluate computes the curve at parameter t, with derivatives up to
	// order d. The returned sample holds d+1 vectors.
	Evaluate(t float64, d int) (Sample, error)
	// DomainStart returns the lower bound of the parameter domain.
	DomainStart() float64
	// DomainEnd returns the upper bound of the parameter domain.
	DomainEnd() float64
	// IsClosed tells whether the curve is a closed loop. Closed curves accept
	// parameters outside the domain and wrap them around.
	IsClosed() bool
}

// Sample is the result of a curve evaluation: position at index 0, followed
// by derivatives in increasing order.
type Sample []vec3.T

// NewSample allocates a sample with room for position plus d derivatives.
func NewSample(d int) Sample {
	return make(Sample, d+1)
}

// Point returns the position part of a sample.
func (s Sample) Point() vec3.T {
	if len(s) == 0 {
		return vec3.T{}
	}
	return s[0]
}

// Derivative returns the derivative of order k, k >= 1. The second return
// value is false if the sample does not carry order k.
func (s Sample) Derivative(k int) (vec3.T, bool) {
	if k < 1 || k >= len(s) {
		return vec3.T{}, false
	}
	return s[k], true
}
